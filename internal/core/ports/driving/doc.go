// Package driving defines the interfaces that external actors use to
// interact with core services. These are the "driving" ports in hexagonal
// architecture terminology - they drive the application.
//
// Oracle has three driving adapters sharing these ports: the TUI, the
// CLI commands, and the MCP server. The ports split along lifecycles:
//
//   - SessionService: load a document and bind a model to it
//   - ConversationService: chat turns against the bound model
//   - ContentService: document extraction on its own
//   - SettingsService: persisted defaults
//
// Implementations of these interfaces live in internal/core/services.
package driving
