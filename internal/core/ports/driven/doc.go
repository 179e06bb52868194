// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Loader: Extracts text fragments for one source type
//   - LLMFactory: Builds chat clients from validated settings
//   - LLMService: Chat completion client, constructed per initialisation
//   - SessionStore: Holds the chain, buffer and credential cache
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - PromptStore: Customisable persona line. Without it, the default
//     persona is used.
//   - AIConfigValidator: Connectivity checks for the config commands.
//   - DocumentWatcher: Change notices for file-backed sources.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or loader package
package driven
