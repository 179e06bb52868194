package mcp

import (
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session initialises and inspects the document session.
	Session driving.SessionService

	// Conversation runs chat turns against the session.
	Conversation driving.ConversationService

	// Settings supplies persisted provider defaults.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSessionService
	}
	if p.Conversation == nil {
		return ErrMissingConversationService
	}
	// Settings is optional: without it, initialise needs explicit credentials
	return nil
}
