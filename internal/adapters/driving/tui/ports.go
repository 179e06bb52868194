// Package tui provides the interactive terminal user interface for oracle.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driven"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session initialises and inspects the interactive session.
	Session driving.SessionService

	// Conversation runs chat turns against the session's chain.
	Conversation driving.ConversationService

	// Content loads and extracts document sources.
	Content driving.ContentService

	// Settings manages application settings.
	Settings driving.SettingsService

	// NewWatcher constructs a watcher for the loaded document's backing
	// file. Optional; when nil the change notice is never shown.
	NewWatcher func() driven.DocumentWatcher
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	session driving.SessionService,
	conversation driving.ConversationService,
	content driving.ContentService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Session:      session,
		Conversation: conversation,
		Content:      content,
		Settings:     settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSessionService
	}
	if p.Conversation == nil {
		return ErrMissingConversationService
	}
	if p.Content == nil {
		return ErrMissingContentService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
