package driven

import "github.com/pythia-labs/oracle-cli/internal/core/domain"

// LLMFactory constructs chat clients from validated settings.
// It maintains the registry of provider constructors, so the session
// service never depends on concrete provider packages.
type LLMFactory interface {
	// Create returns a client for the given settings.
	// Returns domain.ErrInvalidProvider for an unknown provider. The
	// client is not pinged; connectivity failures surface on first use.
	Create(settings domain.LLMSettings) (LLMService, error)
}
