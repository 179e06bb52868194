package driving

import (
	"context"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
)

// InitConfig carries everything an initialisation needs: the model
// selection and the source to load.
type InitConfig struct {
	// Provider is the chat service to bind.
	Provider domain.Provider

	// Model is the chat model identifier.
	Model string

	// APIKey is the provider credential.
	APIKey string

	// Source is the document to load and embed.
	Source domain.Source
}

// SessionService initialises and inspects the interactive session.
type SessionService interface {
	// Initialise loads the source, builds the instruction prompt,
	// constructs the chat client, and installs the resulting chain into
	// the session. Replaces any previous chain; conversation history is
	// retained. No connectivity check is performed.
	Initialise(ctx context.Context, cfg InitConfig) (domain.Chain, error)

	// Chain returns the active chain and whether one is installed.
	Chain() (domain.Chain, bool)

	// Document returns the currently embedded document text. Empty
	// until the first successful initialisation.
	Document() (domain.Document, bool)

	// CachedAPIKey returns the session's remembered credential for a
	// provider (last value entered for it this session).
	CachedAPIKey(provider domain.Provider) (string, bool)

	// CacheAPIKey remembers a credential for a provider for the session.
	CacheAPIKey(provider domain.Provider, key string)

	// Close releases the session's resources.
	Close() error
}
