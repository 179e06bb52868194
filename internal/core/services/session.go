package services

import (
	"context"
	"fmt"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driven"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driving"
	"github.com/pythia-labs/oracle-cli/internal/logger"
)

// Ensure SessionService implements the interfaces.
var (
	_ driving.SessionService  = (*SessionService)(nil)
	_ driven.PromptStoreAware = (*SessionService)(nil)
)

// SessionService assembles chains and installs them into the session.
type SessionService struct {
	content  driving.ContentService
	factory  driven.LLMFactory
	sessions driven.SessionStore
	prompts  driven.PromptStore
}

// NewSessionService creates a new session service.
func NewSessionService(
	content driving.ContentService,
	factory driven.LLMFactory,
	sessions driven.SessionStore,
) *SessionService {
	return &SessionService{
		content:  content,
		factory:  factory,
		sessions: sessions,
	}
}

// SetPromptStore sets the prompt store for the customisable persona line.
func (s *SessionService) SetPromptStore(store driven.PromptStore) {
	s.prompts = store
}

// Initialise loads the source, builds the instruction prompt, constructs
// the chat client and installs the chain. The previous chain, if any, is
// replaced and its client closed; the conversation buffer is retained.
func (s *SessionService) Initialise(ctx context.Context, cfg driving.InitConfig) (domain.Chain, error) {
	logger.Section("Chain Initialisation")
	logger.Debug("Provider: %s, Model: %s, Source: %s", cfg.Provider, cfg.Model, cfg.Source.Type)

	settings := domain.LLMSettings{
		Provider: cfg.Provider,
		Model:    cfg.Model,
		APIKey:   cfg.APIKey,
	}
	if err := settings.Validate(); err != nil {
		logger.Warn("Invalid chain settings: %v", err)
		return domain.Chain{}, err
	}

	doc, err := s.content.Load(ctx, cfg.Source)
	if err != nil {
		logger.Warn("Document load failed: %v", err)
		return domain.Chain{}, err
	}
	logger.Info("Document loaded: %s (%d fragments, %d bytes)", doc.Location, doc.Fragments, len(doc.Content))

	chain := domain.NewChain(settings, doc, s.systemPrompt(doc))

	llm, err := s.factory.Create(settings)
	if err != nil {
		return domain.Chain{}, fmt.Errorf("create chat client: %w", err)
	}

	s.sessions.SetChain(chain, doc, llm)
	s.sessions.SetAPIKey(cfg.Provider, cfg.APIKey)
	logger.Info("Chain installed: %s", chain.Describe())

	return chain, nil
}

// systemPrompt builds the instruction prompt for a document, applying the
// persona override when a prompt store is configured.
func (s *SessionService) systemPrompt(doc domain.Document) string {
	persona := ""
	if s.prompts != nil {
		loaded, err := s.prompts.Load(driven.PromptPersona)
		if err != nil {
			logger.Warn("Persona prompt load failed: %v (using default)", err)
		} else {
			persona = loaded
		}
	}
	return domain.SystemPromptWithPersona(persona, doc.SourceType, doc.Content)
}

// Chain returns the active chain and whether one is installed.
func (s *SessionService) Chain() (domain.Chain, bool) {
	chain, _, ok := s.sessions.Chain()
	return chain, ok
}

// Document returns the document backing the active chain.
func (s *SessionService) Document() (domain.Document, bool) {
	return s.sessions.Document()
}

// CachedAPIKey returns the session's remembered credential for a provider.
func (s *SessionService) CachedAPIKey(provider domain.Provider) (string, bool) {
	return s.sessions.APIKey(provider)
}

// CacheAPIKey remembers a credential for a provider for the session.
func (s *SessionService) CacheAPIKey(provider domain.Provider, key string) {
	s.sessions.SetAPIKey(provider, key)
}

// Close releases the session's resources.
func (s *SessionService) Close() error {
	return s.sessions.Close()
}
