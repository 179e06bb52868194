package memory

import (
	"sync"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of driven.SessionStore.
// All session state is process-local and discarded on exit.
type SessionStore struct {
	mu        sync.RWMutex
	chain     domain.Chain
	doc       domain.Document
	llm       driven.LLMService
	installed bool
	buffer    []domain.Message
	apiKeys   map[domain.Provider]string
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		apiKeys: make(map[domain.Provider]string),
	}
}

// Chain returns the active chain, its bound client, and whether a chain
// has been installed.
func (s *SessionStore) Chain() (domain.Chain, driven.LLMService, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chain, s.llm, s.installed
}

// SetChain installs a chain, its document and client, closing the
// previous client. The conversation buffer is not touched.
func (s *SessionStore) SetChain(chain domain.Chain, doc domain.Document, llm driven.LLMService) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.llm != nil {
		_ = s.llm.Close()
	}
	s.chain = chain
	s.doc = doc
	s.llm = llm
	s.installed = true
}

// Document returns the document backing the active chain.
func (s *SessionStore) Document() (domain.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc, s.installed
}

// History returns a copy of the conversation buffer in insertion order.
func (s *SessionStore) History() []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Message, len(s.buffer))
	copy(result, s.buffer)
	return result
}

// AppendTurn records a completed turn: the user message followed by the
// assistant message.
func (s *SessionStore) AppendTurn(user, assistant domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffer = append(s.buffer, user, assistant)
}

// ClearHistory replaces the buffer with a fresh empty one.
func (s *SessionStore) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffer = nil
}

// APIKey returns the cached credential for a provider.
func (s *SessionStore) APIKey(provider domain.Provider) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key, ok := s.apiKeys[provider]
	return key, ok
}

// SetAPIKey caches a credential for a provider for the session.
func (s *SessionStore) SetAPIKey(provider domain.Provider, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKeys[provider] = key
}

// Close releases the active chain's client, if any.
func (s *SessionStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.llm == nil {
		return nil
	}
	err := s.llm.Close()
	s.llm = nil
	s.installed = false
	return err
}
