package driven

import "github.com/pythia-labs/oracle-cli/internal/core/domain"

// SessionStore holds the mutable state of one interactive session: the
// active chain and its bound client, the conversation buffer, and the
// per-provider credential cache. It exists for exactly the lifetime of
// the owning surface (TUI run, MCP server run, one-shot command) and is
// never persisted.
//
// Implementations must be safe for concurrent use: stream completion
// appends to the buffer from a goroutine while the UI reads it.
type SessionStore interface {
	// Chain returns the active chain, its bound client, and whether a
	// chain has been installed.
	Chain() (domain.Chain, LLMService, bool)

	// SetChain installs a chain, the document it was built from, and its
	// client, replacing any previous triple. The previous client is
	// closed. The conversation buffer is not touched.
	SetChain(chain domain.Chain, doc domain.Document, llm LLMService)

	// Document returns the document backing the active chain.
	Document() (domain.Document, bool)

	// History returns a copy of the conversation buffer in insertion
	// order.
	History() []domain.Message

	// AppendTurn records a completed turn: the user message followed by
	// the assistant message.
	AppendTurn(user, assistant domain.Message)

	// ClearHistory replaces the buffer with a fresh empty one. The
	// active chain is not touched.
	ClearHistory()

	// APIKey returns the cached credential for a provider.
	APIKey(provider domain.Provider) (string, bool)

	// SetAPIKey caches a credential for a provider for the session.
	SetAPIKey(provider domain.Provider, key string)

	// Close releases the active chain's client, if any.
	Close() error
}
