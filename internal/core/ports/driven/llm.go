// Package driven provides interfaces for infrastructure adapters (secondary/outbound ports).
package driven

import "context"

// LLMService is a configured chat-completion client bound to one provider
// and model. A fresh instance is constructed on every initialisation from
// the selected provider, model and credential.
//
// Implementations:
//   - Groq (OpenAI-compatible wire format)
//   - OpenAI
type LLMService interface {
	// Chat conducts one blocking chat completion over the full message
	// list and returns the assembled response.
	Chat(ctx context.Context, messages []ChatMessage, opts ChatOptions) (string, error)

	// ChatStream conducts one chat completion and returns the response as
	// a lazy, finite, non-restartable sequence of text chunks. The chunk
	// channel is closed when the response is complete; a terminal failure
	// is delivered on the error channel (buffered, at most one value).
	// Cancelling ctx closes the sequence early.
	ChatStream(ctx context.Context, messages []ChatMessage, opts ChatOptions) (<-chan string, <-chan error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request. Only explicit validation calls this; initialisation
	// does not, so connectivity failures surface on first use.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	// Role is one of "system", "user", or "assistant".
	Role string

	// Content is the message text.
	Content string
}

// ChatOptions configures chat behaviour.
type ChatOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}
