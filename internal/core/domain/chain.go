package domain

import (
	"time"

	"github.com/google/uuid"
)

// Chain is the bound combination of instruction prompt and chat model
// configuration, capable of producing a streamed response given user
// input and history. Installing a chain is what moves a session from
// uninitialised to ready; re-initialising replaces the chain wholesale
// and leaves the conversation buffer untouched.
type Chain struct {
	// ID is the unique identifier for this initialisation.
	ID string

	// Provider is the chat service the chain is bound to.
	Provider Provider

	// Model is the chat model identifier.
	Model string

	// SourceType is the type of the embedded document.
	SourceType SourceType

	// SourceLocation is where the embedded document was loaded from.
	SourceLocation string

	// SystemPrompt is the full instruction string, document text included.
	SystemPrompt string

	// CreatedAt is when the chain was installed.
	CreatedAt time.Time
}

// NewChain builds a chain for a loaded document and model selection.
// systemPrompt is the full instruction string; see SystemPrompt.
func NewChain(settings LLMSettings, doc Document, systemPrompt string) Chain {
	return Chain{
		ID:             uuid.New().String(),
		Provider:       settings.Provider,
		Model:          settings.Model,
		SourceType:     doc.SourceType,
		SourceLocation: doc.Location,
		SystemPrompt:   systemPrompt,
		CreatedAt:      time.Now(),
	}
}

// Messages assembles the provider message list for one chat turn:
// the system prompt, the prior buffer in order, then the user input.
func (c Chain) Messages(history []Message, input string) []Message {
	msgs := make([]Message, 0, len(history)+2)
	msgs = append(msgs, Message{Role: RoleSystem, Content: c.SystemPrompt})
	msgs = append(msgs, history...)
	msgs = append(msgs, Message{Role: RoleUser, Content: input})
	return msgs
}

// Describe returns a short status-line descriptor for the chain.
func (c Chain) Describe() string {
	return c.Provider.Description() + "/" + c.Model
}
