package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a conversation message.
type Role string

// Available roles.
const (
	// RoleUser is the human side of the conversation.
	RoleUser Role = "user"

	// RoleAssistant is the model side of the conversation.
	RoleAssistant Role = "assistant"

	// RoleSystem carries the instruction prompt. System messages are
	// sent to providers but never stored in the conversation buffer.
	RoleSystem Role = "system"
)

// IsValid returns true if the role is recognised.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r Role) String() string {
	return string(r)
}

// Message is one entry in the conversation buffer.
type Message struct {
	// ID is the unique identifier for the message.
	ID string

	// Role is the message author.
	Role Role

	// Content is the message text.
	Content string

	// At is when the message was recorded.
	At time.Time
}

// NewUserMessage records a human turn.
func NewUserMessage(content string) Message {
	return newMessage(RoleUser, content)
}

// NewAssistantMessage records a model turn.
func NewAssistantMessage(content string) Message {
	return newMessage(RoleAssistant, content)
}

func newMessage(role Role, content string) Message {
	return Message{
		ID:      uuid.New().String(),
		Role:    role,
		Content: content,
		At:      time.Now(),
	}
}
