package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driven"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driving"
	"github.com/pythia-labs/oracle-cli/internal/logger"
)

// Ensure ConversationService implements the interface.
var _ driving.ConversationService = (*ConversationService)(nil)

// ConversationService runs chat turns against the session's chain.
type ConversationService struct {
	sessions driven.SessionStore
}

// NewConversationService creates a new conversation service.
func NewConversationService(sessions driven.SessionStore) *ConversationService {
	return &ConversationService{sessions: sessions}
}

// StreamTurn runs one chat turn, delivering the response as a lazy
// sequence of text chunks. The turn is recorded in the buffer only after
// the stream completes cleanly; a failed or cancelled stream leaves the
// buffer untouched.
func (s *ConversationService) StreamTurn(ctx context.Context, input string) (<-chan string, <-chan error) {
	out := make(chan string)
	errs := make(chan error, 1)

	chain, llm, ok := s.sessions.Chain()
	if !ok {
		errs <- domain.ErrChainNotInitialised
		close(out)
		close(errs)
		return out, errs
	}
	if strings.TrimSpace(input) == "" {
		errs <- fmt.Errorf("%w: empty input", domain.ErrInvalidInput)
		close(out)
		close(errs)
		return out, errs
	}

	history := s.sessions.History()
	logger.Debug("Streaming turn: %d chars input, %d messages of history", len(input), len(history))

	chunks, streamErrs := llm.ChatStream(ctx, chatMessages(chain.Messages(history, input)), driven.ChatOptions{})

	go func() {
		defer close(out)
		defer close(errs)

		var full strings.Builder
		for chunk := range chunks {
			full.WriteString(chunk)
			select {
			case out <- chunk:
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}

		if err := <-streamErrs; err != nil {
			logger.Warn("Stream failed after %d chars: %v", full.Len(), err)
			errs <- err
			return
		}

		s.sessions.AppendTurn(
			domain.NewUserMessage(input),
			domain.NewAssistantMessage(full.String()),
		)
		logger.Debug("Turn recorded: %d chars response", full.Len())
	}()

	return out, errs
}

// Ask runs one blocking chat turn and returns the full response.
func (s *ConversationService) Ask(ctx context.Context, input string) (string, error) {
	chain, llm, ok := s.sessions.Chain()
	if !ok {
		return "", domain.ErrChainNotInitialised
	}
	if strings.TrimSpace(input) == "" {
		return "", fmt.Errorf("%w: empty input", domain.ErrInvalidInput)
	}

	history := s.sessions.History()

	response, err := llm.Chat(ctx, chatMessages(chain.Messages(history, input)), driven.ChatOptions{})
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}

	s.sessions.AppendTurn(
		domain.NewUserMessage(input),
		domain.NewAssistantMessage(response),
	)

	return response, nil
}

// History returns the conversation buffer in chronological order.
func (s *ConversationService) History() []domain.Message {
	return s.sessions.History()
}

// ClearHistory resets the buffer to empty. The chain is not touched.
func (s *ConversationService) ClearHistory() {
	s.sessions.ClearHistory()
}

// chatMessages converts domain messages to the wire shape clients accept.
func chatMessages(messages []domain.Message) []driven.ChatMessage {
	result := make([]driven.ChatMessage, len(messages))
	for i, m := range messages {
		result[i] = driven.ChatMessage{
			Role:    string(m.Role),
			Content: m.Content,
		}
	}
	return result
}
