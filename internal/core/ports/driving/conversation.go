package driving

import (
	"context"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
)

// ConversationService runs chat turns against the session's chain.
type ConversationService interface {
	// StreamTurn runs one chat turn. The returned chunk channel is a
	// lazy, finite sequence of response text deltas, closed when the
	// response completes; a terminal failure arrives on the error
	// channel. On clean completion the user and assistant messages are
	// appended to the buffer, in that order; an interrupted turn appends
	// nothing. If no chain is initialised the error channel delivers
	// domain.ErrChainNotInitialised and no model call is made.
	StreamTurn(ctx context.Context, input string) (<-chan string, <-chan error)

	// Ask runs one blocking chat turn and returns the full response.
	// Guard and buffer semantics match StreamTurn.
	Ask(ctx context.Context, input string) (string, error)

	// History returns the conversation buffer in chronological order.
	History() []domain.Message

	// ClearHistory resets the buffer to empty. The chain is not touched.
	ClearHistory()
}
