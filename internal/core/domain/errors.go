package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrChainNotInitialised indicates a chat turn was attempted before
	// the Oracle was initialised. The turn is rejected without any
	// model call.
	ErrChainNotInitialised = errors.New("chain not initialised")

	// Loading errors.

	// ErrUnsupportedSourceType indicates an unknown source type tag.
	ErrUnsupportedSourceType = errors.New("unsupported source type")

	// ErrInvalidSource indicates the source descriptor cannot be loaded
	// (missing URL, path or content).
	ErrInvalidSource = errors.New("invalid source")

	// ErrEmptyDocument indicates extraction produced no usable text.
	ErrEmptyDocument = errors.New("empty document")

	// ErrTranscriptUnavailable indicates no caption track matched the
	// configured language preference for a YouTube video.
	ErrTranscriptUnavailable = errors.New("transcript unavailable")

	// Initialisation errors.

	// ErrInvalidProvider indicates an unknown model provider.
	ErrInvalidProvider = errors.New("invalid provider")

	// ErrInvalidModel indicates a model not offered by the selected provider.
	ErrInvalidModel = errors.New("invalid model")

	// ErrMissingAPIKey indicates the provider requires a credential and
	// none was supplied.
	ErrMissingAPIKey = errors.New("missing API key")

	// Chat errors.

	// ErrLLMUnavailable indicates the chat service could not be reached.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrStreamInterrupted indicates a response stream ended before
	// completion. Nothing from the interrupted turn is recorded.
	ErrStreamInterrupted = errors.New("stream interrupted")
)
