// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driving"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewConfig is the source and model configuration view.
	ViewConfig ViewType = iota
	// ViewChat is the conversation view.
	ViewChat
	// ViewDocument shows the loaded document text.
	ViewDocument
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewConfig:
		return "config"
	case ViewChat:
		return "chat"
	case ViewDocument:
		return "document"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// InitCompleted carries the outcome of an initialisation. Config echoes
// the configuration the attempt ran with so a reload can repeat it.
type InitCompleted struct {
	Config driving.InitConfig
	Chain  domain.Chain
	Err    error
}

// ReloadRequested asks for the current source to be loaded again with
// the configuration of the last successful initialisation.
type ReloadRequested struct{}

// StreamStarted carries the channels of a chat turn in flight.
type StreamStarted struct {
	Chunks <-chan string
	Errs   <-chan error
}

// StreamFrame asks the chat view to flush buffered response deltas to
// the transcript. One fires per render frame while a turn is in flight.
type StreamFrame struct{}

// StreamCompleted signals the response finished cleanly.
type StreamCompleted struct{}

// StreamFailed signals the stream ended with an error before completing.
type StreamFailed struct {
	Err error
}

// HistoryCleared signals the conversation buffer was emptied.
type HistoryCleared struct{}

// WatchStarted carries the change channel of a document watch.
type WatchStarted struct {
	Changes <-chan domain.DocumentChange
}

// WatchStopped signals the document watch ended.
type WatchStopped struct{}

// DocumentChanged signals the loaded document's backing file changed
// on disk.
type DocumentChanged struct {
	Change domain.DocumentChange
}
