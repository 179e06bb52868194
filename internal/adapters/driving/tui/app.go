package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pythia-labs/oracle-cli/internal/adapters/driving/tui/keymap"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driving/tui/messages"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driving/tui/styles"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driving/tui/views/chat"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driving/tui/views/config"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driving/tui/views/document"
	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driven"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driving"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keys holds the shared key bindings.
	keys *keymap.KeyMap

	// configView is the source and model configuration view.
	configView *config.View

	// chatView is the conversation view.
	chatView *chat.View

	// documentView is the document preview view.
	documentView *document.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// previousView is where esc from the help view returns to.
	previousView messages.ViewType

	// lastInit is the configuration of the last successful
	// initialisation; a reload repeats it.
	lastInit driving.InitConfig
	haveInit bool

	// watcher observes the loaded file between initialisations.
	watcher     driven.DocumentWatcher
	watchCancel context.CancelFunc
	changes     <-chan domain.DocumentChange

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	keys := keymap.DefaultKeyMap()
	configView := config.NewView(s, ports.Session, ports.Content, ports.Settings)
	chatView := chat.NewView(s, keys, ports.Conversation, ports.Session)
	documentView := document.NewView(s)

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keys:         keys,
		configView:   configView,
		chatView:     chatView,
		documentView: documentView,
		currentView:  messages.ViewConfig, // Nothing to chat with until initialised
		previousView: messages.ViewConfig,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.chatView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("oracle - Document Chat"),
		a.configView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.configView.SetDimensions(msg.Width, msg.Height)
		a.chatView.SetDimensions(msg.Width, msg.Height)
		a.documentView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			a.stopWatch()
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewConfig:
			a.configView, cmd = a.configView.Update(msg)
			return a, cmd

		case messages.ViewChat:
			a.chatView, cmd = a.chatView.Update(msg)
			return a, cmd

		case messages.ViewDocument:
			a.documentView, cmd = a.documentView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help returns to the previous view
			if msg.Type == tea.KeyEsc {
				a.currentView = a.previousView
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.SettingsLoaded:
		a.configView, cmd = a.configView.Update(msg)
		return a, cmd

	case messages.InitCompleted:
		return a.handleInitCompleted(msg)

	case messages.ReloadRequested:
		return a.handleReloadRequested()

	case messages.ViewChanged:
		return a.handleViewChanged(msg)

	case messages.StreamStarted, messages.StreamFrame,
		messages.StreamCompleted, messages.StreamFailed,
		messages.HistoryCleared:
		// The stream keeps flowing even while another view is open
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd

	case messages.WatchStarted:
		a.changes = msg.Changes
		return a, a.waitForChange()

	case messages.DocumentChanged:
		a.chatView, cmd = a.chatView.Update(msg)
		return a, tea.Batch(cmd, a.waitForChange())

	case messages.WatchStopped:
		a.stopWatch()
		return a, nil

	case spinner.TickMsg:
		// Each spinner ignores ticks that are not its own
		var configCmd, chatCmd tea.Cmd
		a.configView, configCmd = a.configView.Update(msg)
		a.chatView, chatCmd = a.chatView.Update(msg)
		return a, tea.Batch(configCmd, chatCmd)

	case messages.ErrorOccurred:
		a.err = msg.Err
		// Forward to current view
		switch a.currentView {
		case messages.ViewChat:
			a.chatView, cmd = a.chatView.Update(msg)
		case messages.ViewConfig, messages.ViewDocument, messages.ViewHelp:
			// Other views don't handle error messages
		}
		return a, cmd

	case messages.Quit:
		a.stopWatch()
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewConfig:
		a.configView, cmd = a.configView.Update(msg)
	case messages.ViewChat:
		a.chatView, cmd = a.chatView.Update(msg)
	case messages.ViewDocument:
		a.documentView, cmd = a.documentView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// handleInitCompleted reacts to the outcome of an initialisation,
// whether it came from the configuration view or a reload.
func (a *App) handleInitCompleted(msg messages.InitCompleted) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if a.currentView == messages.ViewConfig {
		a.configView, cmd = a.configView.Update(msg)
	}

	if msg.Err != nil {
		a.err = msg.Err
		if a.currentView != messages.ViewConfig {
			var chatCmd tea.Cmd
			a.chatView, chatCmd = a.chatView.Update(msg)
			cmd = tea.Batch(cmd, chatCmd)
		}
		return a, cmd
	}

	a.err = nil
	a.lastInit = msg.Config
	a.haveInit = true
	a.chatView.SetChain(msg.Chain)

	// Watch the new source instead of the old one
	a.stopWatch()
	cmds := []tea.Cmd{cmd, a.startWatch(), a.persistConfig(msg.Config)}

	switch a.currentView {
	case messages.ViewConfig:
		a.currentView = messages.ViewChat
		a.chatView.Reset()
		cmds = append(cmds, a.chatView.Init())

	case messages.ViewChat:
		var chatCmd tea.Cmd
		a.chatView, chatCmd = a.chatView.Update(msg)
		cmds = append(cmds, chatCmd)

	case messages.ViewDocument:
		// Refresh the preview with the reloaded text
		if doc, ok := a.ports.Session.Document(); ok {
			a.documentView.SetDocument(doc)
		}
		var chatCmd tea.Cmd
		a.chatView, chatCmd = a.chatView.Update(msg)
		cmds = append(cmds, chatCmd)

	case messages.ViewHelp:
		// Nothing to refresh
	}

	return a, tea.Batch(cmds...)
}

// handleReloadRequested repeats the last successful initialisation.
func (a *App) handleReloadRequested() (tea.Model, tea.Cmd) {
	if !a.haveInit {
		return a, nil
	}

	var chatCmd tea.Cmd
	a.chatView, chatCmd = a.chatView.Update(messages.ReloadRequested{})

	cfg := a.lastInit
	reload := func() tea.Msg {
		chain, err := a.ports.Session.Initialise(a.ctx, cfg)
		return messages.InitCompleted{Config: cfg, Chain: chain, Err: err}
	}

	return a, tea.Batch(chatCmd, reload)
}

// handleViewChanged switches the active view.
func (a *App) handleViewChanged(msg messages.ViewChanged) (tea.Model, tea.Cmd) {
	if msg.View == messages.ViewHelp {
		a.previousView = a.currentView
	}
	a.currentView = msg.View

	// Initialise views when switching to them
	switch msg.View {
	case messages.ViewConfig:
		a.configView.Reset()
		return a, a.configView.Init()

	case messages.ViewChat:
		a.chatView.Reset()
		return a, a.chatView.Init()

	case messages.ViewDocument:
		if doc, ok := a.ports.Session.Document(); ok {
			a.documentView.SetDocument(doc)
		}
		return a, a.documentView.Init()

	case messages.ViewHelp:
		// Static content
	}
	return a, nil
}

// startWatch begins observing the loaded file, when there is one. URL
// sources have nothing on disk to watch.
func (a *App) startWatch() tea.Cmd {
	cfg := a.lastInit
	if a.ports.NewWatcher == nil || cfg.Source.Type.IsRemote() || cfg.Source.Location == "" {
		return nil
	}

	if settings, err := a.ports.Settings.Get(); err == nil && settings != nil && !settings.Loader.WatchEnabled {
		return nil
	}

	watcher := a.ports.NewWatcher()
	if watcher == nil {
		return nil
	}

	ctx, cancel := context.WithCancel(a.ctx)
	a.watcher = watcher
	a.watchCancel = cancel

	return func() tea.Msg {
		changes, err := watcher.Watch(ctx, cfg.Source.Location)
		if err != nil {
			return messages.WatchStopped{}
		}
		return messages.WatchStarted{Changes: changes}
	}
}

// waitForChange arms the next read from the watch channel.
func (a *App) waitForChange() tea.Cmd {
	changes := a.changes
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		change, ok := <-changes
		if !ok {
			return messages.WatchStopped{}
		}
		return messages.DocumentChanged{Change: change}
	}
}

// stopWatch tears down the active watch, if any.
func (a *App) stopWatch() {
	if a.watchCancel != nil {
		a.watchCancel()
		a.watchCancel = nil
	}
	if a.watcher != nil {
		_ = a.watcher.Close()
		a.watcher = nil
	}
	a.changes = nil
}

// persistConfig saves the working provider configuration so the next
// launch starts from it.
func (a *App) persistConfig(cfg driving.InitConfig) tea.Cmd {
	return func() tea.Msg {
		if err := a.ports.Settings.SetLLMProvider(cfg.Provider, cfg.Model, cfg.APIKey); err != nil {
			return messages.ErrorOccurred{Err: fmt.Errorf("saving settings: %w", err)}
		}
		return nil
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewConfig:
		return a.configView.View()
	case messages.ViewChat:
		return a.chatView.View()
	case messages.ViewDocument:
		return a.documentView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.configView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Global:
  ctrl+c      Quit

Configuration:
  j/k, ↑/↓    Navigate rows
  enter       Open a row / confirm a choice
  esc         Close the row, or back to chat

Chat:
  (type)      Ask the Oracle about the document
  enter       Send
  esc         Cancel the response in flight
  ctrl+d      Preview the document
  ctrl+l      Clear conversation history
  ctrl+r      Reload the document
  ctrl+o      Open configuration

Document:
  j/k, ↑/↓    Scroll
  g/G         Top / bottom
  esc         Back to chat

[esc] back`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// Initialised returns whether a chain is up.
func (a *App) Initialised() bool {
	return a.haveInit
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.configView.SetDimensions(width, height)
	a.chatView.SetDimensions(width, height)
	a.documentView.SetDimensions(width, height)
}
