// Package chat provides the conversation view for the TUI.
package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pythia-labs/oracle-cli/internal/adapters/driving/tui/components/input"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driving/tui/components/status"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driving/tui/keymap"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driving/tui/messages"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driving/tui/styles"
	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driving"
)

// streamFrame is how often the transcript repaints during a stream.
const streamFrame = time.Second / 30

// View represents the chat view with transcript, input, and status bar.
type View struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	input      *input.TextField
	transcript viewport.Model
	spinner    spinner.Model
	statusbar  *status.Bar

	conversation driving.ConversationService
	session      driving.SessionService
	ctx          context.Context

	// Streaming state for the turn in flight. The pending prompt and
	// partial reply live here until the service records the turn; an
	// interrupted turn leaves the buffer untouched.
	streaming bool
	pending   string
	reply     strings.Builder
	stream    *streamBuffer
	cancel    context.CancelFunc

	width  int
	height int
	ready  bool
}

// NewView creates a new chat view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	conversation driving.ConversationService,
	session driving.SessionService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	field := input.NewTextField(s, "", "Ask the Oracle anything about the document...")
	field.SetCharLimit(0)
	field.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Title

	v := &View{
		styles:       s,
		keymap:       km,
		input:        field,
		transcript:   viewport.New(80, 14),
		spinner:      sp,
		statusbar:    status.NewBar(s, km),
		conversation: conversation,
		session:      session,
		ctx:          context.Background(),
		width:        80,
		height:       24,
	}
	v.refreshTranscript()

	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.StreamStarted:
		if !v.streaming {
			return v, nil
		}
		v.stream = newStreamBuffer()
		return v, tea.Batch(readStream(v.stream, msg.Chunks, msg.Errs), nextFrame())

	case messages.StreamFrame:
		return v.handleStreamFrame()

	case messages.StreamCompleted:
		return v, v.handleStreamCompleted()

	case messages.StreamFailed:
		return v, v.handleStreamFailed(msg.Err)

	case messages.HistoryCleared:
		v.statusbar.SetState(status.StateNotice)
		v.statusbar.SetMessage("Conversation history cleared")
		v.refreshTranscript()
		v.transcript.GotoTop()
		return v, nil

	case messages.ReloadRequested:
		v.statusbar.SetState(status.StateLoading)
		v.statusbar.SetMessage("Reloading the document...")
		return v, nil

	case messages.InitCompleted:
		// Routed here after a reload; the first initialisation is
		// handled by the configuration view.
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.SetChain(msg.Chain)
		v.statusbar.SetState(status.StateNotice)
		v.statusbar.SetMessage("Document reloaded")
		return v, nil

	case messages.DocumentChanged:
		v.statusbar.SetState(status.StateNotice)
		if msg.Change.Kind == domain.ChangeDeleted {
			v.statusbar.SetMessage("Document deleted on disk")
		} else {
			v.statusbar.SetMessage("Document changed on disk. ctrl+r reloads it.")
		}
		return v, nil

	case messages.ErrorOccurred:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil

	case spinner.TickMsg:
		if !v.streaming {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		if v.reply.Len() == 0 {
			v.refreshTranscript()
		}
		return v, cmd
	}

	// Forward to input component so the cursor keeps blinking
	var inputCmd tea.Cmd
	v.input, inputCmd = v.input.Update(msg)
	if inputCmd != nil {
		cmds = append(cmds, inputCmd)
	}

	var vpCmd tea.Cmd
	v.transcript, vpCmd = v.transcript.Update(msg)
	if vpCmd != nil {
		cmds = append(cmds, vpCmd)
	}

	return v, tea.Batch(cmds...)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Cancel a response in flight; anything else waits for it
	if key.Matches(msg, v.keymap.Cancel) {
		if v.streaming && v.cancel != nil {
			v.cancel()
		}
		return v, nil
	}

	switch {
	case key.Matches(msg, v.keymap.Preview):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDocument}
		}

	case key.Matches(msg, v.keymap.Configure):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewConfig}
		}

	case key.Matches(msg, v.keymap.Reload):
		if v.streaming {
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.ReloadRequested{}
		}

	case key.Matches(msg, v.keymap.ClearHistory):
		if v.streaming {
			return v, nil
		}
		return v, func() tea.Msg {
			v.conversation.ClearHistory()
			return messages.HistoryCleared{}
		}

	case key.Matches(msg, v.keymap.Send):
		return v.submit()
	}

	// Transcript scrolling keeps working while typing
	switch msg.String() {
	case "pgup", "pgdown":
		var cmd tea.Cmd
		v.transcript, cmd = v.transcript.Update(msg)
		return v, cmd
	case "home":
		v.transcript.GotoTop()
		return v, nil
	case "end":
		v.transcript.GotoBottom()
		return v, nil
	}

	// Everything else is typing
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit sends the typed prompt as the next turn.
func (v *View) submit() (*View, tea.Cmd) {
	if v.streaming {
		return v, nil
	}

	prompt := strings.TrimSpace(v.input.Value())
	if prompt == "" {
		return v, nil
	}

	ctx, cancel := context.WithCancel(v.ctx)
	v.cancel = cancel
	v.streaming = true
	v.pending = prompt
	v.reply.Reset()
	v.input.SetValue("")
	v.input.Blur()
	v.statusbar.SetState(status.StateStreaming)
	v.refreshTranscript()
	v.transcript.GotoBottom()

	start := func() tea.Msg {
		chunks, errs := v.conversation.StreamTurn(ctx, prompt)
		return messages.StreamStarted{Chunks: chunks, Errs: errs}
	}
	return v, tea.Batch(v.spinner.Tick, start)
}

// readStream drains the turn's channels into the buffer. It runs for the
// whole stream and dispatches nothing itself; frames pick the text up.
// When the chunk channel closes the error channel holds the outcome.
func readStream(buf *streamBuffer, chunks <-chan string, errs <-chan error) tea.Cmd {
	return func() tea.Msg {
		for text := range chunks {
			buf.add(text)
		}
		buf.finish(<-errs)
		return nil
	}
}

// nextFrame schedules the next transcript repaint.
func nextFrame() tea.Cmd {
	return tea.Tick(streamFrame, func(time.Time) tea.Msg {
		return messages.StreamFrame{}
	})
}

// handleStreamFrame flushes buffered deltas into the reply and either
// schedules the next frame or settles the finished turn.
func (v *View) handleStreamFrame() (*View, tea.Cmd) {
	if v.stream == nil {
		return v, nil
	}

	text, done, err := v.stream.drain()
	if text != "" {
		v.reply.WriteString(text)
		v.refreshTranscript()
		v.transcript.GotoBottom()
	}

	if !done {
		return v, nextFrame()
	}
	if err != nil {
		return v, v.handleStreamFailed(err)
	}
	return v, v.handleStreamCompleted()
}

// handleStreamCompleted finishes a clean turn. The service has recorded
// both messages, so the transcript is rebuilt from history.
func (v *View) handleStreamCompleted() tea.Cmd {
	v.finishStream()
	v.pending = ""
	v.reply.Reset()
	v.statusbar.Clear()
	v.refreshTranscript()
	v.transcript.GotoBottom()
	return v.input.Focus()
}

// handleStreamFailed puts the prompt back in the input so the user can
// retry the turn. Nothing was recorded.
func (v *View) handleStreamFailed(err error) tea.Cmd {
	v.finishStream()
	retry := v.pending
	v.pending = ""
	v.reply.Reset()

	if errors.Is(err, context.Canceled) {
		v.statusbar.SetState(status.StateNotice)
		v.statusbar.SetMessage("Response cancelled")
	} else {
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(err.Error())
	}

	v.input.SetValue(retry)
	v.refreshTranscript()
	v.transcript.GotoBottom()
	return v.input.Focus()
}

func (v *View) finishStream() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.streaming = false
	v.stream = nil
}

// SetChain records the active chain so the status bar can show it.
func (v *View) SetChain(chain domain.Chain) {
	v.statusbar.SetChain(chain.Describe())
}

// refreshTranscript rebuilds the viewport content.
func (v *View) refreshTranscript() {
	v.transcript.SetContent(v.renderTranscript())
}

func (v *View) renderTranscript() string {
	history := v.conversation.History()

	if len(history) == 0 && !v.streaming {
		if _, ok := v.session.Chain(); !ok {
			return v.styles.Warning.Render("Load the Oracle")
		}
		return v.styles.Muted.Render("The Oracle has read the document. Ask it anything.")
	}

	blocks := make([]string, 0, len(history)+2)
	for _, m := range history {
		blocks = append(blocks, v.renderMessage(m.Role, m.Content))
	}

	if v.streaming {
		blocks = append(blocks, v.renderMessage(domain.RoleUser, v.pending))
		if v.reply.Len() > 0 {
			blocks = append(blocks, v.renderMessage(domain.RoleAssistant, v.reply.String()+"▌"))
		} else {
			blocks = append(blocks, v.spinner.View()+v.styles.Muted.Render(" The Oracle is thinking..."))
		}
	}

	return strings.Join(blocks, "\n\n")
}

// renderMessage renders one transcript entry with a role label.
func (v *View) renderMessage(role domain.Role, content string) string {
	label := v.styles.Subtitle.Render("You")
	if role == domain.RoleAssistant {
		label = v.styles.Title.Render("Oracle")
	}

	wrap := v.transcript.Width
	if wrap <= 0 {
		wrap = 78
	}
	body := v.styles.Normal.Width(wrap).Render(content)

	return label + "\n" + body
}

// View renders the chat view.
func (v *View) View() string {
	sections := make([]string, 0, 7)

	header := v.styles.Title.Render("💬 Talk to the Oracle")
	sections = append(sections, header, "")

	sections = append(sections, v.transcript.View(), "")

	sections = append(sections, v.input.View(), "")

	sections = append(sections, v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)

	// Header, input, status bar, and spacing
	vpHeight := height - 8
	if vpHeight < 3 {
		vpHeight = 3
	}
	v.transcript.Width = width
	v.transcript.Height = vpHeight
	v.refreshTranscript()
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Streaming returns whether a response is in flight.
func (v *View) Streaming() bool {
	return v.streaming
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.input.Focused()
}

// InputValue returns the current prompt text.
func (v *View) InputValue() string {
	return v.input.Value()
}

// Status exposes the status bar for routing level updates.
func (v *View) Status() *status.Bar {
	return v.statusbar
}

// Reset refreshes the transcript when the view regains focus. A turn in
// flight keeps running; its channels stay armed.
func (v *View) Reset() {
	if !v.streaming {
		v.statusbar.Clear()
		v.input.Focus()
	}
	v.refreshTranscript()
	v.transcript.GotoBottom()
}
