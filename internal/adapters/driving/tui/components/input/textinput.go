// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pythia-labs/oracle-cli/internal/adapters/driving/tui/styles"
)

// TextField wraps a bubbles textinput with a styled label.
type TextField struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// NewTextField creates a labelled text field.
func NewTextField(s *styles.Styles, label, placeholder string) *TextField {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 50

	return &TextField{
		textinput: ti,
		styles:    s,
		label:     label,
		width:     50,
	}
}

// NewSecretField creates a labelled field that masks what is typed.
// Used for API keys.
func NewSecretField(s *styles.Styles, label, placeholder string) *TextField {
	f := NewTextField(s, label, placeholder)
	f.textinput.EchoMode = textinput.EchoPassword
	f.textinput.EchoCharacter = '•'
	return f
}

// Init initialises the text field.
func (f *TextField) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (f *TextField) Update(msg tea.Msg) (*TextField, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the text field.
func (f *TextField) View() string {
	label := f.styles.Title.Render(f.label)
	field := f.styles.InputField.Render(f.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (f *TextField) Value() string {
	return f.textinput.Value()
}

// SetValue sets the input value.
func (f *TextField) SetValue(value string) {
	f.textinput.SetValue(value)
	f.textinput.CursorEnd()
}

// Label returns the field label.
func (f *TextField) Label() string {
	return f.label
}

// SetLabel sets the field label.
func (f *TextField) SetLabel(label string) {
	f.label = label
}

// SetPlaceholder sets the placeholder text.
func (f *TextField) SetPlaceholder(placeholder string) {
	f.textinput.Placeholder = placeholder
}

// SetCharLimit sets the maximum input length. Zero means unlimited.
func (f *TextField) SetCharLimit(limit int) {
	f.textinput.CharLimit = limit
}

// Focus sets focus on the input.
func (f *TextField) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the input.
func (f *TextField) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the input is focused.
func (f *TextField) Focused() bool {
	return f.textinput.Focused()
}

// SetWidth sets the width of the field.
func (f *TextField) SetWidth(width int) {
	f.width = width
	// Account for label and padding
	inputWidth := width - lipgloss.Width(f.label) - 6
	if inputWidth < 20 {
		inputWidth = 20
	}
	f.textinput.Width = inputWidth
}

// Width returns the current width.
func (f *TextField) Width() int {
	return f.width
}

// Reset clears the input.
func (f *TextField) Reset() {
	f.textinput.Reset()
}
