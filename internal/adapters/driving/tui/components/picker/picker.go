// Package picker provides selectable option lists for the TUI.
package picker

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pythia-labs/oracle-cli/internal/adapters/driving/tui/styles"
)

// Option is one selectable entry.
type Option struct {
	// Label is the display name and the value the selection carries.
	Label string

	// Detail is optional secondary text shown after the label.
	Detail string
}

// Picker displays options in a navigable list.
type Picker struct {
	title    string
	options  []Option
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// New creates a new picker component.
func New(s *styles.Styles, title string) *Picker {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Picker{
		title:    title,
		options:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the picker.
func (p *Picker) Init() tea.Cmd {
	return nil
}

// Update handles navigation messages.
func (p *Picker) Update(msg tea.Msg) (*Picker, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			p.MoveUp()
		case tea.KeyDown:
			p.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			p.MoveUp()
		case "j":
			p.MoveDown()
		}
	}
	return p, nil
}

// View renders the picker.
func (p *Picker) View() string {
	if len(p.options) == 0 {
		return p.styles.Muted.Render("No options")
	}

	lines := make([]string, 0, len(p.options)+2)

	if p.title != "" {
		lines = append(lines, p.styles.Subtitle.Render(p.title), "")
	}

	// One line per option
	visibleCount := p.height - 4
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if p.selected >= visibleCount {
		start = p.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(p.options) {
		end = len(p.options)
	}

	labelWidth := 0
	for _, opt := range p.options {
		if len(opt.Label) > labelWidth {
			labelWidth = len(opt.Label)
		}
	}

	for i := start; i < end; i++ {
		lines = append(lines, p.renderOption(i, labelWidth))
	}

	return strings.Join(lines, "\n")
}

// renderOption formats a single option row.
func (p *Picker) renderOption(index, labelWidth int) string {
	opt := p.options[index]

	indicator := "  "
	if index == p.selected {
		indicator = "> "
	}

	label := opt.Label
	padding := strings.Repeat(" ", labelWidth-len(label))

	detail := ""
	if opt.Detail != "" {
		detail = "  " + opt.Detail
	}

	if index == p.selected {
		return p.styles.Selected.Render(indicator + label + padding + detail)
	}
	return p.styles.Normal.Render(indicator+label+padding) + p.styles.Muted.Render(detail)
}

// SetOptions replaces the options and resets the selection.
func (p *Picker) SetOptions(options []Option) {
	p.options = options
	p.selected = 0
}

// Options returns the current options.
func (p *Picker) Options() []Option {
	return p.options
}

// Selected returns the index of the selected option.
func (p *Picker) Selected() int {
	return p.selected
}

// SetSelected sets the selected index.
func (p *Picker) SetSelected(index int) {
	if index >= 0 && index < len(p.options) {
		p.selected = index
	}
}

// SelectedOption returns the currently selected option.
func (p *Picker) SelectedOption() (Option, bool) {
	if len(p.options) == 0 || p.selected < 0 || p.selected >= len(p.options) {
		return Option{}, false
	}
	return p.options[p.selected], true
}

// Select moves the selection to the option with the given label.
// Unknown labels leave the selection where it is.
func (p *Picker) Select(label string) {
	for i, opt := range p.options {
		if opt.Label == label {
			p.selected = i
			return
		}
	}
}

// MoveUp moves selection up.
func (p *Picker) MoveUp() {
	if p.selected > 0 {
		p.selected--
	}
}

// MoveDown moves selection down.
func (p *Picker) MoveDown() {
	if p.selected < len(p.options)-1 {
		p.selected++
	}
}

// SetDimensions sets the component dimensions.
func (p *Picker) SetDimensions(width, height int) {
	p.width = width
	p.height = height
}

// Width returns the current width.
func (p *Picker) Width() int {
	return p.width
}

// Height returns the current height.
func (p *Picker) Height() int {
	return p.height
}

// Count returns the number of options.
func (p *Picker) Count() int {
	return len(p.options)
}

// IsEmpty returns whether the picker has no options.
func (p *Picker) IsEmpty() bool {
	return len(p.options) == 0
}
