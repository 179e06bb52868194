// Package config provides the initialisation view for the TUI: pick a
// source, pick a model, initialise the Oracle.
package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pythia-labs/oracle-cli/internal/adapters/driving/tui/components/input"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driving/tui/components/picker"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driving/tui/messages"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driving/tui/styles"
	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driving"
)

// Section tracks which configuration section is active.
type Section int

const (
	SectionOverview Section = iota
	SectionSourceType
	SectionSourceLocation
	SectionProvider
	SectionModel
	SectionAPIKey
)

// Overview rows in display order.
const (
	rowSourceType = iota
	rowSourceLocation
	rowProvider
	rowModel
	rowAPIKey
	rowInitialize
	rowCount
)

// Key constants for key handling.
const (
	keyDown  = "down"
	keyEnter = "enter"
)

// View is the configuration view.
type View struct {
	styles   *styles.Styles
	session  driving.SessionService
	content  driving.ContentService
	settings driving.SettingsService

	// Selections staged for the next initialisation
	sourceType domain.SourceType
	location   string
	provider   domain.Provider
	model      string
	apiKey     string

	// Navigation state
	section  Section
	selected int // overview row

	// Section components
	typePicker     *picker.Picker
	providerPicker *picker.Picker
	modelPicker    *picker.Picker
	locationInput  *input.TextField
	keyInput       *input.TextField

	spinner      spinner.Model
	initialising bool
	seeded       bool
	err          error

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewView creates a new configuration view.
func NewView(
	s *styles.Styles,
	session driving.SessionService,
	content driving.ContentService,
	settings driving.SettingsService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Title

	defaults := domain.DefaultAppSettings()

	v := &View{
		styles:         s,
		session:        session,
		content:        content,
		settings:       settings,
		sourceType:     domain.SourceTypeWebsite,
		provider:       defaults.LLM.Provider,
		model:          defaults.LLM.Model,
		section:        SectionOverview,
		typePicker:     picker.New(s, "Select file type"),
		providerPicker: picker.New(s, "Select model provider"),
		modelPicker:    picker.New(s, "Select model"),
		locationInput:  input.NewTextField(s, "", ""),
		keyInput:       input.NewSecretField(s, "", "Paste the key"),
		spinner:        sp,
	}

	v.typePicker.SetOptions(typeOptions(v.supportedTypes()))
	v.providerPicker.SetOptions(providerOptions())
	v.modelPicker.SetOptions(modelOptions(v.provider))

	return v
}

// Init initialises the view and loads persisted settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settings == nil {
			return messages.SettingsLoaded{Err: fmt.Errorf("settings service not available")}
		}
		settings, err := v.settings.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the configuration view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.seedFromSettings(msg.Settings)
		return v, nil

	case messages.InitCompleted:
		v.initialising = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.err = nil
		}
		return v, nil

	case spinner.TickMsg:
		if !v.initialising {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// seedFromSettings adopts persisted defaults the first time settings
// arrive. Later loads must not clobber what the user already changed.
func (v *View) seedFromSettings(settings *domain.AppSettings) {
	if v.seeded || settings == nil {
		return
	}
	v.seeded = true

	if settings.LLM.Provider.IsValid() {
		v.provider = settings.LLM.Provider
	}
	if domain.IsValidModel(v.provider, settings.LLM.Model) {
		v.model = settings.LLM.Model
	} else {
		v.model = domain.DefaultModel(v.provider)
	}
	if settings.LLM.APIKey != "" {
		v.apiKey = settings.LLM.APIKey
	}

	v.providerPicker.SetSelected(providerIndex(v.provider))
	v.modelPicker.SetOptions(modelOptions(v.provider))
	v.modelPicker.Select(v.model)
}

// handleKeyMsg handles key presses based on current section.
//
//nolint:exhaustive // explicit default handling for escape provides better UX
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Ignore input while an initialisation is running; ctrl+c is
	// handled above this view.
	if v.initialising {
		return v, nil
	}

	// Global escape to go back
	if msg.String() == "esc" {
		switch v.section {
		case SectionOverview:
			// Only leaves once a chain exists to return to
			if _, ok := v.session.Chain(); ok {
				return v, func() tea.Msg {
					return messages.ViewChanged{View: messages.ViewChat}
				}
			}
			return v, nil
		default:
			v.closeSection()
			return v, nil
		}
	}

	switch v.section {
	case SectionOverview:
		return v.handleOverviewKeys(msg)
	case SectionSourceType:
		return v.handleTypeKeys(msg)
	case SectionSourceLocation:
		return v.handleLocationKeys(msg)
	case SectionProvider:
		return v.handleProviderKeys(msg)
	case SectionModel:
		return v.handleModelKeys(msg)
	case SectionAPIKey:
		return v.handleAPIKeyKeys(msg)
	}

	return v, nil
}

func (v *View) handleOverviewKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < rowCount-1 {
			v.selected++
		}
	case "?":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHelp}
		}
	case keyEnter:
		return v.openSelectedRow()
	}
	return v, nil
}

func (v *View) openSelectedRow() (*View, tea.Cmd) {
	switch v.selected {
	case rowSourceType:
		v.section = SectionSourceType
		v.typePicker.Select(v.sourceType.String())
	case rowSourceLocation:
		v.section = SectionSourceLocation
		v.locationInput.SetLabel(locationLabel(v.sourceType) + " ")
		v.locationInput.SetPlaceholder(locationPlaceholder(v.sourceType))
		v.locationInput.SetValue(v.location)
		return v, v.locationInput.Focus()
	case rowProvider:
		v.section = SectionProvider
		v.providerPicker.SetSelected(providerIndex(v.provider))
	case rowModel:
		v.section = SectionModel
		v.modelPicker.SetOptions(modelOptions(v.provider))
		v.modelPicker.Select(v.model)
	case rowAPIKey:
		v.section = SectionAPIKey
		v.keyInput.SetLabel(fmt.Sprintf("Enter the API key for %s ", v.provider.Description()))
		v.keyInput.SetValue(v.apiKey)
		return v, v.keyInput.Focus()
	case rowInitialize:
		return v.initialise()
	}
	return v, nil
}

// closeSection returns to the overview without saving.
func (v *View) closeSection() {
	v.section = SectionOverview
	v.locationInput.Blur()
	v.keyInput.Blur()
}

func (v *View) handleTypeKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == keyEnter {
		types := v.supportedTypes()
		if i := v.typePicker.Selected(); i >= 0 && i < len(types) {
			v.setSourceType(types[i])
		}
		v.closeSection()
		return v, nil
	}
	var cmd tea.Cmd
	v.typePicker, cmd = v.typePicker.Update(msg)
	return v, cmd
}

// setSourceType records the type. A type switch invalidates the
// location: a URL is no path and vice versa.
func (v *View) setSourceType(t domain.SourceType) {
	if t == v.sourceType {
		return
	}
	if t.IsRemote() != v.sourceType.IsRemote() {
		v.location = ""
	}
	v.sourceType = t
}

func (v *View) handleLocationKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == keyEnter {
		v.location = strings.TrimSpace(v.locationInput.Value())
		v.closeSection()
		return v, nil
	}
	var cmd tea.Cmd
	v.locationInput, cmd = v.locationInput.Update(msg)
	return v, cmd
}

func (v *View) handleProviderKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == keyEnter {
		providers := domain.AllProviders()
		if i := v.providerPicker.Selected(); i >= 0 && i < len(providers) {
			v.setProvider(providers[i])
		}
		v.closeSection()
		return v, nil
	}
	var cmd tea.Cmd
	v.providerPicker, cmd = v.providerPicker.Update(msg)
	return v, cmd
}

// setProvider records the provider and realigns the model and API key
// with it.
func (v *View) setProvider(p domain.Provider) {
	v.provider = p
	if !domain.IsValidModel(p, v.model) {
		v.model = domain.DefaultModel(p)
	}
	v.modelPicker.SetOptions(modelOptions(p))
	v.modelPicker.Select(v.model)

	// Prefer the key last used for this provider in the session, then
	// the persisted one.
	if key, ok := v.session.CachedAPIKey(p); ok {
		v.apiKey = key
	} else if v.settings != nil {
		v.apiKey = v.settings.APIKeyFor(p)
	}
}

func (v *View) handleModelKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == keyEnter {
		models := domain.ModelsFor(v.provider)
		if i := v.modelPicker.Selected(); i >= 0 && i < len(models) {
			v.model = models[i]
		}
		v.closeSection()
		return v, nil
	}
	var cmd tea.Cmd
	v.modelPicker, cmd = v.modelPicker.Update(msg)
	return v, cmd
}

func (v *View) handleAPIKeyKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == keyEnter {
		v.apiKey = strings.TrimSpace(v.keyInput.Value())
		v.session.CacheAPIKey(v.provider, v.apiKey)
		v.closeSection()
		return v, nil
	}
	var cmd tea.Cmd
	v.keyInput, cmd = v.keyInput.Update(msg)
	return v, cmd
}

// initialise validates the staged configuration and starts the load.
func (v *View) initialise() (*View, tea.Cmd) {
	if v.location == "" {
		v.err = errors.New("set the document source first")
		return v, nil
	}
	if v.apiKey == "" {
		v.err = fmt.Errorf("enter the API key for %s first", v.provider.Description())
		return v, nil
	}

	cfg := driving.InitConfig{
		Provider: v.provider,
		Model:    v.model,
		APIKey:   v.apiKey,
		Source: domain.Source{
			Type:     v.sourceType,
			Location: v.location,
		},
	}

	v.err = nil
	v.initialising = true

	init := func() tea.Msg {
		chain, err := v.session.Initialise(context.Background(), cfg)
		return messages.InitCompleted{Config: cfg, Chain: chain, Err: err}
	}
	return v, tea.Batch(v.spinner.Tick, init)
}

// View renders the configuration view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("🤖 Welcome to the Oracle"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.initialising {
		b.WriteString(v.spinner.View())
		b.WriteString(v.styles.Normal.Render(" Initialising the Oracle..."))
		b.WriteString("\n")
		return b.String()
	}

	switch v.section {
	case SectionOverview:
		b.WriteString(v.renderOverview())
	case SectionSourceType:
		b.WriteString(v.typePicker.View())
	case SectionSourceLocation:
		b.WriteString(v.locationInput.View())
	case SectionProvider:
		b.WriteString(v.providerPicker.View())
	case SectionModel:
		b.WriteString(v.modelPicker.View())
	case SectionAPIKey:
		b.WriteString(v.keyInput.View())
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

func (v *View) renderOverview() string {
	var b strings.Builder

	location := v.location
	if location == "" {
		location = "Not Set"
	}

	key := "Not Set"
	if v.apiKey != "" {
		key = maskKey(v.apiKey)
	}

	rows := []struct {
		group string
		label string
		value string
	}{
		{group: "File Upload", label: "File type", value: v.sourceType.String()},
		{label: locationRowLabel(v.sourceType), value: location},
		{group: "Model Selection", label: "Provider", value: v.provider.Description()},
		{label: "Model", value: v.model},
		{label: "API key", value: key},
	}

	for i, row := range rows {
		if row.group != "" {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(v.styles.Subtitle.Render(row.group))
			b.WriteString("\n")
		}

		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}

		line := fmt.Sprintf("%s%s: %s", indicator, row.label, row.value)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	button := "Initialize Oracle"
	if v.selected == rowInitialize {
		b.WriteString(v.styles.ButtonFocused.Render(button))
	} else {
		b.WriteString(v.styles.Button.Render(button))
	}
	b.WriteString("\n\n")
	b.WriteString(v.renderReadiness())

	return b.String()
}

// renderReadiness summarises whether an initialisation can start.
func (v *View) renderReadiness() string {
	if v.location == "" {
		return v.styles.Warning.Render("Set the document source to continue")
	}
	if v.apiKey == "" {
		return v.styles.Warning.Render(fmt.Sprintf("Enter the API key for %s to continue", v.provider.Description()))
	}
	return v.styles.Success.Render("Ready to initialise")
}

func (v *View) renderHelp() string {
	switch v.section {
	case SectionOverview:
		return v.styles.Help.Render("[j/k] navigate  [enter] edit  [?] help")
	case SectionSourceLocation, SectionAPIKey:
		return v.styles.Help.Render("[enter] save  [esc] back")
	default:
		return v.styles.Help.Render("[j/k] navigate  [enter] select  [esc] back")
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.typePicker.SetDimensions(width, height-8)
	v.providerPicker.SetDimensions(width, height-8)
	v.modelPicker.SetDimensions(width, height-8)
	v.locationInput.SetWidth(width)
	v.keyInput.SetWidth(width)
}

// Reset resets navigation but keeps the staged configuration, so
// returning to the view continues where the user left off.
func (v *View) Reset() {
	v.section = SectionOverview
	v.selected = 0
	v.initialising = false
	v.err = nil
	v.locationInput.Blur()
	v.keyInput.Blur()
}

// Config returns the staged initialisation configuration.
func (v *View) Config() driving.InitConfig {
	return driving.InitConfig{
		Provider: v.provider,
		Model:    v.model,
		APIKey:   v.apiKey,
		Source: domain.Source{
			Type:     v.sourceType,
			Location: v.location,
		},
	}
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Initialising reports whether an initialisation is in flight.
func (v *View) Initialising() bool {
	return v.initialising
}

// supportedTypes returns the loadable source types.
func (v *View) supportedTypes() []domain.SourceType {
	if v.content != nil {
		if types := v.content.SupportedTypes(); len(types) > 0 {
			return types
		}
	}
	return domain.AllSourceTypes()
}

// Option builders and labels.

func typeOptions(types []domain.SourceType) []picker.Option {
	options := make([]picker.Option, len(types))
	for i, t := range types {
		options[i] = picker.Option{Label: t.String(), Detail: typeHint(t)}
	}
	return options
}

func providerOptions() []picker.Option {
	providers := domain.AllProviders()
	options := make([]picker.Option, len(providers))
	for i, p := range providers {
		options[i] = picker.Option{Label: p.Description(), Detail: domain.DefaultModel(p)}
	}
	return options
}

func modelOptions(p domain.Provider) []picker.Option {
	models := domain.ModelsFor(p)
	options := make([]picker.Option, len(models))
	for i, m := range models {
		detail := ""
		if m == domain.DefaultModel(p) {
			detail = "default"
		}
		options[i] = picker.Option{Label: m, Detail: detail}
	}
	return options
}

func providerIndex(p domain.Provider) int {
	for i, candidate := range domain.AllProviders() {
		if candidate == p {
			return i
		}
	}
	return 0
}

func typeHint(t domain.SourceType) string {
	switch t {
	case domain.SourceTypeWebsite:
		return "page URL"
	case domain.SourceTypeYoutube:
		return "video URL"
	case domain.SourceTypePdf:
		return "PDF file path"
	case domain.SourceTypeCsv:
		return "CSV file path"
	case domain.SourceTypeTxt:
		return "text file path"
	default:
		return ""
	}
}

func locationLabel(t domain.SourceType) string {
	switch t {
	case domain.SourceTypeWebsite:
		return "Enter the website URL"
	case domain.SourceTypeYoutube:
		return "Enter the video URL"
	case domain.SourceTypePdf:
		return "Upload a PDF file"
	case domain.SourceTypeCsv:
		return "Upload a CSV file"
	case domain.SourceTypeTxt:
		return "Upload a TXT file"
	default:
		return "Enter the source location"
	}
}

func locationRowLabel(t domain.SourceType) string {
	if t.IsRemote() {
		return "URL"
	}
	return "File"
}

func locationPlaceholder(t domain.SourceType) string {
	switch t {
	case domain.SourceTypeWebsite:
		return "https://example.com/article"
	case domain.SourceTypeYoutube:
		return "https://www.youtube.com/watch?v=..."
	case domain.SourceTypePdf:
		return "/path/to/document.pdf"
	case domain.SourceTypeCsv:
		return "/path/to/data.csv"
	case domain.SourceTypeTxt:
		return "/path/to/notes.txt"
	default:
		return ""
	}
}

// maskKey hides all but the tail of a credential.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "••••"
	}
	return "••••" + key[len(key)-4:]
}
