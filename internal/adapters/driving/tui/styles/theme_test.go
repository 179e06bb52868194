package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme_PaletteComplete(t *testing.T) {
	theme := DefaultTheme()
	require.NotNil(t, theme)

	palette := map[string]lipgloss.Color{
		"Primary":    theme.Primary,
		"Secondary":  theme.Secondary,
		"Background": theme.Background,
		"Foreground": theme.Foreground,
		"Muted":      theme.Muted,
		"Success":    theme.Success,
		"Warning":    theme.Warning,
		"Error":      theme.Error,
		"Border":     theme.Border,
	}

	seen := make(map[string]string)
	for name, c := range palette {
		assert.NotEmpty(t, string(c), "%s has no colour", name)
		if prev, dup := seen[string(c)]; dup {
			t.Errorf("%s and %s share colour %s", name, prev, c)
		}
		seen[string(c)] = name
	}
}

func TestNewStyles_Theme(t *testing.T) {
	theme := DefaultTheme()
	assert.Equal(t, theme, NewStyles(theme).Theme())

	// A nil theme falls back to the default palette.
	styles := NewStyles(nil)
	require.NotNil(t, styles)
	assert.NotNil(t, styles.Theme())
}

func TestNewStyles_SemanticColours(t *testing.T) {
	theme := DefaultTheme()
	styles := NewStyles(theme)

	assert.Equal(t, theme.Primary, styles.Title.GetForeground())
	assert.Equal(t, theme.Error, styles.Error.GetForeground())
	assert.Equal(t, theme.Success, styles.Success.GetForeground())
	assert.Equal(t, theme.Warning, styles.Notice.GetForeground())
	assert.Equal(t, theme.Muted, styles.Help.GetForeground())
}

func TestNewStyles_Emphasis(t *testing.T) {
	styles := DefaultStyles()

	assert.True(t, styles.Title.GetBold())
	assert.True(t, styles.Selected.GetBold())
	assert.True(t, styles.Notice.GetBold())
	assert.True(t, styles.ButtonFocused.GetBold())
	assert.False(t, styles.Normal.GetBold())
	assert.False(t, styles.Muted.GetBold())
}

func TestStyles_RenderKeepsText(t *testing.T) {
	styles := DefaultStyles()

	cases := []struct {
		name  string
		style lipgloss.Style
		text  string
	}{
		{"Title", styles.Title, "Oracle"},
		{"Subtitle", styles.Subtitle, "Chat"},
		{"Normal", styles.Normal, "What does chapter two cover?"},
		{"Muted", styles.Muted, "esc to go back"},
		{"Selected", styles.Selected, "> Website"},
		{"Error", styles.Error, "failed to load document"},
		{"Success", styles.Success, "chain initialised"},
		{"Notice", styles.Notice, "Document changed. Press r to reload."},
		{"InputField", styles.InputField, "https://example.com/guide"},
		{"Button", styles.Button, "Start"},
		{"ButtonFocused", styles.ButtonFocused, "Start"},
		{"StatusBar", styles.StatusBar, "groq | llama-3.1-70b-versatile"},
		{"Help", styles.Help, "enter send"},
		{"Border", styles.Border, "history"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, tc.style.Render(tc.text), tc.text)
		})
	}
}
