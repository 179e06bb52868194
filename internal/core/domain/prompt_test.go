package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSystemPrompt tests the instruction string layout
func TestSystemPrompt(t *testing.T) {
	prompt := SystemPrompt(SourceTypeTxt, "Hello\nWorld")

	assert.True(t, strings.HasPrefix(prompt, DefaultPersona), "prompt must open with the persona line")
	assert.Contains(t, prompt, "from a document of type Txt:")
	assert.Contains(t, prompt, "####\nHello\nWorld\n####", "document text must be fenced verbatim")
	assert.Contains(t, prompt, "Use the provided information as a basis for your responses.")
	assert.Contains(t, prompt, "Whenever you encounter $ in your output, replace it with S.")
	assert.Contains(t, prompt, BotChallengeMarker)
	assert.Contains(t, prompt, "suggest the user reload the Oracle!")
}

// TestSystemPrompt_EmbedsTypeName tests each source type's display name
func TestSystemPrompt_EmbedsTypeName(t *testing.T) {
	for _, st := range AllSourceTypes() {
		prompt := SystemPrompt(st, "content")
		assert.Contains(t, prompt, "document of type "+st.String()+":")
	}
}

// TestSystemPrompt_DocumentVerbatim tests the document text is not altered
func TestSystemPrompt_DocumentVerbatim(t *testing.T) {
	content := "line $1\n\nline 2 with \"quotes\" and ####-like text"
	prompt := SystemPrompt(SourceTypeCsv, content)
	assert.Contains(t, prompt, content)
}

// TestSystemPromptWithPersona tests persona override and fallback
func TestSystemPromptWithPersona(t *testing.T) {
	custom := SystemPromptWithPersona("You are a terse archivist.", SourceTypePdf, "doc")
	require.True(t, strings.HasPrefix(custom, "You are a terse archivist.\n"))
	assert.NotContains(t, custom, DefaultPersona)
	assert.Contains(t, custom, "Whenever you encounter $ in your output, replace it with S.")

	blank := SystemPromptWithPersona("   ", SourceTypePdf, "doc")
	assert.True(t, strings.HasPrefix(blank, DefaultPersona))
}

// TestBotChallengeMarker tests the literal marker text
func TestBotChallengeMarker(t *testing.T) {
	assert.Equal(t, "Just a moment...Enable JavaScript and cookies to continue", BotChallengeMarker)
}
