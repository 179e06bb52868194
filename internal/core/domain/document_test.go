package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJoinFragments tests the fragment concatenation rule
func TestJoinFragments(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		expected  string
	}{
		{
			name:      "single fragment is unchanged",
			fragments: []string{"Hello\nWorld"},
			expected:  "Hello\nWorld",
		},
		{
			name:      "two fragments joined by blank line",
			fragments: []string{"page one", "page two"},
			expected:  "page one\n\npage two",
		},
		{
			name:      "three fragments",
			fragments: []string{"a", "b", "c"},
			expected:  "a\n\nb\n\nc",
		},
		{
			name:      "no fragments",
			fragments: nil,
			expected:  "",
		},
		{
			name:      "fragments keep their internal newlines",
			fragments: []string{"name: Ada\nrole: admin", "name: Bob\nrole: user"},
			expected:  "name: Ada\nrole: admin\n\nname: Bob\nrole: user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, JoinFragments(tt.fragments))
		})
	}
}

// TestNewDocument tests document assembly from extraction output
func TestNewDocument(t *testing.T) {
	src := Source{Type: SourceTypePdf, Location: "/tmp/report.pdf"}
	doc := NewDocument(src, []string{"page one", "page two"})

	assert.Equal(t, SourceTypePdf, doc.SourceType)
	assert.Equal(t, "/tmp/report.pdf", doc.Location)
	assert.Equal(t, "page one\n\npage two", doc.Content)
	assert.Equal(t, 2, doc.Fragments)
	require.False(t, doc.LoadedAt.IsZero())
}

// TestDocument_IsEmpty tests empty-document detection
func TestDocument_IsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{
			name:     "text content",
			content:  "Hello",
			expected: false,
		},
		{
			name:     "empty string",
			content:  "",
			expected: true,
		},
		{
			name:     "whitespace only",
			content:  " \n\t\n ",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Document{Content: tt.content}
			assert.Equal(t, tt.expected, doc.IsEmpty())
		})
	}
}
