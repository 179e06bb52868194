package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// resetLogger restores the package defaults after a test.
func resetLogger() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer resetLogger()

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	defer resetLogger()

	tests := []struct {
		name     string
		log      func()
		expected string
	}{
		{
			name:     "debug",
			log:      func() { Debug("loading %s", "notes.txt") },
			expected: "[DEBUG] loading notes.txt\n",
		},
		{
			name:     "info",
			log:      func() { Info("extracted %d fragments", 12) },
			expected: "[INFO] extracted 12 fragments\n",
		},
		{
			name:     "warn",
			log:      func() { Warn("watcher closed: %v", "shutdown") },
			expected: "[WARN] watcher closed: shutdown\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetOutput(&buf)
			SetVerbose(true)

			tt.log()

			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	assert.Empty(t, buf.String())
}

func TestSection(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Chain Initialisation")

	assert.Equal(t, "\n=== Chain Initialisation ===\n", buf.String())
}
