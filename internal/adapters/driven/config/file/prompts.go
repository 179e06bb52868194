package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driven"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// embeddedPrompts are the shipped prompt texts. They seed the prompt files
// on first use and answer Load when the files are unreadable.
var embeddedPrompts = map[string]string{
	driven.PromptPersona: domain.DefaultPersona,
}

// PromptStore serves prompt text from user-editable files under the prompt
// directory, one <name>.txt per prompt. Files are seeded lazily on the
// first Load so constructing the store performs no I/O.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	loaded    map[string]string
	seedOnce  sync.Once
	seedErr   error
}

// NewPromptStore creates a prompt store rooted at promptDir. An empty
// promptDir means ~/.oracle/prompts.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".oracle", "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		loaded:    make(map[string]string),
	}, nil
}

// Load returns the prompt text for name. The first call seeds the prompt
// directory; later calls serve from cache until Reload. A prompt whose file
// cannot be read falls back to its embedded text.
func (s *PromptStore) Load(name string) (string, error) {
	s.seedOnce.Do(s.seed)
	if s.seedErr != nil {
		if text, ok := embeddedPrompts[name]; ok {
			return text, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.seedErr)
	}

	s.mu.RLock()
	text, ok := s.loaded[name]
	s.mu.RUnlock()
	if ok {
		return text, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// A concurrent Load may have filled the cache while we waited.
	if text, ok := s.loaded[name]; ok {
		return text, nil
	}

	data, err := os.ReadFile(filepath.Join(s.promptDir, name+".txt"))
	if err != nil {
		if text, ok := embeddedPrompts[name]; ok {
			return text, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	text = strings.TrimSpace(string(data))
	s.loaded[name] = text
	return text, nil
}

// Reload drops the cache so edited prompt files take effect.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.loaded = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// seed creates the prompt directory, the default prompt files and the
// README. Existing files are left alone so user edits survive.
func (s *PromptStore) seed() {
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.seedErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	for name, content := range embeddedPrompts {
		path := filepath.Join(s.promptDir, name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.seedErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	readme := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(readme); os.IsNotExist(err) {
		s.seedErr = os.WriteFile(readme, []byte(promptsReadme), 0600)
	}
}

const promptsReadme = `# Oracle Prompts

This directory contains customisable prompts used by the Oracle.

## Files

- ` + "`persona.txt`" + ` - Who the assistant is. The persona is prepended to the
  system prompt built for each loaded document.

## Customisation

Edit any file to customise the Oracle's behaviour. Changes take effect the
next time the Oracle is initialised.
`
