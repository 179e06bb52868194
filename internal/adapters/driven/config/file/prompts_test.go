package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driven"
)

// writePersona drops a persona.txt into dir before the store first touches it.
func writePersona(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "persona.txt"), []byte(content), 0600))
}

func TestNewPromptStore(t *testing.T) {
	t.Run("custom directory", func(t *testing.T) {
		dir := t.TempDir()

		store, err := NewPromptStore(dir)

		require.NoError(t, err)
		assert.Equal(t, dir, store.Dir())
	})

	t.Run("default directory under home", func(t *testing.T) {
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("cannot determine home directory")
		}

		store, err := NewPromptStore("")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".oracle", "prompts"), store.Dir())
	})
}

func TestPromptStore_Load(t *testing.T) {
	t.Run("serves the shipped persona by default", func(t *testing.T) {
		store, err := NewPromptStore(t.TempDir())
		require.NoError(t, err)

		prompt, err := store.Load(driven.PromptPersona)

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultPersona, prompt)
	})

	t.Run("serves an edited persona file", func(t *testing.T) {
		dir := t.TempDir()
		writePersona(t, dir, "You are a terse archivist who answers in one sentence.")
		store, err := NewPromptStore(dir)
		require.NoError(t, err)

		prompt, err := store.Load(driven.PromptPersona)

		require.NoError(t, err)
		assert.Equal(t, "You are a terse archivist who answers in one sentence.", prompt)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		dir := t.TempDir()
		writePersona(t, dir, "\n\n  You are the Oracle.  \n\n")
		store, err := NewPromptStore(dir)
		require.NoError(t, err)

		prompt, err := store.Load(driven.PromptPersona)

		require.NoError(t, err)
		assert.Equal(t, "You are the Oracle.", prompt)
	})

	t.Run("falls back to embedded text when the file disappears", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewPromptStore(dir)
		require.NoError(t, err)

		_, err = store.Load(driven.PromptPersona)
		require.NoError(t, err)
		require.NoError(t, os.Remove(filepath.Join(dir, "persona.txt")))
		store.Reload()

		prompt, err := store.Load(driven.PromptPersona)

		require.NoError(t, err)
		assert.Contains(t, prompt, "friendly assistant named Oracle")
	})

	t.Run("unknown prompt name errors", func(t *testing.T) {
		store, err := NewPromptStore(t.TempDir())
		require.NoError(t, err)

		_, err = store.Load("nonexistent_prompt")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "nonexistent_prompt")
	})
}

func TestPromptStore_SeedsDirectoryOnFirstLoad(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	_, err = store.Load(driven.PromptPersona)
	require.NoError(t, err)

	for _, f := range []string{"persona.txt", "README.md"} {
		_, err := os.Stat(filepath.Join(dir, f))
		assert.NoError(t, err, "expected %s to be seeded", f)
	}
}

func TestPromptStore_SeedKeepsUserEdits(t *testing.T) {
	dir := t.TempDir()
	writePersona(t, dir, "pre-existing custom persona")

	store, err := NewPromptStore(dir)
	require.NoError(t, err)
	_, err = store.Load(driven.PromptPersona)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "persona.txt"))
	require.NoError(t, err)
	assert.Equal(t, "pre-existing custom persona", string(data))
}

func TestPromptStore_CacheAndReload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	before, err := store.Load(driven.PromptPersona)
	require.NoError(t, err)

	// Edits are invisible until Reload drops the cache.
	writePersona(t, dir, "You are a pirate captain.")

	cached, err := store.Load(driven.PromptPersona)
	require.NoError(t, err)
	assert.Equal(t, before, cached)

	store.Reload()

	fresh, err := store.Load(driven.PromptPersona)
	require.NoError(t, err)
	assert.Equal(t, "You are a pirate captain.", fresh)
}

func TestPromptStore_ConcurrentLoads(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	const goroutines = 100
	results := make([]string, goroutines)
	errs := make([]error, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = store.Load(driven.PromptPersona)
		}(i)
	}
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, domain.DefaultPersona, results[i])
	}
}
