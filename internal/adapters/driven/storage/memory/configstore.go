package memory

import (
	"sync"

	"github.com/pythia-labs/oracle-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps settings in a map instead of the TOML file the file
// store writes. Tests use it to exercise the settings service without
// touching the filesystem.
type ConfigStore struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewConfigStore creates an empty in-memory config store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		entries: make(map[string]any),
	}
}

// typed looks up key and asserts the value to T. Methods cannot carry type
// parameters, so the getters share this package-level helper.
func typed[T any](s *ConfigStore, key string) (T, bool) {
	var zero T
	val, ok := s.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := val.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Get returns the raw value stored under key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.entries[key]
	return val, ok
}

// GetString returns the string under key, or "" when absent or not a string.
func (s *ConfigStore) GetString(key string) string {
	val, _ := typed[string](s, key)
	return val
}

// GetInt returns the integer under key. TOML decoding can surface numbers
// as int64 or float64, so those are converted rather than rejected.
func (s *ConfigStore) GetInt(key string) int {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// GetBool returns the boolean under key, or false when absent or not a bool.
func (s *ConfigStore) GetBool(key string) bool {
	val, _ := typed[bool](s, key)
	return val
}

// GetStringSlice returns the strings under key. A decoded TOML array
// arrives as []any; its string elements are kept and the rest dropped.
func (s *ConfigStore) GetStringSlice(key string) []string {
	if vals, ok := typed[[]string](s, key); ok {
		return vals
	}
	items, ok := typed[[]any](s, key)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if str, ok := item.(string); ok {
			out = append(out, str)
		}
	}
	return out
}

// Set stores value under key, replacing any previous value.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

// Save is a no-op; the store has nothing to persist to.
func (s *ConfigStore) Save() error {
	return nil
}

// Load is a no-op; the store starts empty and lives in memory.
func (s *ConfigStore) Load() error {
	return nil
}

// Path identifies the store in log lines where a file path would appear.
func (s *ConfigStore) Path() string {
	return ":memory:"
}
