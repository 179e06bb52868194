package driven

// ConfigStore reads and writes persisted settings. Keys use dot notation
// mirroring the TOML layout: "llm.provider", "loader.youtube_languages".
// The typed getters return zero values for absent or mistyped keys; the
// settings service layers defaults on top.
type ConfigStore interface {
	// Get returns the raw value under key and whether it exists.
	Get(key string) (any, bool)

	// GetString returns the string under key, or "".
	GetString(key string) string

	// GetInt returns the integer under key, or 0.
	GetInt(key string) int

	// GetBool returns the boolean under key, or false.
	GetBool(key string) bool

	// GetStringSlice returns the strings under key, or nil.
	GetStringSlice(key string) []string

	// Set stores a value under key. Implementations persist immediately.
	Set(key string, value any) error

	// Save persists the current settings.
	Save() error

	// Load replaces the in-memory settings from storage.
	Load() error

	// Path identifies the backing storage, shown in config output.
	Path() string
}
