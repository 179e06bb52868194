package driving

import "github.com/pythia-labs/oracle-cli/internal/core/domain"

// SettingsService manages persisted application defaults.
// These are convenience defaults only: the values actually used by a
// session live in its session store and are supplied per initialisation.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetLLMProvider configures the default provider, model and key.
	SetLLMProvider(provider domain.Provider, model, apiKey string) error

	// SetAPIKey stores the default credential for one provider without
	// switching the default provider.
	SetAPIKey(provider domain.Provider, apiKey string) error

	// APIKeyFor returns the stored default credential for a provider.
	APIKeyFor(provider domain.Provider) string

	// SetYoutubeLanguages updates the caption language preference list.
	SetYoutubeLanguages(languages []string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ConfigPath identifies where settings are persisted.
	ConfigPath() string

	// ValidateLLMConfig validates the current LLM configuration by
	// pinging the provider.
	ValidateLLMConfig() error
}
