package services

import (
	"fmt"
	"time"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driven"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage. API keys are stored per provider,
// mirroring the session's per-provider credential cache.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyLLMProvider      = "llm.provider"
	keyLLMModel         = "llm.model"
	keyLLMAPIKeyPrefix  = "llm.api_key."
	keyYoutubeLanguages = "loader.youtube.languages"
	keyHTTPTimeoutSecs  = "loader.http.timeout_seconds"
	keyLoaderWatch      = "loader.watch_enabled"
)

// SettingsService manages persisted application defaults.
type SettingsService struct {
	configStore driven.ConfigStore
	aiValidator driven.AIConfigValidator
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, aiValidator driven.AIConfigValidator) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		aiValidator: aiValidator,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	provider := s.getProvider(keyLLMProvider, defaults.LLM.Provider)
	model := s.getString(keyLLMModel, domain.DefaultModel(provider))
	if !domain.IsValidModel(provider, model) {
		model = domain.DefaultModel(provider)
	}

	settings := &domain.AppSettings{
		LLM: domain.LLMSettings{
			Provider: provider,
			Model:    model,
			APIKey:   s.APIKeyFor(provider),
		},
		Loader: domain.LoaderSettings{
			YoutubeLanguages: s.getStringSlice(keyYoutubeLanguages, defaults.Loader.YoutubeLanguages),
			HTTPTimeout:      s.getTimeout(defaults.Loader.HTTPTimeout),
			WatchEnabled:     s.getBool(keyLoaderWatch, defaults.Loader.WatchEnabled),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyLLMProvider, settings.LLM.Provider.String()); err != nil {
		return fmt.Errorf("save llm provider: %w", err)
	}
	if err := s.configStore.Set(keyLLMModel, settings.LLM.Model); err != nil {
		return fmt.Errorf("save llm model: %w", err)
	}
	if settings.LLM.APIKey != "" {
		if err := s.configStore.Set(keyLLMAPIKeyPrefix+settings.LLM.Provider.String(), settings.LLM.APIKey); err != nil {
			return fmt.Errorf("save llm api_key: %w", err)
		}
	}

	if err := s.configStore.Set(keyYoutubeLanguages, settings.Loader.YoutubeLanguages); err != nil {
		return fmt.Errorf("save youtube languages: %w", err)
	}
	if err := s.configStore.Set(keyHTTPTimeoutSecs, int(settings.Loader.HTTPTimeout/time.Second)); err != nil {
		return fmt.Errorf("save http timeout: %w", err)
	}
	if err := s.configStore.Set(keyLoaderWatch, settings.Loader.WatchEnabled); err != nil {
		return fmt.Errorf("save watch enabled: %w", err)
	}

	return nil
}

// SetLLMProvider configures the default provider, model and key.
func (s *SettingsService) SetLLMProvider(provider domain.Provider, model, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidProvider, provider)
	}

	if model == "" {
		model = domain.DefaultModel(provider)
	}
	if !domain.IsValidModel(provider, model) {
		return fmt.Errorf("%w: %q is not offered by %s", domain.ErrInvalidModel, model, provider.Description())
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.LLM.Provider = provider
	settings.LLM.Model = model
	settings.LLM.APIKey = apiKey

	return s.Save(settings)
}

// SetAPIKey stores the default credential for one provider.
func (s *SettingsService) SetAPIKey(provider domain.Provider, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidProvider, provider)
	}
	if err := s.configStore.Set(keyLLMAPIKeyPrefix+provider.String(), apiKey); err != nil {
		return fmt.Errorf("save llm api_key: %w", err)
	}
	return nil
}

// APIKeyFor returns the stored default credential for a provider.
func (s *SettingsService) APIKeyFor(provider domain.Provider) string {
	return s.configStore.GetString(keyLLMAPIKeyPrefix + provider.String())
}

// SetYoutubeLanguages updates the caption language preference list.
func (s *SettingsService) SetYoutubeLanguages(languages []string) error {
	if len(languages) == 0 {
		return fmt.Errorf("%w: language list must not be empty", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyYoutubeLanguages, languages); err != nil {
		return fmt.Errorf("save youtube languages: %w", err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ConfigPath identifies where settings are persisted.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

// ValidateLLMConfig validates the current LLM configuration by pinging the provider.
func (s *SettingsService) ValidateLLMConfig() error {
	if s.aiValidator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.aiValidator.ValidateLLM(&settings.LLM)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getTimeout(defaultVal time.Duration) time.Duration {
	secs := s.configStore.GetInt(keyHTTPTimeoutSecs)
	if secs <= 0 {
		return defaultVal
	}
	return time.Duration(secs) * time.Second
}

func (s *SettingsService) getProvider(key string, defaultVal domain.Provider) domain.Provider {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	provider := domain.Provider(val)
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}
