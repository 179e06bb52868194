package domain

import (
	"fmt"
	"strings"
	"time"
)

const unknownDescription = "Unknown"

// Provider identifies a hosted chat-completion service.
type Provider string

// Available providers.
const (
	// ProviderGroq is the Groq cloud API (OpenAI-compatible wire format).
	ProviderGroq Provider = "groq"

	// ProviderOpenAI is the OpenAI cloud API.
	ProviderOpenAI Provider = "openai"
)

// IsValid returns true if the provider is recognised.
func (p Provider) IsValid() bool {
	switch p {
	case ProviderGroq, ProviderOpenAI:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
// Every supported provider is a hosted service, so this is always true;
// callers gate credential checks on it rather than on provider identity.
func (p Provider) RequiresAPIKey() bool {
	return p == ProviderGroq || p == ProviderOpenAI
}

// String returns the string representation.
func (p Provider) String() string {
	return string(p)
}

// Description returns the human-readable provider name.
func (p Provider) Description() string {
	switch p {
	case ProviderGroq:
		return "Groq"
	case ProviderOpenAI:
		return "OpenAI"
	default:
		return unknownDescription
	}
}

// AllProviders returns all supported providers in display order.
func AllProviders() []Provider {
	return []Provider{
		ProviderGroq,
		ProviderOpenAI,
	}
}

// ParseProvider resolves a case-insensitive name to a provider.
func ParseProvider(s string) (Provider, error) {
	for _, p := range AllProviders() {
		if strings.EqualFold(s, string(p)) || strings.EqualFold(s, p.Description()) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidProvider, s)
}

// ProviderModels returns the selectable chat models for each provider.
// The first entry is the provider's default.
func ProviderModels() map[Provider][]string {
	return map[Provider][]string{
		ProviderGroq: {
			"llama-3.1-70b-versatile",
			"gemma2-9b-it",
			"mixtral-8x7b-32768",
		},
		ProviderOpenAI: {
			"gpt-4o-mini",
			"gpt-4o",
			"o1-preview",
			"o1-mini",
		},
	}
}

// ModelsFor returns the selectable models for a provider.
func ModelsFor(p Provider) []string {
	return ProviderModels()[p]
}

// DefaultModel returns the default model for a provider.
func DefaultModel(p Provider) string {
	models := ModelsFor(p)
	if len(models) == 0 {
		return ""
	}
	return models[0]
}

// IsValidModel returns true if the model is offered by the provider.
func IsValidModel(p Provider, model string) bool {
	for _, m := range ModelsFor(p) {
		if m == model {
			return true
		}
	}
	return false
}

// LLMSettings holds chat model configuration.
type LLMSettings struct {
	// Provider is the chat service provider.
	Provider Provider

	// Model is the chat model name.
	Model string

	// APIKey is the provider credential.
	APIKey string
}

// IsConfigured returns true if the settings can construct a client.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if !IsValidModel(l.Provider, l.Model) {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// Validate returns the first configuration problem, or nil.
func (l LLMSettings) Validate() error {
	if !l.Provider.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidProvider, string(l.Provider))
	}
	if !IsValidModel(l.Provider, l.Model) {
		return fmt.Errorf("%w: %q is not offered by %s", ErrInvalidModel, l.Model, l.Provider.Description())
	}
	if l.Provider.RequiresAPIKey() && strings.TrimSpace(l.APIKey) == "" {
		return fmt.Errorf("%w: %s", ErrMissingAPIKey, l.Provider.Description())
	}
	return nil
}

// LoaderSettings holds document extraction configuration.
type LoaderSettings struct {
	// YoutubeLanguages is the caption language preference list, in order.
	YoutubeLanguages []string

	// HTTPTimeout bounds each outbound fetch performed by a loader.
	HTTPTimeout time.Duration

	// WatchEnabled re-offers initialisation when a loaded file changes
	// on disk.
	WatchEnabled bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	// LLM holds chat model settings.
	LLM LLMSettings

	// Loader holds document extraction settings.
	Loader LoaderSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The LLM provider and model default to the first selectable entries;
// the API key must be supplied by the user.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		LLM: LLMSettings{
			Provider: ProviderGroq,
			Model:    DefaultModel(ProviderGroq),
		},
		Loader: LoaderSettings{
			YoutubeLanguages: []string{"pt"},
			HTTPTimeout:      30 * time.Second,
			WatchEnabled:     true,
		},
	}
}
