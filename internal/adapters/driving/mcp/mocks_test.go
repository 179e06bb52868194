package mcp

import (
	"context"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driving"
)

// mockSessionService is a mock implementation of driving.SessionService.
type mockSessionService struct {
	chain     domain.Chain
	haveChain bool
	document  domain.Document
	haveDoc   bool
	err       error

	gotCfg driving.InitConfig
}

func (m *mockSessionService) Initialise(_ context.Context, cfg driving.InitConfig) (domain.Chain, error) {
	m.gotCfg = cfg
	if m.err != nil {
		return domain.Chain{}, m.err
	}
	return m.chain, nil
}

func (m *mockSessionService) Chain() (domain.Chain, bool) {
	return m.chain, m.haveChain
}

func (m *mockSessionService) Document() (domain.Document, bool) {
	return m.document, m.haveDoc
}

func (m *mockSessionService) CachedAPIKey(_ domain.Provider) (string, bool) {
	return "", false
}

func (m *mockSessionService) CacheAPIKey(_ domain.Provider, _ string) {}

func (m *mockSessionService) Close() error {
	return nil
}

// mockConversationService is a mock implementation of driving.ConversationService.
type mockConversationService struct {
	answer  string
	history []domain.Message
	err     error
	cleared bool
}

func (m *mockConversationService) StreamTurn(_ context.Context, _ string) (<-chan string, <-chan error) {
	chunks := make(chan string)
	close(chunks)
	errs := make(chan error, 1)
	if m.err != nil {
		errs <- m.err
	}
	close(errs)
	return chunks, errs
}

func (m *mockConversationService) Ask(_ context.Context, _ string) (string, error) {
	return m.answer, m.err
}

func (m *mockConversationService) History() []domain.Message {
	return m.history
}

func (m *mockConversationService) ClearHistory() {
	m.cleared = true
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	keys     map[domain.Provider]string
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.settings != nil {
		return m.settings, nil
	}
	defaults := domain.DefaultAppSettings()
	return &defaults, nil
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error {
	return m.err
}

func (m *mockSettingsService) SetLLMProvider(_ domain.Provider, _, _ string) error {
	return m.err
}

func (m *mockSettingsService) SetAPIKey(_ domain.Provider, _ string) error {
	return m.err
}

func (m *mockSettingsService) APIKeyFor(provider domain.Provider) string {
	return m.keys[provider]
}

func (m *mockSettingsService) SetYoutubeLanguages(_ []string) error {
	return m.err
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *mockSettingsService) ValidateLLMConfig() error {
	return m.err
}

func (m *mockSettingsService) ConfigPath() string {
	return ":memory:"
}
