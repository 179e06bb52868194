package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driving"
)

// MockSessionService implements driving.SessionService for testing.
type MockSessionService struct {
	InitialiseFunc   func(ctx context.Context, cfg driving.InitConfig) (domain.Chain, error)
	ChainFunc        func() (domain.Chain, bool)
	DocumentFunc     func() (domain.Document, bool)
	CachedAPIKeyFunc func(provider domain.Provider) (string, bool)
	CloseFunc        func() error
}

func (m *MockSessionService) Initialise(ctx context.Context, cfg driving.InitConfig) (domain.Chain, error) {
	if m.InitialiseFunc != nil {
		return m.InitialiseFunc(ctx, cfg)
	}
	return domain.Chain{}, nil
}

func (m *MockSessionService) Chain() (domain.Chain, bool) {
	if m.ChainFunc != nil {
		return m.ChainFunc()
	}
	return domain.Chain{}, false
}

func (m *MockSessionService) Document() (domain.Document, bool) {
	if m.DocumentFunc != nil {
		return m.DocumentFunc()
	}
	return domain.Document{}, false
}

func (m *MockSessionService) CachedAPIKey(provider domain.Provider) (string, bool) {
	if m.CachedAPIKeyFunc != nil {
		return m.CachedAPIKeyFunc(provider)
	}
	return "", false
}

func (m *MockSessionService) CacheAPIKey(provider domain.Provider, key string) {}

func (m *MockSessionService) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// MockConversationService implements driving.ConversationService for testing.
type MockConversationService struct {
	StreamTurnFunc   func(ctx context.Context, input string) (<-chan string, <-chan error)
	AskFunc          func(ctx context.Context, input string) (string, error)
	HistoryFunc      func() []domain.Message
	ClearHistoryFunc func()
}

func (m *MockConversationService) StreamTurn(ctx context.Context, input string) (<-chan string, <-chan error) {
	if m.StreamTurnFunc != nil {
		return m.StreamTurnFunc(ctx, input)
	}
	chunks := make(chan string)
	errs := make(chan error, 1)
	close(chunks)
	close(errs)
	return chunks, errs
}

func (m *MockConversationService) Ask(ctx context.Context, input string) (string, error) {
	if m.AskFunc != nil {
		return m.AskFunc(ctx, input)
	}
	return "", nil
}

func (m *MockConversationService) History() []domain.Message {
	if m.HistoryFunc != nil {
		return m.HistoryFunc()
	}
	return nil
}

func (m *MockConversationService) ClearHistory() {
	if m.ClearHistoryFunc != nil {
		m.ClearHistoryFunc()
	}
}

// MockContentService implements driving.ContentService for testing.
type MockContentService struct {
	LoadFunc           func(ctx context.Context, src domain.Source) (domain.Document, error)
	SupportedTypesFunc func() []domain.SourceType
}

func (m *MockContentService) Load(ctx context.Context, src domain.Source) (domain.Document, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, src)
	}
	return domain.Document{}, nil
}

func (m *MockContentService) SupportedTypes() []domain.SourceType {
	if m.SupportedTypesFunc != nil {
		return m.SupportedTypesFunc()
	}
	return domain.AllSourceTypes()
}

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	GetFunc            func() (*domain.AppSettings, error)
	SaveFunc           func(settings *domain.AppSettings) error
	SetLLMProviderFunc func(provider domain.Provider, model, apiKey string) error
	APIKeyForFunc      func(provider domain.Provider) string
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc()
	}
	settings := domain.DefaultAppSettings()
	return &settings, nil
}

func (m *MockSettingsService) Save(settings *domain.AppSettings) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(settings)
	}
	return nil
}

func (m *MockSettingsService) SetLLMProvider(provider domain.Provider, model, apiKey string) error {
	if m.SetLLMProviderFunc != nil {
		return m.SetLLMProviderFunc(provider, model, apiKey)
	}
	return nil
}

func (m *MockSettingsService) SetAPIKey(provider domain.Provider, apiKey string) error {
	return nil
}

func (m *MockSettingsService) APIKeyFor(provider domain.Provider) string {
	if m.APIKeyForFunc != nil {
		return m.APIKeyForFunc(provider)
	}
	return ""
}

func (m *MockSettingsService) SetYoutubeLanguages(languages []string) error {
	return nil
}

func (m *MockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *MockSettingsService) ValidateLLMConfig() error {
	return nil
}

func (m *MockSettingsService) ConfigPath() string {
	return ":memory:"
}

// MockDocumentWatcher implements driven.DocumentWatcher for testing.
type MockDocumentWatcher struct {
	WatchFunc func(ctx context.Context, path string) (<-chan domain.DocumentChange, error)
	Closed    bool
}

func (m *MockDocumentWatcher) Watch(ctx context.Context, path string) (<-chan domain.DocumentChange, error) {
	if m.WatchFunc != nil {
		return m.WatchFunc(ctx, path)
	}
	changes := make(chan domain.DocumentChange)
	close(changes)
	return changes, nil
}

func (m *MockDocumentWatcher) Close() error {
	m.Closed = true
	return nil
}

func TestNewPorts(t *testing.T) {
	session := &MockSessionService{}
	conversation := &MockConversationService{}
	content := &MockContentService{}
	settings := &MockSettingsService{}

	ports := NewPorts(session, conversation, content, settings)

	require.NotNil(t, ports)
	assert.Equal(t, session, ports.Session)
	assert.Equal(t, conversation, ports.Conversation)
	assert.Equal(t, content, ports.Content)
	assert.Equal(t, settings, ports.Settings)
	assert.Nil(t, ports.NewWatcher)
}

func validPorts() *Ports {
	return NewPorts(
		&MockSessionService{},
		&MockConversationService{},
		&MockContentService{},
		&MockSettingsService{},
	)
}

func TestPorts_Validate_AllSet(t *testing.T) {
	err := validPorts().Validate()

	assert.NoError(t, err)
}

func TestPorts_Validate_MissingSession(t *testing.T) {
	ports := validPorts()
	ports.Session = nil

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingSessionService)
}

func TestPorts_Validate_MissingConversation(t *testing.T) {
	ports := validPorts()
	ports.Conversation = nil

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingConversationService)
}

func TestPorts_Validate_MissingContent(t *testing.T) {
	ports := validPorts()
	ports.Content = nil

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingContentService)
}

func TestPorts_Validate_MissingSettings(t *testing.T) {
	ports := validPorts()
	ports.Settings = nil

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingSettingsService)
}

func TestPorts_Validate_WatcherOptional(t *testing.T) {
	ports := validPorts()
	ports.NewWatcher = nil

	assert.NoError(t, ports.Validate())
}
