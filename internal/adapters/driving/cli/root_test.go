package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driving"
)

// MockSessionService implements driving.SessionService for CLI tests.
type MockSessionService struct {
	InitialiseFunc func(ctx context.Context, cfg driving.InitConfig) (domain.Chain, error)
	ChainFunc      func() (domain.Chain, bool)
	DocumentFunc   func() (domain.Document, bool)
}

func (m *MockSessionService) Initialise(ctx context.Context, cfg driving.InitConfig) (domain.Chain, error) {
	if m.InitialiseFunc != nil {
		return m.InitialiseFunc(ctx, cfg)
	}
	return domain.Chain{
		ID:             "chain-test",
		Provider:       cfg.Provider,
		Model:          cfg.Model,
		SourceType:     cfg.Source.Type,
		SourceLocation: cfg.Source.Location,
	}, nil
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

func (m *MockSessionService) CachedAPIKey(_ domain.Provider) (string, bool) {
	return "", false
}

func (m *MockSessionService) CacheAPIKey(_ domain.Provider, _ string) {}

func (m *MockSessionService) Close() error {
	return nil
}

// MockConversationService implements driving.ConversationService for CLI tests.
type MockConversationService struct {
	AskFunc     func(ctx context.Context, input string) (string, error)
	HistoryFunc func() []domain.Message
	Cleared     bool
}

func (m *MockConversationService) StreamTurn(_ context.Context, _ string) (<-chan string, <-chan error) {
	chunks := make(chan string)
	close(chunks)
	errs := make(chan error, 1)
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
	m.Cleared = true
}

// MockContentService implements driving.ContentService for CLI tests.
type MockContentService struct {
	LoadFunc func(ctx context.Context, src domain.Source) (domain.Document, error)
}

func (m *MockContentService) Load(ctx context.Context, src domain.Source) (domain.Document, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, src)
	}
	return domain.Document{}, nil
}

func (m *MockContentService) SupportedTypes() []domain.SourceType {
	return domain.AllSourceTypes()
}

// MockSettingsService implements driving.SettingsService for CLI tests.
type MockSettingsService struct {
	GetFunc                 func() (*domain.AppSettings, error)
	SetLLMProviderFunc      func(provider domain.Provider, model, apiKey string) error
	SetAPIKeyFunc           func(provider domain.Provider, apiKey string) error
	APIKeyForFunc           func(provider domain.Provider) string
	SetYoutubeLanguagesFunc func(languages []string) error
	ValidateLLMConfigFunc   func() error
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc()
	}
	defaults := domain.DefaultAppSettings()
	return &defaults, nil
}

func (m *MockSettingsService) Save(_ *domain.AppSettings) error {
	return nil
}

func (m *MockSettingsService) SetLLMProvider(provider domain.Provider, model, apiKey string) error {
	if m.SetLLMProviderFunc != nil {
		return m.SetLLMProviderFunc(provider, model, apiKey)
	}
	return nil
}

func (m *MockSettingsService) SetAPIKey(provider domain.Provider, apiKey string) error {
	if m.SetAPIKeyFunc != nil {
		return m.SetAPIKeyFunc(provider, apiKey)
	}
	return nil
}

func (m *MockSettingsService) APIKeyFor(provider domain.Provider) string {
	if m.APIKeyForFunc != nil {
		return m.APIKeyForFunc(provider)
	}
	return ""
}

func (m *MockSettingsService) SetYoutubeLanguages(languages []string) error {
	if m.SetYoutubeLanguagesFunc != nil {
		return m.SetYoutubeLanguagesFunc(languages)
	}
	return nil
}

func (m *MockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *MockSettingsService) ValidateLLMConfig() error {
	if m.ValidateLLMConfigFunc != nil {
		return m.ValidateLLMConfigFunc()
	}
	return nil
}

func (m *MockSettingsService) ConfigPath() string {
	return "/tmp/oracle-test/config.toml"
}

// setupTestServices installs default mocks for every service and returns
// a cleanup function restoring the previous wiring.
func setupTestServices() func() {
	oldSession := sessionService
	oldConversation := conversationService
	oldContent := contentService
	oldSettings := settingsService
	oldWatcher := watcherFactory

	sessionService = &MockSessionService{}
	conversationService = &MockConversationService{}
	contentService = &MockContentService{}
	settingsService = &MockSettingsService{}
	watcherFactory = nil

	return func() {
		sessionService = oldSession
		conversationService = oldConversation
		contentService = oldContent
		settingsService = oldSettings
		watcherFactory = oldWatcher
	}
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "oracle", rootCmd.Use)
}

func TestRootCmd_Short(t *testing.T) {
	assert.Equal(t, "Chat with a document using an LLM", rootCmd.Short)
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag, "verbose flag should exist")
	assert.Equal(t, "v", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	expected := []string{"ask", "config", "mcp", "tui", "version"}
	for _, want := range expected {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == want {
				found = true
				break
			}
		}
		assert.True(t, found, "%s command should be registered", want)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "Oracle answers questions about a single document")
	assert.Contains(t, output, "ask")
	assert.Contains(t, output, "config")
	assert.Contains(t, output, "mcp")
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"bogus"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestSetServices(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	session := &MockSessionService{}
	conversation := &MockConversationService{}
	content := &MockContentService{}
	settings := &MockSettingsService{}

	SetServices(Services{
		Session:      session,
		Conversation: conversation,
		Content:      content,
		Settings:     settings,
	})

	assert.Equal(t, driving.SessionService(session), sessionService)
	assert.Equal(t, driving.ConversationService(conversation), conversationService)
	assert.Equal(t, driving.ContentService(content), contentService)
	assert.Equal(t, driving.SettingsService(settings), settingsService)
	assert.Nil(t, watcherFactory)
}
