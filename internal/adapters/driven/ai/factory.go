// Package ai wires chat provider adapters to the core ports.
// It owns the provider dispatch so that services never import a
// concrete provider package.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driven"

	groqllm "github.com/pythia-labs/oracle-cli/internal/adapters/driven/llm/groq"
	openaillm "github.com/pythia-labs/oracle-cli/internal/adapters/driven/llm/openai"
)

// pingTimeout bounds the connectivity check performed during validation.
const pingTimeout = 5 * time.Second

// Ensure Factory implements the driven port.
var _ driven.LLMFactory = (*Factory)(nil)

// Factory constructs chat clients for the configured provider.
type Factory struct{}

// NewFactory creates a chat client factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns a chat client for the given settings. The client is
// not pinged; connectivity failures surface on first use.
func (f *Factory) Create(settings domain.LLMSettings) (driven.LLMService, error) {
	return CreateLLMService(&settings)
}

// CreateLLMService creates the chat service for the configured provider.
// Returns domain.ErrInvalidProvider for a provider it has no adapter for.
func CreateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil {
		return nil, fmt.Errorf("%w: no settings", domain.ErrInvalidProvider)
	}

	switch settings.Provider {
	case domain.ProviderGroq:
		return createGroqLLM(settings)
	case domain.ProviderOpenAI:
		return createOpenAILLM(settings)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidProvider, string(settings.Provider))
	}
}

// CreateAndValidateLLMService creates a chat service and verifies it can
// reach the provider. The caller owns the returned service and must
// close it.
func CreateAndValidateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	svc, err := CreateLLMService(settings)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		_ = svc.Close()
		return nil, fmt.Errorf("validate %s: %w", settings.Provider.Description(), err)
	}

	return svc, nil
}

// ValidateLLMConfig validates a chat configuration by creating a client
// and pinging the provider. Only the explicit config commands call this;
// session initialisation installs clients unpinged.
func ValidateLLMConfig(settings *domain.LLMSettings) error {
	if settings == nil {
		return nil
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	svc, err := CreateAndValidateLLMService(settings)
	if err != nil {
		return err
	}
	_ = svc.Close()

	return nil
}

func createGroqLLM(settings *domain.LLMSettings) (driven.LLMService, error) {
	return groqllm.NewLLMService(groqllm.Config{
		APIKey: settings.APIKey,
		Model:  settings.Model,
	})
}

func createOpenAILLM(settings *domain.LLMSettings) (driven.LLMService, error) {
	return openaillm.NewLLMService(openaillm.Config{
		APIKey: settings.APIKey,
		Model:  settings.Model,
	})
}
