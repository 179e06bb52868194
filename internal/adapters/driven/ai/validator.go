package ai

import (
	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driven"
)

// Ensure ConfigValidator implements the interface.
var _ driven.AIConfigValidator = (*ConfigValidator)(nil)

// ConfigValidator validates chat provider configurations.
type ConfigValidator struct{}

// NewConfigValidator creates a config validator.
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{}
}

// ValidateLLM validates an LLM configuration by pinging the provider.
func (v *ConfigValidator) ValidateLLM(config *domain.LLMSettings) error {
	return ValidateLLMConfig(config)
}
