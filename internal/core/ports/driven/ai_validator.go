package driven

import "github.com/pythia-labs/oracle-cli/internal/core/domain"

// AIConfigValidator validates chat model configurations.
// Implementations verify that configurations are usable by testing
// connectivity to the underlying service. This is only exercised by the
// explicit config commands; initialisation never pings (failures surface
// on first use).
type AIConfigValidator interface {
	// ValidateLLM validates an LLM configuration by pinging the provider.
	// Returns nil if the configuration is valid.
	ValidateLLM(config *domain.LLMSettings) error
}
