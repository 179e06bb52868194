package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driving"
)

var (
	askSourceType string
	askSource     string
	askQuestion   string
	askProvider   string
	askModel      string
	askAPIKey     string
	askJSON       bool
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask one question about a document",
	Long: `Load a document, ask a single question, and print the answer.

The provider, model and API key default to the values saved with
'oracle config set'. The document is loaded fresh on every call.

Examples:
  oracle ask --type txt --source ./notes.txt --question "What is this about?"
  oracle ask -t website -s https://example.com/guide -q "Summarise the guide"`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askSourceType, "type", "t", "txt", "source type (website, youtube, pdf, csv, txt)")
	askCmd.Flags().StringVarP(&askSource, "source", "s", "", "document URL or file path")
	askCmd.Flags().StringVarP(&askQuestion, "question", "q", "", "question to ask")
	askCmd.Flags().StringVarP(&askProvider, "provider", "p", "", "chat provider (defaults to configured)")
	askCmd.Flags().StringVarP(&askModel, "model", "m", "", "chat model (defaults to the provider default)")
	askCmd.Flags().StringVarP(&askAPIKey, "key", "k", "", "API key (defaults to configured)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, _ []string) error {
	if sessionService == nil || conversationService == nil {
		return errors.New("session service not configured")
	}
	if askSource == "" {
		return errors.New("--source is required")
	}
	if askQuestion == "" {
		return errors.New("--question is required")
	}

	srcType, err := domain.ParseSourceType(askSourceType)
	if err != nil {
		return err
	}

	cfg, err := resolveAskConfig()
	if err != nil {
		return err
	}
	cfg.Source = domain.Source{Type: srcType, Location: askSource}

	ctx := cmd.Context()
	if _, err := sessionService.Initialise(ctx, cfg); err != nil {
		return fmt.Errorf("loading document: %w", err)
	}

	answer, err := conversationService.Ask(ctx, askQuestion)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		return outputAskJSON(cmd, cfg, answer)
	}

	cmd.Println(answer)
	return nil
}

// resolveAskConfig layers the ask flags over the persisted defaults.
func resolveAskConfig() (driving.InitConfig, error) {
	settings := domain.DefaultAppSettings()
	if settingsService != nil {
		if stored, err := settingsService.Get(); err == nil && stored != nil {
			settings = *stored
		}
	}

	cfg := driving.InitConfig{
		Provider: settings.LLM.Provider,
		Model:    settings.LLM.Model,
		APIKey:   settings.LLM.APIKey,
	}

	if askProvider != "" {
		p, err := domain.ParseProvider(askProvider)
		if err != nil {
			return cfg, err
		}
		cfg.Provider = p
		// The stored default key belongs to the stored default provider
		cfg.Model = domain.DefaultModel(p)
		cfg.APIKey = ""
		if settingsService != nil {
			cfg.APIKey = settingsService.APIKeyFor(p)
		}
	}
	if askModel != "" {
		cfg.Model = askModel
	}
	if askAPIKey != "" {
		cfg.APIKey = askAPIKey
	}

	return cfg, nil
}

func outputAskJSON(cmd *cobra.Command, cfg driving.InitConfig, answer string) error {
	out := struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
		Provider string `json:"provider"`
		Model    string `json:"model"`
		Source   string `json:"source"`
	}{
		Question: askQuestion,
		Answer:   answer,
		Provider: string(cfg.Provider),
		Model:    cfg.Model,
		Source:   cfg.Source.Location,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
