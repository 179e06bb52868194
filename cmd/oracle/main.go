// Command oracle is a terminal client for chatting with a single
// document through an LLM provider.
package main

import (
	"fmt"
	"os"

	"github.com/pythia-labs/oracle-cli/internal/adapters/driven/ai"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driven/config/file"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driven/loaders/csv"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driven/loaders/fetch"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driven/loaders/pdf"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driven/loaders/plaintext"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driven/loaders/website"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driven/loaders/youtube"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driven/storage/memory"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driven/watch"
	"github.com/pythia-labs/oracle-cli/internal/adapters/driving/cli"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driven"
	"github.com/pythia-labs/oracle-cli/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	promptStore, err := file.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("opening prompt store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore, ai.NewConfigValidator())

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	client := fetch.NewClient(settings.Loader.HTTPTimeout)
	contentService := services.NewContentService(
		website.New(client),
		youtube.New(client, settings.Loader.YoutubeLanguages),
		pdf.New(),
		csv.New(),
		plaintext.New(),
	)

	sessions := memory.NewSessionStore()

	sessionService := services.NewSessionService(contentService, ai.NewFactory(), sessions)
	sessionService.SetPromptStore(promptStore)
	defer sessionService.Close() //nolint:errcheck

	conversationService := services.NewConversationService(sessions)

	cli.SetServices(cli.Services{
		Session:      sessionService,
		Conversation: conversationService,
		Content:      contentService,
		Settings:     settingsService,
		NewWatcher: func() driven.DocumentWatcher {
			return watch.New()
		},
	})

	return cli.Execute()
}
