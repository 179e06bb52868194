// Package cli provides the command line interface for oracle.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/pythia-labs/oracle-cli/internal/core/ports/driven"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driving"
	"github.com/pythia-labs/oracle-cli/internal/logger"
)

// version is the build version, overridden at release time via ldflags.
var version = "dev"

// Service singletons used by the commands. Wired once at startup by
// SetServices before Execute runs.
var (
	sessionService      driving.SessionService
	conversationService driving.ConversationService
	contentService      driving.ContentService
	settingsService     driving.SettingsService
	watcherFactory      func() driven.DocumentWatcher
)

// Services bundles the implementations the commands run against.
type Services struct {
	Session      driving.SessionService
	Conversation driving.ConversationService
	Content      driving.ContentService
	Settings     driving.SettingsService

	// NewWatcher constructs a watcher for file-backed sources. Optional;
	// the TUI skips change notices without one.
	NewWatcher func() driven.DocumentWatcher
}

// SetServices installs the service implementations the commands use.
func SetServices(s Services) {
	sessionService = s.Session
	conversationService = s.Conversation
	contentService = s.Content
	settingsService = s.Settings
	watcherFactory = s.NewWatcher
}

var verbose bool

// rootCmd is the base command. Running oracle with no subcommand
// launches the terminal UI.
var rootCmd = &cobra.Command{
	Use:   "oracle",
	Short: "Chat with a document using an LLM",
	Long: `Oracle answers questions about a single document.

Load a website, a YouTube transcript, or a local PDF, CSV or text file,
pick a model provider, and ask questions in an interactive chat.

Running oracle without a subcommand launches the terminal UI.`,
	RunE: runTUI,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
