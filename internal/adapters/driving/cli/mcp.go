package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pythia-labs/oracle-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can load a
document and chat with it through Oracle.

The server exposes the oracle_initialize, oracle_ask and oracle_clear_history
tools plus read-only resources for the loaded document, the active session
and the conversation history.

By default the server communicates over stdio, which is how Claude Desktop
launches it. Pass --port to serve streamable HTTP instead, e.g. for the MCP
Inspector or remote access.

Examples:
  # Stdio mode (default, for Claude Desktop)
  oracle mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  oracle mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "oracle": {
        "command": "/path/to/oracle",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	server, err := mcp.NewServer(&mcp.Ports{
		Session:      sessionService,
		Conversation: conversationService,
		Settings:     settingsService,
	})
	if err != nil {
		return err
	}

	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
