// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/ironlog/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your workout log
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "ironlog": {
        "command": "ironlog",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_sets      Replace a day's sets for a bodyweight exercise
  delete_sets   Delete a day's sets for a bodyweight exercise
  get_day       Full day view with bests and last sessions
  get_history   Date-grouped set history
  get_best      Personal best for an exercise
  log_gym_sets  Replace a session's sets for a gym exercise
  get_session   A day's gym session

AVAILABLE RESOURCES:

  ironlog://today     Today's full day view
  ironlog://summary   Personal bests and today's session`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
