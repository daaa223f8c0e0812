// ABOUTME: Root Cobra command for ironlog CLI.
// ABOUTME: Handles storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/harperreed/ironlog/internal/config"
	"github.com/harperreed/ironlog/internal/dayview"
	"github.com/harperreed/ironlog/internal/storage"
)

var (
	repo    storage.Repository
	loader  *dayview.Loader
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ironlog",
	Short: "Personal workout log",
	Long: `Ironlog is a CLI tool for tracking bodyweight and gym workouts.

BODYWEIGHT EXERCISES:

  stairs            floors climbed
  pushup            repetitions
  handstand_pushup  repetitions
  hang              seconds held
  running           distance and time

Each save replaces the whole set list for that day and exercise, so you
always re-log the full day ("3 sets of pushups: 10 12 8").

QUICK START:

  $ ironlog log pushup 10 12 8          # Log today's pushup sets
  $ ironlog log hang 45 60              # Log hang sets (seconds)
  $ ironlog log running 5.2/28:30       # Log a run (km/time)
  $ ironlog day                         # Today's view with bests
  $ ironlog history pushup              # Date-grouped history
  $ ironlog best                        # Personal bests

GYM SESSIONS:

  The weekly schedule maps Monday to routine A, Wednesday to B and
  Friday to C; other days are rest days.

  $ ironlog session log squat 80x5 80x5 82.5x3   # Log gym sets
  $ ironlog session show                         # Today's session
  $ ironlog exercises                            # Exercise catalog

MCP INTEGRATION:

  Run 'ironlog mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "ironlog": { "command": "ironlog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Sets are stored in a local SQLite database at ~/.local/share/ironlog.
  Override the location with data_dir in ~/.config/ironlog/config.json.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		loader = dayview.NewLoader(repo)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
