// ABOUTME: Root Cobra command for ironlog CLI.
// ABOUTME: Handles app lifecycle (vault restore, autosave flush) via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"strings"

	"github.com/harperreed/ironlog/internal/app"
	"github.com/harperreed/ironlog/internal/config"
	"github.com/spf13/cobra"
)

var (
	session *app.App
)

var rootCmd = &cobra.Command{
	Use:   "ironlog",
	Short: "Personal workout tracker",
	Long: `Ironlog is a CLI tool for logging strength training workouts.

WORKFLOW:

  $ ironlog workout start                  # Start an empty workout
  $ ironlog workout start --day 3          # Start from a template day
  $ ironlog exercise list --group chest    # Find an exercise
  $ ironlog workout add 12                 # Add exercise 12 to the workout
  $ ironlog set log 1 100 5               # Log 100 kg x 5 on workout exercise 1
  $ ironlog workout finish --notes "PR!"   # Finish the session

ANALYTICS:

  $ ironlog stats prs                      # Personal records (best e1RM per exercise)
  $ ironlog stats progress 12              # Per-date progress for an exercise
  $ ironlog stats weekly                   # Weekly volume and set counts

TEMPLATES:

  $ ironlog template list                  # Preset and custom programs
  $ ironlog template show 1                # Days and exercises of a program
  $ ironlog template create "My Split"     # Build your own

DATA STORAGE:

  The working database lives under the data directory; every mutation is
  snapshotted into a local vault shortly afterwards, so the vault copy is
  always the durable one. Use 'ironlog db export' for backups and
  'ironlog db import' to restore one.

MCP INTEGRATION:

  Run 'ironlog mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "ironlog": { "command": "ironlog", "args": ["mcp"] }
    }
  }`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		session, err = app.Open(cfg)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if session != nil {
			return session.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
