// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/ironlog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to log and query your workouts through
a standardized protocol. The server communicates via stdin/stdout.

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

  start_workout          Start a workout, optionally from a template day
  finish_workout         Finish the active workout
  get_active_workout     The in-progress workout with exercises and sets
  add_exercise           Add an exercise to the active workout
  log_set                Log a set (weight, reps, warmup, RPE)
  delete_set             Delete a set (remaining sets renumber)
  list_exercises         Browse the exercise library
  list_workouts          Finished workouts with volume and duration
  get_personal_records   Best e1RM set per exercise
  get_exercise_progress  Per-date progress for one exercise
  get_weekly_summary     Weekly volume and set counts
  list_templates         Templates with their days

AVAILABLE RESOURCES:

  ironlog://active     Active workout
  ironlog://records    Personal records
  ironlog://summary    Recent workouts plus weekly volume`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(session.Store)
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
