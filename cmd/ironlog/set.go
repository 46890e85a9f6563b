// ABOUTME: CLI commands for logging and editing sets.
// ABOUTME: Supports log, edit, and delete subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/ironlog/internal/models"
	"github.com/spf13/cobra"
)

var (
	setWarmup bool
	setRPE    float64
)

var setCmd = &cobra.Command{
	Use:     "set",
	Aliases: []string{"s"},
	Short:   "Log and edit sets",
	Long: `Log sets against an exercise in the active workout.

Sets are numbered 1, 2, 3... within each workout exercise. Deleting a set
renumbers the remaining ones, so the sequence never has gaps.

Examples:
  ironlog set log 1 100 5             # 100 kg x 5 on workout exercise 1
  ironlog set log 1 60 8 --warmup     # Warmup set (excluded from records)
  ironlog set log 1 140 3 --rpe 9     # With rating of perceived exertion
  ironlog set edit 7 102.5 5          # Replace weight/reps of set 7
  ironlog set delete 7                # Remove set 7, renumber the rest`,
}

var setLogCmd = &cobra.Command{
	Use:     "log <workout-exercise-id> <weight-kg> <reps>",
	Aliases: []string{"add"},
	Short:   "Log a set",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		weID, weightKg, reps, err := parseSetArgs(args)
		if err != nil {
			return err
		}

		var rpe *float64
		if cmd.Flags().Changed("rpe") {
			rpe = &setRPE
		}

		id, err := session.Store.AddSet(weID, weightKg, reps, setWarmup, rpe)
		if err != nil {
			return fmt.Errorf("failed to log set: %w", err)
		}

		color.Green("✓ Logged %.1f kg x %d", weightKg, reps)
		fmt.Printf("  %s e1RM %.1f kg\n",
			color.New(color.Faint).Sprintf("set %d", id),
			models.Epley1RM(weightKg, reps))
		return nil
	},
}

var setEditCmd = &cobra.Command{
	Use:   "edit <set-id> <weight-kg> <reps>",
	Short: "Replace a set's weight, reps, and flags",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		setID, weightKg, reps, err := parseSetArgs(args)
		if err != nil {
			return err
		}

		var rpe *float64
		if cmd.Flags().Changed("rpe") {
			rpe = &setRPE
		}

		if err := session.Store.UpdateSet(setID, weightKg, reps, setWarmup, rpe); err != nil {
			return fmt.Errorf("failed to update set: %w", err)
		}

		color.Green("✓ Updated set %d to %.1f kg x %d", setID, weightKg, reps)
		return nil
	},
}

var setDeleteCmd = &cobra.Command{
	Use:   "delete <set-id>",
	Short: "Delete a set and renumber the rest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid set id: %s", args[0])
		}

		if err := session.Store.DeleteSet(id); err != nil {
			return fmt.Errorf("failed to delete set: %w", err)
		}

		color.Green("✓ Deleted set %d", id)
		return nil
	},
}

func parseSetArgs(args []string) (int64, float64, int, error) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid id: %s", args[0])
	}
	weightKg, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid weight: %s", args[1])
	}
	reps, err := strconv.Atoi(args[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid reps: %s", args[2])
	}
	return id, weightKg, reps, nil
}

func init() {
	for _, c := range []*cobra.Command{setLogCmd, setEditCmd} {
		c.Flags().BoolVar(&setWarmup, "warmup", false, "mark as a warmup set")
		c.Flags().Float64Var(&setRPE, "rpe", 0, "rating of perceived exertion")
	}

	setCmd.AddCommand(setLogCmd)
	setCmd.AddCommand(setEditCmd)
	setCmd.AddCommand(setDeleteCmd)
	rootCmd.AddCommand(setCmd)
}
