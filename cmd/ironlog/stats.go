// ABOUTME: CLI commands for training analytics.
// ABOUTME: Supports prs, progress, and weekly subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	statsLimit     int
	statsWeeksBack int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Training analytics",
	Long: `Analytics over finished workouts.

All numbers exclude warmup sets and unfinished sessions. Estimated 1RM
uses the Epley formula: weight x (1 + reps/30), with single-rep sets
taken at face value.

COMMANDS:

  prs       Best estimated-1RM set per exercise
  progress  Per-date best weight, e1RM, and volume for one exercise
  weekly    Workouts, sets, and volume per calendar week (Monday start)`,
}

var statsPRsCmd = &cobra.Command{
	Use:   "prs",
	Short: "Personal records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := session.Store.GetPersonalRecords(statsLimit)
		if err != nil {
			return fmt.Errorf("failed to get personal records: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No records yet. Finish a workout with some sets first.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range records {
			fmt.Printf("%s %6.1f kg x %-3d e1RM %6.1f %s\n",
				padRight(r.ExerciseName, 32),
				r.WeightKg,
				r.Reps,
				r.E1RM,
				faint.Sprint(r.Date))
		}
		return nil
	},
}

var statsProgressCmd = &cobra.Command{
	Use:   "progress <exercise-id>",
	Short: "Per-date progress for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exerciseID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exercise id: %s", args[0])
		}

		exercise, err := session.Store.GetExerciseByID(exerciseID)
		if err != nil {
			return fmt.Errorf("failed to look up exercise: %w", err)
		}
		if exercise == nil {
			return fmt.Errorf("no exercise with id %d", exerciseID)
		}

		progress, err := session.Store.GetExerciseProgress(exerciseID)
		if err != nil {
			return fmt.Errorf("failed to get exercise progress: %w", err)
		}

		if len(progress) == 0 {
			fmt.Printf("No history for %s yet.\n", exercise.Name)
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Println(exercise.Name)
		for _, p := range progress {
			fmt.Printf("  %s best %6.1f kg  e1RM %6.1f  %s\n",
				p.Date,
				p.BestWeight,
				p.BestE1RM,
				faint.Sprintf("%d sets, %.0f kg volume", p.TotalSets, p.TotalVolume))
		}
		return nil
	},
}

var statsWeeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Weekly training summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries, err := session.Store.GetWeeklySummaries(statsWeeksBack)
		if err != nil {
			return fmt.Errorf("failed to get weekly summaries: %w", err)
		}

		if len(summaries) == 0 {
			fmt.Println("No finished workouts in range.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range summaries {
			fmt.Printf("%s %s %2d workouts %4d sets %9.0f kg\n",
				faint.Sprint("week of"),
				s.WeekStart,
				s.WorkoutCount,
				s.TotalSets,
				s.TotalVolume)
		}
		return nil
	},
}

func init() {
	statsPRsCmd.Flags().IntVarP(&statsLimit, "limit", "n", 0, "max number of records (0 = all)")
	statsWeeklyCmd.Flags().IntVarP(&statsWeeksBack, "weeks", "w", 12, "how many weeks back to cover")

	statsCmd.AddCommand(statsPRsCmd)
	statsCmd.AddCommand(statsProgressCmd)
	statsCmd.AddCommand(statsWeeklyCmd)
	rootCmd.AddCommand(statsCmd)
}
