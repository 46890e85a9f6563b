// ABOUTME: CLI commands for managing workout sessions.
// ABOUTME: Supports start, finish, status, add, remove, list, and delete subcommands.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/ironlog/internal/models"
	"github.com/harperreed/ironlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	workoutDay    int64
	workoutNotes  string
	workoutLimit  int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workout sessions",
	Long: `Track workout sessions.

A workout is a sequence of exercises, each with numbered sets. Only one
workout can be active at a time; finish it before starting the next.

WORKFLOW:

  1. Start a session:        ironlog workout start [--day <template-day-id>]
  2. Add exercises:          ironlog workout add <exercise-id>
  3. Log sets:               ironlog set log <workout-exercise-id> <kg> <reps>
  4. Finish:                 ironlog workout finish [--notes "..."]

COMMANDS:

  start    Begin a new workout, optionally from a template day
  status   Show the active workout with exercises and sets
  add      Add an exercise to the active workout
  remove   Remove an exercise (and its sets) from the active workout
  finish   Finish the active workout
  list     List finished workouts
  delete   Delete a workout and everything under it`,
}

var workoutStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new workout",
	Long: `Start a new workout session.

Examples:
  ironlog workout start
  ironlog workout start --day 3    # Copy exercises from template day 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			id  int64
			err error
		)
		if workoutDay > 0 {
			id, err = session.Store.StartWorkoutFromDay(workoutDay)
		} else {
			id, err = session.Store.StartWorkout()
		}
		if errors.Is(err, storage.ErrActiveWorkout) {
			return fmt.Errorf("a workout is already active; finish it with 'ironlog workout finish'")
		}
		if err != nil {
			return fmt.Errorf("failed to start workout: %w", err)
		}

		color.Green("✓ Started workout %d", id)
		if workoutDay > 0 {
			fmt.Printf("  exercises copied from template day %d\n", workoutDay)
		}
		return nil
	},
}

var workoutStatusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"show"},
	Short:   "Show the active workout",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		active, err := session.Store.GetActiveWorkout()
		if err != nil {
			return fmt.Errorf("failed to look up active workout: %w", err)
		}
		if active == nil {
			fmt.Println("No active workout.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("Workout %d %s\n", active.ID,
			faint.Sprintf("(started %s)", active.StartedAt.Format("2006-01-02 15:04")))

		return printWorkoutExercises(active.ID)
	},
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <exercise-id>",
	Short: "Add an exercise to the active workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exerciseID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exercise id: %s", args[0])
		}

		active, err := session.Store.GetActiveWorkout()
		if err != nil {
			return fmt.Errorf("failed to look up active workout: %w", err)
		}
		if active == nil {
			return fmt.Errorf("no active workout; start one with 'ironlog workout start'")
		}

		exercise, err := session.Store.GetExerciseByID(exerciseID)
		if err != nil {
			return fmt.Errorf("failed to look up exercise: %w", err)
		}
		if exercise == nil {
			return fmt.Errorf("no exercise with id %d", exerciseID)
		}

		weID, err := session.Store.AddExerciseToWorkout(active.ID, exerciseID)
		if err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		color.Green("✓ Added %s", exercise.Name)
		fmt.Printf("  workout exercise %d; log sets with 'ironlog set log %d <kg> <reps>'\n", weID, weID)
		return nil
	},
}

var workoutRemoveCmd = &cobra.Command{
	Use:   "remove <workout-exercise-id>",
	Short: "Remove an exercise from a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid workout exercise id: %s", args[0])
		}

		if err := session.Store.RemoveExerciseFromWorkout(weID); err != nil {
			return fmt.Errorf("failed to remove exercise: %w", err)
		}

		color.Green("✓ Removed workout exercise %d", weID)
		return nil
	},
}

var workoutFinishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Finish the active workout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		active, err := session.Store.GetActiveWorkout()
		if err != nil {
			return fmt.Errorf("failed to look up active workout: %w", err)
		}
		if active == nil {
			return fmt.Errorf("no active workout")
		}

		var notes *string
		if workoutNotes != "" {
			notes = &workoutNotes
		}
		if err := session.Store.FinishWorkout(active.ID, notes); err != nil {
			return fmt.Errorf("failed to finish workout: %w", err)
		}

		color.Green("✓ Finished workout %d", active.ID)
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List finished workouts",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := session.Store.GetWorkoutSummaries(workoutLimit)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		if len(workouts) == 0 {
			fmt.Println("No finished workouts.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range workouts {
			duration := ""
			if w.DurationMinutes != nil {
				duration = faint.Sprintf(" %dm", *w.DurationMinutes)
			}
			notes := ""
			if w.Notes != nil && *w.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*w.Notes, 30))
			}
			fmt.Printf("%s %s %2d exercises %3d sets %8.0f kg%s%s\n",
				faint.Sprintf("%4d", w.ID),
				w.StartedAt.Format("2006-01-02"),
				w.ExerciseCount,
				w.TotalSets,
				w.TotalVolume,
				duration,
				notes)
		}
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete <workout-id>",
	Short: "Delete a workout and all its exercises and sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid workout id: %s", args[0])
		}

		if err := session.Store.DeleteWorkout(id); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		color.Green("✓ Deleted workout %d", id)
		return nil
	},
}

func printWorkoutExercises(workoutID int64) error {
	exercises, err := session.Store.GetWorkoutExercises(workoutID)
	if err != nil {
		return fmt.Errorf("failed to list workout exercises: %w", err)
	}
	if len(exercises) == 0 {
		fmt.Println("  (no exercises yet)")
		return nil
	}

	faint := color.New(color.Faint)
	for _, we := range exercises {
		fmt.Printf("  %s %s %s\n",
			faint.Sprintf("%3d", we.ID),
			padRight(we.ExerciseName, 28),
			faint.Sprint(we.MuscleGroupName))

		sets, err := session.Store.GetSetsForWorkoutExercise(we.ID)
		if err != nil {
			return fmt.Errorf("failed to list sets: %w", err)
		}
		for _, s := range sets {
			warmup := ""
			if s.IsWarmup {
				warmup = faint.Sprint(" warmup")
			}
			rpe := ""
			if s.RPE != nil {
				rpe = faint.Sprintf(" @%.1f", *s.RPE)
			}
			fmt.Printf("      %s %6.1f kg x %-3d%s%s  e1RM %.1f\n",
				faint.Sprintf("#%d (id %d)", s.SetNumber, s.ID),
				s.WeightKg, s.Reps, warmup, rpe,
				models.Epley1RM(s.WeightKg, s.Reps))
		}
	}
	return nil
}

func init() {
	workoutStartCmd.Flags().Int64Var(&workoutDay, "day", 0, "template day id to copy exercises from")
	workoutFinishCmd.Flags().StringVar(&workoutNotes, "notes", "", "notes for the workout")
	workoutListCmd.Flags().IntVarP(&workoutLimit, "limit", "n", 20, "max number of results")

	workoutCmd.AddCommand(workoutStartCmd)
	workoutCmd.AddCommand(workoutStatusCmd)
	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutRemoveCmd)
	workoutCmd.AddCommand(workoutFinishCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
