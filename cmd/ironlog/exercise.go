// ABOUTME: CLI commands for browsing and managing the exercise library.
// ABOUTME: Supports list, groups, add, and delete subcommands.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	exerciseGroup  string
	exerciseSearch string
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Browse and manage exercises",
	Long: `Browse the exercise library and manage custom exercises.

The library ships with a catalog of common lifts grouped by muscle group.
You can add your own exercises; only custom exercises can be deleted, and
only while no logged workout references them.

Examples:
  ironlog exercise list                    # Whole library
  ironlog exercise list --group legs       # One muscle group
  ironlog exercise list --search press     # Name substring
  ironlog exercise groups                  # Muscle groups
  ironlog exercise add "Zercher Squat" --group legs
  ironlog exercise delete 87`,
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercises",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var muscleGroupID *int64
		if exerciseGroup != "" {
			id, err := resolveMuscleGroup(exerciseGroup)
			if err != nil {
				return err
			}
			muscleGroupID = &id
		}

		exercises, err := session.Store.GetExercises(muscleGroupID, exerciseSearch)
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}

		if len(exercises) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range exercises {
			custom := ""
			if e.IsCustom {
				custom = faint.Sprint(" custom")
			}
			fmt.Printf("%s %s %s%s\n",
				faint.Sprintf("%4d", e.ID),
				padRight(e.Name, 32),
				faint.Sprint(e.MuscleGroupName),
				custom)
		}
		return nil
	},
}

var exerciseGroupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List muscle groups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, err := session.Store.GetMuscleGroups()
		if err != nil {
			return fmt.Errorf("failed to list muscle groups: %w", err)
		}

		faint := color.New(color.Faint)
		for _, g := range groups {
			fmt.Printf("%s %s\n", faint.Sprintf("%2d", g.ID), g.Name)
		}
		return nil
	},
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if exerciseGroup == "" {
			return fmt.Errorf("--group is required")
		}
		groupID, err := resolveMuscleGroup(exerciseGroup)
		if err != nil {
			return err
		}

		id, err := session.Store.CreateExercise(args[0], groupID)
		if err != nil {
			return fmt.Errorf("failed to create exercise: %w", err)
		}

		color.Green("✓ Added %s", args[0])
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("exercise %d", id))
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:   "delete <exercise-id>",
	Short: "Delete a custom exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exercise id: %s", args[0])
		}

		exercise, err := session.Store.GetExerciseByID(id)
		if err != nil {
			return fmt.Errorf("failed to look up exercise: %w", err)
		}
		if exercise == nil {
			return fmt.Errorf("no exercise with id %d", id)
		}
		if !exercise.IsCustom {
			color.Yellow("⚠ %s is a stock exercise and cannot be deleted", exercise.Name)
			return nil
		}

		if err := session.Store.DeleteExercise(id); err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}

		color.Green("✓ Deleted %s", exercise.Name)
		return nil
	},
}

// resolveMuscleGroup accepts a numeric id or a case-insensitive group name.
func resolveMuscleGroup(ref string) (int64, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return id, nil
	}

	groups, err := session.Store.GetMuscleGroups()
	if err != nil {
		return 0, fmt.Errorf("failed to list muscle groups: %w", err)
	}
	for _, g := range groups {
		if strings.EqualFold(g.Name, ref) {
			return g.ID, nil
		}
	}

	var names []string
	for _, g := range groups {
		names = append(names, strings.ToLower(g.Name))
	}
	return 0, fmt.Errorf("unknown muscle group: %s (use one of: %s)", ref, strings.Join(names, ", "))
}

func init() {
	exerciseListCmd.Flags().StringVarP(&exerciseGroup, "group", "g", "", "filter by muscle group (name or id)")
	exerciseListCmd.Flags().StringVarP(&exerciseSearch, "search", "s", "", "filter by name substring")
	exerciseAddCmd.Flags().StringVarP(&exerciseGroup, "group", "g", "", "muscle group (name or id)")

	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseGroupsCmd)
	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
