// ABOUTME: CLI commands for workout templates.
// ABOUTME: Supports list, show, create, delete, and day management subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:     "template",
	Aliases: []string{"t"},
	Short:   "Manage workout templates",
	Long: `Manage workout templates (training programs).

A template is a named program made of days; each day lists exercises in
order. Preset programs (Push/Pull/Legs, Upper/Lower, and so on) are seeded
on first run; you can also build your own.

Starting a workout from a day copies the day's exercises into the session,
each with one empty set ready to fill in:

  ironlog workout start --day <template-day-id>

COMMANDS:

  list         List templates
  show         Days and exercises of a template
  create       Create an empty custom template
  delete       Delete a custom or preset template
  day add      Add a day to a template
  day rename   Rename a day
  day delete   Delete a day
  day exercise Add or remove an exercise on a day`,
}

var templateListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List templates",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		templates, err := session.Store.GetTemplates()
		if err != nil {
			return fmt.Errorf("failed to list templates: %w", err)
		}

		if len(templates) == 0 {
			fmt.Println("No templates.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, t := range templates {
			kind := "custom"
			if t.IsPreset {
				kind = "preset"
			}
			fmt.Printf("%s %s %s %s\n",
				faint.Sprintf("%3d", t.ID),
				padRight(t.Name, 28),
				faint.Sprintf("%d days", t.DayCount),
				faint.Sprint(kind))
		}
		return nil
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show <template-id>",
	Short: "Show a template's days and exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid template id: %s", args[0])
		}

		tmpl, err := session.Store.GetTemplateByID(id)
		if err != nil {
			return fmt.Errorf("failed to load template: %w", err)
		}
		if tmpl == nil {
			return fmt.Errorf("no template with id %d", id)
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n", tmpl.Name, faint.Sprintf("(%d days)", len(tmpl.Days)))
		for _, day := range tmpl.Days {
			fmt.Printf("  %s %s\n", faint.Sprintf("day %d", day.ID), day.Name)
			for _, e := range day.Exercises {
				fmt.Printf("      %s %s %s\n",
					faint.Sprintf("%3d", e.ID),
					padRight(e.ExerciseName, 28),
					faint.Sprint(e.MuscleGroupName))
			}
		}
		return nil
	},
}

var templateCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an empty custom template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := session.Store.CreateTemplate(args[0])
		if err != nil {
			return fmt.Errorf("failed to create template: %w", err)
		}

		color.Green("✓ Created template %s", args[0])
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("template %d; add days with 'ironlog template day add %d <name>'", id, id))
		return nil
	},
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete <template-id>",
	Short: "Delete a template and its days",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid template id: %s", args[0])
		}

		if err := session.Store.DeleteTemplate(id); err != nil {
			return fmt.Errorf("failed to delete template: %w", err)
		}

		color.Green("✓ Deleted template %d", id)
		return nil
	},
}

var templateDayCmd = &cobra.Command{
	Use:   "day",
	Short: "Manage template days",
}

var templateDayAddCmd = &cobra.Command{
	Use:   "add <template-id> <name>",
	Short: "Add a day to a template",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		templateID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid template id: %s", args[0])
		}

		id, err := session.Store.AddTemplateDay(templateID, args[1])
		if err != nil {
			return fmt.Errorf("failed to add day: %w", err)
		}

		color.Green("✓ Added day %s", args[1])
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("day %d", id))
		return nil
	},
}

var templateDayRenameCmd = &cobra.Command{
	Use:   "rename <day-id> <name>",
	Short: "Rename a template day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dayID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid day id: %s", args[0])
		}

		if err := session.Store.RenameTemplateDay(dayID, args[1]); err != nil {
			return fmt.Errorf("failed to rename day: %w", err)
		}

		color.Green("✓ Renamed day %d to %s", dayID, args[1])
		return nil
	},
}

var templateDayDeleteCmd = &cobra.Command{
	Use:   "delete <day-id>",
	Short: "Delete a template day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dayID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid day id: %s", args[0])
		}

		if err := session.Store.DeleteTemplateDay(dayID); err != nil {
			return fmt.Errorf("failed to delete day: %w", err)
		}

		color.Green("✓ Deleted day %d", dayID)
		return nil
	},
}

var templateDayExerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Manage exercises on a template day",
}

var templateDayExerciseAddCmd = &cobra.Command{
	Use:   "add <day-id> <exercise-id>",
	Short: "Add an exercise to a day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dayID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid day id: %s", args[0])
		}
		exerciseID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exercise id: %s", args[1])
		}

		exercise, err := session.Store.GetExerciseByID(exerciseID)
		if err != nil {
			return fmt.Errorf("failed to look up exercise: %w", err)
		}
		if exercise == nil {
			return fmt.Errorf("no exercise with id %d", exerciseID)
		}

		if _, err := session.Store.AddExerciseToDay(dayID, exerciseID); err != nil {
			return fmt.Errorf("failed to add exercise to day: %w", err)
		}

		color.Green("✓ Added %s to day %d", exercise.Name, dayID)
		return nil
	},
}

var templateDayExerciseRemoveCmd = &cobra.Command{
	Use:   "remove <template-day-exercise-id>",
	Short: "Remove an exercise from a day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		if err := session.Store.RemoveExerciseFromDay(id); err != nil {
			return fmt.Errorf("failed to remove exercise: %w", err)
		}

		color.Green("✓ Removed day exercise %d", id)
		return nil
	},
}

func init() {
	templateDayExerciseCmd.AddCommand(templateDayExerciseAddCmd)
	templateDayExerciseCmd.AddCommand(templateDayExerciseRemoveCmd)

	templateDayCmd.AddCommand(templateDayAddCmd)
	templateDayCmd.AddCommand(templateDayRenameCmd)
	templateDayCmd.AddCommand(templateDayDeleteCmd)
	templateDayCmd.AddCommand(templateDayExerciseCmd)

	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateCreateCmd)
	templateCmd.AddCommand(templateDeleteCmd)
	templateCmd.AddCommand(templateDayCmd)
	rootCmd.AddCommand(templateCmd)
}
