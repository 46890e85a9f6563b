// ABOUTME: MCP tool implementations for workout logging and analytics.
// ABOUTME: Covers the workout lifecycle, set logging, and progress queries.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/harperreed/ironlog/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_workout",
		Description: "Start a new workout session, optionally from a template day",
	}, s.handleStartWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "finish_workout",
		Description: "Finish the active workout with optional notes",
	}, s.handleFinishWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_active_workout",
		Description: "Get the in-progress workout with its exercises and sets",
	}, s.handleGetActiveWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Add an exercise to the active workout",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_set",
		Description: "Log a set (weight in kg, reps) for a workout exercise",
	}, s.handleLogSet)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_set",
		Description: "Delete a set; remaining sets are renumbered",
	}, s.handleDeleteSet)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List the exercise library, optionally filtered by muscle group or name",
	}, s.handleListExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List finished workouts with set counts, volume, and duration",
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_personal_records",
		Description: "Get the best estimated-1RM set per exercise",
	}, s.handleGetPersonalRecords)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_exercise_progress",
		Description: "Get per-date best weight, e1RM, and volume for an exercise",
	}, s.handleGetExerciseProgress)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_weekly_summary",
		Description: "Get workout counts, sets, and volume per week",
	}, s.handleGetWeeklySummary)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_templates",
		Description: "List workout templates with their days",
	}, s.handleListTemplates)
}

// Tool input/output types

type startWorkoutInput struct {
	TemplateDayID int64 `json:"template_day_id,omitempty" jsonschema:"Template day to copy exercises from; 0 starts an empty workout"`
}

type startWorkoutOutput struct {
	WorkoutID int64  `json:"workout_id"`
	Message   string `json:"message"`
}

type finishWorkoutInput struct {
	Notes string `json:"notes,omitempty" jsonschema:"Optional workout notes"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type addExerciseInput struct {
	ExerciseID int64 `json:"exercise_id" jsonschema:"Exercise to add"`
}

type addExerciseOutput struct {
	WorkoutExerciseID int64  `json:"workout_exercise_id"`
	Message           string `json:"message"`
}

type logSetInput struct {
	WorkoutExerciseID int64    `json:"workout_exercise_id" jsonschema:"Workout exercise to log against"`
	WeightKg          float64  `json:"weight_kg" jsonschema:"Weight in kilograms"`
	Reps              int      `json:"reps" jsonschema:"Repetitions performed"`
	IsWarmup          bool     `json:"is_warmup,omitempty" jsonschema:"Warmup sets are excluded from records and volume"`
	RPE               *float64 `json:"rpe,omitempty" jsonschema:"Rating of perceived exertion (optional)"`
}

type logSetOutput struct {
	SetID   int64  `json:"set_id"`
	Message string `json:"message"`
}

type deleteSetInput struct {
	SetID int64 `json:"set_id" jsonschema:"Set to delete"`
}

type listExercisesInput struct {
	MuscleGroupID int64  `json:"muscle_group_id,omitempty" jsonschema:"Filter by muscle group"`
	Search        string `json:"search,omitempty" jsonschema:"Case-insensitive name substring"`
}

type listWorkoutsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type getRecordsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results; 0 returns all"`
}

type exerciseProgressInput struct {
	ExerciseID int64 `json:"exercise_id" jsonschema:"Exercise to chart"`
}

type weeklySummaryInput struct {
	WeeksBack int `json:"weeks_back,omitempty" jsonschema:"How many weeks to cover (default 12)"`
}

// Tool handlers

func (s *Server) handleStartWorkout(ctx context.Context, req *mcp.CallToolRequest, input startWorkoutInput) (*mcp.CallToolResult, startWorkoutOutput, error) {
	var (
		id  int64
		err error
	)
	if input.TemplateDayID > 0 {
		id, err = s.store.StartWorkoutFromDay(input.TemplateDayID)
	} else {
		id, err = s.store.StartWorkout()
	}
	if errors.Is(err, storage.ErrActiveWorkout) {
		return nil, startWorkoutOutput{}, fmt.Errorf("a workout is already active; finish it first")
	}
	if err != nil {
		return nil, startWorkoutOutput{}, fmt.Errorf("failed to start workout: %w", err)
	}

	return nil, startWorkoutOutput{
		WorkoutID: id,
		Message:   fmt.Sprintf("Started workout %d", id),
	}, nil
}

func (s *Server) handleFinishWorkout(ctx context.Context, req *mcp.CallToolRequest, input finishWorkoutInput) (*mcp.CallToolResult, simpleOutput, error) {
	active, err := s.store.GetActiveWorkout()
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to look up active workout: %w", err)
	}
	if active == nil {
		return nil, simpleOutput{}, fmt.Errorf("no active workout")
	}

	var notes *string
	if input.Notes != "" {
		notes = &input.Notes
	}
	if err := s.store.FinishWorkout(active.ID, notes); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to finish workout: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Finished workout %d", active.ID),
	}, nil
}

func (s *Server) handleGetActiveWorkout(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	active, err := s.store.GetActiveWorkout()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up active workout: %w", err)
	}
	if active == nil {
		return nil, map[string]interface{}{"message": "No active workout."}, nil
	}

	tree, err := s.workoutTree(active.ID)
	if err != nil {
		return nil, nil, err
	}
	return nil, map[string]interface{}{
		"workout":   active,
		"exercises": tree,
	}, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, addExerciseOutput, error) {
	active, err := s.store.GetActiveWorkout()
	if err != nil {
		return nil, addExerciseOutput{}, fmt.Errorf("failed to look up active workout: %w", err)
	}
	if active == nil {
		return nil, addExerciseOutput{}, fmt.Errorf("no active workout; start one first")
	}

	exercise, err := s.store.GetExerciseByID(input.ExerciseID)
	if err != nil {
		return nil, addExerciseOutput{}, fmt.Errorf("failed to look up exercise: %w", err)
	}
	if exercise == nil {
		return nil, addExerciseOutput{}, fmt.Errorf("no exercise with id %d", input.ExerciseID)
	}

	id, err := s.store.AddExerciseToWorkout(active.ID, input.ExerciseID)
	if err != nil {
		return nil, addExerciseOutput{}, fmt.Errorf("failed to add exercise: %w", err)
	}

	return nil, addExerciseOutput{
		WorkoutExerciseID: id,
		Message:           fmt.Sprintf("Added %s to workout %d", exercise.Name, active.ID),
	}, nil
}

func (s *Server) handleLogSet(ctx context.Context, req *mcp.CallToolRequest, input logSetInput) (*mcp.CallToolResult, logSetOutput, error) {
	id, err := s.store.AddSet(input.WorkoutExerciseID, input.WeightKg, input.Reps, input.IsWarmup, input.RPE)
	if err != nil {
		return nil, logSetOutput{}, fmt.Errorf("failed to log set: %w", err)
	}

	return nil, logSetOutput{
		SetID:   id,
		Message: fmt.Sprintf("Logged %.1f kg x %d", input.WeightKg, input.Reps),
	}, nil
}

func (s *Server) handleDeleteSet(ctx context.Context, req *mcp.CallToolRequest, input deleteSetInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.store.DeleteSet(input.SetID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete set: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted set %d", input.SetID),
	}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, any, error) {
	var muscleGroupID *int64
	if input.MuscleGroupID > 0 {
		muscleGroupID = &input.MuscleGroupID
	}

	exercises, err := s.store.GetExercises(muscleGroupID, input.Search)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	if len(exercises) == 0 {
		return nil, map[string]interface{}{"message": "No exercises found."}, nil
	}
	return nil, exercises, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	workouts, err := s.store.GetWorkoutSummaries(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	if len(workouts) == 0 {
		return nil, map[string]interface{}{"message": "No finished workouts."}, nil
	}
	return nil, workouts, nil
}

func (s *Server) handleGetPersonalRecords(ctx context.Context, req *mcp.CallToolRequest, input getRecordsInput) (*mcp.CallToolResult, any, error) {
	records, err := s.store.GetPersonalRecords(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get personal records: %w", err)
	}

	if len(records) == 0 {
		return nil, map[string]interface{}{"message": "No records yet."}, nil
	}
	return nil, records, nil
}

func (s *Server) handleGetExerciseProgress(ctx context.Context, req *mcp.CallToolRequest, input exerciseProgressInput) (*mcp.CallToolResult, any, error) {
	progress, err := s.store.GetExerciseProgress(input.ExerciseID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get exercise progress: %w", err)
	}

	if len(progress) == 0 {
		return nil, map[string]interface{}{"message": "No history for this exercise."}, nil
	}
	return nil, progress, nil
}

func (s *Server) handleGetWeeklySummary(ctx context.Context, req *mcp.CallToolRequest, input weeklySummaryInput) (*mcp.CallToolResult, any, error) {
	summaries, err := s.store.GetWeeklySummaries(input.WeeksBack)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get weekly summaries: %w", err)
	}

	if len(summaries) == 0 {
		return nil, map[string]interface{}{"message": "No finished workouts in range."}, nil
	}
	return nil, summaries, nil
}

func (s *Server) handleListTemplates(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	templates, err := s.store.GetTemplatesWithDays()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return nil, templates, nil
}

// workoutTree loads a workout's exercises with their sets.
func (s *Server) workoutTree(workoutID int64) ([]map[string]interface{}, error) {
	exercises, err := s.store.GetWorkoutExercises(workoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workout exercises: %w", err)
	}

	var tree []map[string]interface{}
	for _, we := range exercises {
		sets, err := s.store.GetSetsForWorkoutExercise(we.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list sets: %w", err)
		}
		tree = append(tree, map[string]interface{}{
			"exercise": we,
			"sets":     sets,
		})
	}
	return tree, nil
}
