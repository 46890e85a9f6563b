// ABOUTME: Entity types for the workout log: exercises, workouts, sets, templates.
// ABOUTME: Mirrors the SQLite schema; IDs are monotonic integers assigned by the database.
package models

import "time"

// MuscleGroup is seeded reference data and never deleted by users.
type MuscleGroup struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Exercise is a movement in the library. Seeded exercises (IsCustom=false)
// are immutable; user-created ones may be deleted while unreferenced.
type Exercise struct {
	ID              int64  `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	MuscleGroupID   int64  `json:"muscle_group_id" yaml:"muscle_group_id"`
	IsCustom        bool   `json:"is_custom" yaml:"is_custom"`
	MuscleGroupName string `json:"muscle_group_name,omitempty" yaml:"muscle_group_name,omitempty"`
}

// Workout is a training session. FinishedAt == nil means the workout is
// still active; at most one active workout exists at a time.
type Workout struct {
	ID         int64      `json:"id" yaml:"id"`
	StartedAt  time.Time  `json:"started_at" yaml:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty" yaml:"finished_at,omitempty"`
	Notes      *string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Active reports whether the workout has not been finished yet.
func (w *Workout) Active() bool {
	return w.FinishedAt == nil
}

// WorkoutExercise is one exercise's inclusion in one workout, ordered by
// SortOrder. Sort orders may have gaps; only relative order matters.
type WorkoutExercise struct {
	ID              int64   `json:"id" yaml:"id"`
	WorkoutID       int64   `json:"workout_id" yaml:"workout_id"`
	ExerciseID      int64   `json:"exercise_id" yaml:"exercise_id"`
	SortOrder       int     `json:"sort_order" yaml:"sort_order"`
	Notes           *string `json:"notes,omitempty" yaml:"notes,omitempty"`
	ExerciseName    string  `json:"exercise_name,omitempty" yaml:"exercise_name,omitempty"`
	MuscleGroupName string  `json:"muscle_group_name,omitempty" yaml:"muscle_group_name,omitempty"`
}

// Set is a single performed set. SetNumber is 1-based and kept dense per
// workout exercise: deleting a set renumbers the remainder. Weight is
// always kilograms; display unit conversion happens elsewhere.
type Set struct {
	ID                int64    `json:"id" yaml:"id"`
	WorkoutExerciseID int64    `json:"workout_exercise_id" yaml:"workout_exercise_id"`
	SetNumber         int      `json:"set_number" yaml:"set_number"`
	WeightKg          float64  `json:"weight_kg" yaml:"weight_kg"`
	Reps              int      `json:"reps" yaml:"reps"`
	IsWarmup          bool     `json:"is_warmup" yaml:"is_warmup"`
	RPE               *float64 `json:"rpe,omitempty" yaml:"rpe,omitempty"`
}

// Template is a reusable workout plan. Presets are seeded once and treated
// as read-only by convention.
type Template struct {
	ID       int64  `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	IsPreset bool   `json:"is_preset" yaml:"is_preset"`
	DayCount int    `json:"day_count,omitempty" yaml:"day_count,omitempty"`
}

// TemplateDay is an ordered, named day within a template.
type TemplateDay struct {
	ID         int64                 `json:"id" yaml:"id"`
	TemplateID int64                 `json:"template_id" yaml:"template_id"`
	Name       string                `json:"name" yaml:"name"`
	SortOrder  int                   `json:"sort_order" yaml:"sort_order"`
	Exercises  []TemplateDayExercise `json:"exercises,omitempty" yaml:"exercises,omitempty"`
}

// TemplateDayExercise is an ordered exercise slot within a template day.
type TemplateDayExercise struct {
	ID              int64  `json:"id" yaml:"id"`
	TemplateDayID   int64  `json:"template_day_id" yaml:"template_day_id"`
	ExerciseID      int64  `json:"exercise_id" yaml:"exercise_id"`
	SortOrder       int    `json:"sort_order" yaml:"sort_order"`
	ExerciseName    string `json:"exercise_name,omitempty" yaml:"exercise_name,omitempty"`
	MuscleGroupName string `json:"muscle_group_name,omitempty" yaml:"muscle_group_name,omitempty"`
}

// TemplateWithDays is a template with its full nested day/exercise tree.
type TemplateWithDays struct {
	Template `yaml:",inline"`
	Days     []TemplateDay `json:"days" yaml:"days"`
}
