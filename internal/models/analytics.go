// ABOUTME: Derived read models for progress, records, and summaries.
// ABOUTME: Rows are computed by SQL aggregates in internal/storage.
package models

// ExerciseProgress is the aggregate for one calendar date on which an
// exercise was performed in a finished workout (warmups and zero-rep sets
// excluded).
type ExerciseProgress struct {
	Date        string  `json:"date" yaml:"date"`
	BestWeight  float64 `json:"best_weight" yaml:"best_weight"`
	BestE1RM    float64 `json:"best_e1rm" yaml:"best_e1rm"`
	TotalVolume float64 `json:"total_volume" yaml:"total_volume"`
	TotalSets   int     `json:"total_sets" yaml:"total_sets"`
}

// PersonalRecord is the single best set for an exercise by estimated 1RM.
type PersonalRecord struct {
	ExerciseID   int64   `json:"exercise_id" yaml:"exercise_id"`
	ExerciseName string  `json:"exercise_name" yaml:"exercise_name"`
	WeightKg     float64 `json:"weight_kg" yaml:"weight_kg"`
	Reps         int     `json:"reps" yaml:"reps"`
	E1RM         float64 `json:"e1rm" yaml:"e1rm"`
	Date         string  `json:"date" yaml:"date"`
}

// WeeklySummary buckets finished workouts by Monday-aligned ISO week.
// TotalSets counts every set in those workouts; TotalVolume counts only
// non-warmup work. Weeks with no workouts are omitted, not zero-filled.
type WeeklySummary struct {
	WeekStart    string  `json:"week_start" yaml:"week_start"`
	WorkoutCount int     `json:"workout_count" yaml:"workout_count"`
	TotalVolume  float64 `json:"total_volume" yaml:"total_volume"`
	TotalSets    int     `json:"total_sets" yaml:"total_sets"`
}

// WorkoutSummary is one finished workout with derived counts.
type WorkoutSummary struct {
	Workout         `yaml:",inline"`
	ExerciseCount   int     `json:"exercise_count" yaml:"exercise_count"`
	TotalSets       int     `json:"total_sets" yaml:"total_sets"`
	TotalVolume     float64 `json:"total_volume" yaml:"total_volume"`
	DurationMinutes *int    `json:"duration_minutes,omitempty" yaml:"duration_minutes,omitempty"`
}
