// ABOUTME: Structured export of the full data tree.
// ABOUTME: Supports JSON and YAML; raw-bytes export lives in Store.Snapshot.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/ironlog/internal/models"
	"gopkg.in/yaml.v3"
)

// WorkoutExport nests a workout with its exercises and their sets.
type WorkoutExport struct {
	models.Workout `yaml:",inline"`
	Exercises      []WorkoutExerciseExport `json:"exercises" yaml:"exercises"`
}

// WorkoutExerciseExport nests a workout exercise with its sets.
type WorkoutExerciseExport struct {
	models.WorkoutExercise `yaml:",inline"`
	Sets                   []*models.Set `json:"sets" yaml:"sets"`
}

// ExportData is the full structured export.
type ExportData struct {
	Version      string                     `json:"version" yaml:"version"`
	ExportedAt   time.Time                  `json:"exported_at" yaml:"exported_at"`
	Tool         string                     `json:"tool" yaml:"tool"`
	MuscleGroups []*models.MuscleGroup      `json:"muscle_groups" yaml:"muscle_groups"`
	Exercises    []*models.Exercise         `json:"exercises" yaml:"exercises"`
	Workouts     []WorkoutExport            `json:"workouts" yaml:"workouts"`
	Templates    []*models.TemplateWithDays `json:"templates" yaml:"templates"`
}

// GetAllData retrieves the complete data tree for export.
func (s *Store) GetAllData() (*ExportData, error) {
	groups, err := s.GetMuscleGroups()
	if err != nil {
		return nil, err
	}

	exercises, err := s.GetExercises(nil, "")
	if err != nil {
		return nil, err
	}

	workouts, err := s.allWorkouts()
	if err != nil {
		return nil, err
	}

	var workoutExports []WorkoutExport
	for _, w := range workouts {
		we, err := s.GetWorkoutExercises(w.ID)
		if err != nil {
			return nil, err
		}
		export := WorkoutExport{Workout: *w}
		for _, x := range we {
			sets, err := s.GetSetsForWorkoutExercise(x.ID)
			if err != nil {
				return nil, err
			}
			export.Exercises = append(export.Exercises, WorkoutExerciseExport{
				WorkoutExercise: *x,
				Sets:            sets,
			})
		}
		workoutExports = append(workoutExports, export)
	}

	templates, err := s.GetTemplatesWithDays()
	if err != nil {
		return nil, err
	}
	for _, t := range templates {
		for i := range t.Days {
			exercises, err := s.templateDayExercises(t.Days[i].ID)
			if err != nil {
				return nil, err
			}
			t.Days[i].Exercises = exercises
		}
	}

	return &ExportData{
		Version:      "1.0",
		ExportedAt:   time.Now(),
		Tool:         "ironlog",
		MuscleGroups: groups,
		Exercises:    exercises,
		Workouts:     workoutExports,
		Templates:    templates,
	}, nil
}

// ExportJSON exports the full data tree as indented JSON.
func (s *Store) ExportJSON() ([]byte, error) {
	data, err := s.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports the full data tree as YAML.
func (s *Store) ExportYAML() ([]byte, error) {
	data, err := s.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// allWorkouts lists every workout, active included, oldest first.
func (s *Store) allWorkouts() ([]*models.Workout, error) {
	rows, err := s.db.Query("SELECT id, started_at, finished_at, notes FROM workouts ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	var workouts []*models.Workout
	for rows.Next() {
		var w models.Workout
		var startedAt string
		var finishedAt, notes sql.NullString
		if err := rows.Scan(&w.ID, &startedAt, &finishedAt, &notes); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		w.StartedAt = parseTime(startedAt)
		w.FinishedAt = nullableTime(finishedAt)
		w.Notes = nullableString(notes)
		workouts = append(workouts, &w)
	}
	return workouts, rows.Err()
}
