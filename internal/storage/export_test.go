// ABOUTME: Tests for the full-data export tree.
// ABOUTME: Verifies nesting of workouts, exercises, and sets.
package storage

import (
	"strings"
	"testing"
)

func TestGetAllDataNestsWorkouts(t *testing.T) {
	s := setupTestStore(t)

	benchID := firstExerciseID(t, s, "Barbell Bench Press")
	workoutID := finishedWorkoutWithSets(t, s, benchID, [][2]float64{{100, 5}, {102.5, 3}})

	data, err := s.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}

	if data.Version != "1.0" {
		t.Errorf("Version = %q, want 1.0", data.Version)
	}
	if data.Tool != "ironlog" {
		t.Errorf("Tool = %q, want ironlog", data.Tool)
	}
	if len(data.MuscleGroups) != 6 {
		t.Errorf("MuscleGroups = %d, want 6", len(data.MuscleGroups))
	}
	if len(data.Templates) != 6 {
		t.Errorf("Templates = %d, want 6", len(data.Templates))
	}

	var found bool
	for _, w := range data.Workouts {
		if w.ID != workoutID {
			continue
		}
		found = true
		if len(w.Exercises) != 1 {
			t.Fatalf("workout exercises = %d, want 1", len(w.Exercises))
		}
		if len(w.Exercises[0].Sets) != 2 {
			t.Errorf("sets = %d, want 2", len(w.Exercises[0].Sets))
		}
	}
	if !found {
		t.Errorf("workout %d missing from export", workoutID)
	}
}

func TestExportJSONAndYAML(t *testing.T) {
	s := setupTestStore(t)

	jsonData, err := s.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	if !strings.Contains(string(jsonData), `"tool": "ironlog"`) {
		t.Error("JSON export missing tool marker")
	}

	yamlData, err := s.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}
	if !strings.Contains(string(yamlData), "muscle_groups:") {
		t.Error("YAML export missing muscle_groups")
	}
}
