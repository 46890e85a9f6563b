// ABOUTME: Tests for the exercise library queries and custom exercises.
// ABOUTME: Verifies filtering, lookup, and the custom-only delete rule.
package storage

import (
	"strings"
	"testing"
)

func TestGetMuscleGroupsSeeded(t *testing.T) {
	s := setupTestStore(t)

	groups, err := s.GetMuscleGroups()
	if err != nil {
		t.Fatalf("GetMuscleGroups failed: %v", err)
	}

	want := []string{"Chest", "Back", "Legs", "Shoulders", "Arms", "Core"}
	if len(groups) != len(want) {
		t.Fatalf("got %d muscle groups, want %d", len(groups), len(want))
	}
	for i, name := range want {
		if groups[i].Name != name {
			t.Errorf("group %d = %q, want %q", i, groups[i].Name, name)
		}
	}
}

func TestGetExercisesByGroup(t *testing.T) {
	s := setupTestStore(t)

	groups, err := s.GetMuscleGroups()
	if err != nil {
		t.Fatalf("GetMuscleGroups failed: %v", err)
	}
	chestID := groups[0].ID

	exercises, err := s.GetExercises(&chestID, "")
	if err != nil {
		t.Fatalf("GetExercises failed: %v", err)
	}
	if len(exercises) == 0 {
		t.Fatal("expected seeded chest exercises")
	}
	for _, e := range exercises {
		if e.MuscleGroupID != chestID {
			t.Errorf("exercise %q in group %d, want %d", e.Name, e.MuscleGroupID, chestID)
		}
		if e.MuscleGroupName != "Chest" {
			t.Errorf("exercise %q group name = %q, want Chest", e.Name, e.MuscleGroupName)
		}
	}
}

func TestGetExercisesSearch(t *testing.T) {
	s := setupTestStore(t)

	exercises, err := s.GetExercises(nil, "press")
	if err != nil {
		t.Fatalf("GetExercises failed: %v", err)
	}
	if len(exercises) == 0 {
		t.Fatal("expected matches for 'press'")
	}
	for _, e := range exercises {
		if !strings.Contains(strings.ToLower(e.Name), "press") {
			t.Errorf("exercise %q does not match search", e.Name)
		}
	}
}

func TestGetExerciseByIDMissing(t *testing.T) {
	s := setupTestStore(t)

	got, err := s.GetExerciseByID(999999)
	if err != nil {
		t.Fatalf("GetExerciseByID failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing exercise, got %+v", got)
	}
}

func TestCreateAndDeleteCustomExercise(t *testing.T) {
	s := setupTestStore(t)

	groups, err := s.GetMuscleGroups()
	if err != nil {
		t.Fatalf("GetMuscleGroups failed: %v", err)
	}

	id, err := s.CreateExercise("Zercher Squat", groups[2].ID)
	if err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	got, err := s.GetExerciseByID(id)
	if err != nil {
		t.Fatalf("GetExerciseByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("created exercise not found")
	}
	if got.Name != "Zercher Squat" {
		t.Errorf("Name = %q, want Zercher Squat", got.Name)
	}
	if !got.IsCustom {
		t.Error("created exercise should be custom")
	}

	if err := s.DeleteExercise(id); err != nil {
		t.Fatalf("DeleteExercise failed: %v", err)
	}
	got, err = s.GetExerciseByID(id)
	if err != nil {
		t.Fatalf("GetExerciseByID failed: %v", err)
	}
	if got != nil {
		t.Error("deleted exercise still present")
	}
}

func TestDeleteSeededExerciseIsNoOp(t *testing.T) {
	s := setupTestStore(t)

	id := firstExerciseID(t, s, "Barbell Bench Press")
	if err := s.DeleteExercise(id); err != nil {
		t.Fatalf("DeleteExercise failed: %v", err)
	}

	got, err := s.GetExerciseByID(id)
	if err != nil {
		t.Fatalf("GetExerciseByID failed: %v", err)
	}
	if got == nil {
		t.Error("seeded exercise was deleted")
	}
}
