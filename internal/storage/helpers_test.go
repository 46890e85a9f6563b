// ABOUTME: Shared test helpers for the storage package.
// ABOUTME: Provides a seeded temp-dir store and common fixtures.
package storage

import (
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "ironlog.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// firstExerciseID returns the id of a seeded exercise by name.
func firstExerciseID(t *testing.T, s *Store, name string) int64 {
	t.Helper()

	exercises, err := s.GetExercises(nil, name)
	if err != nil {
		t.Fatalf("GetExercises failed: %v", err)
	}
	for _, e := range exercises {
		if e.Name == name {
			return e.ID
		}
	}
	t.Fatalf("seeded exercise %q not found", name)
	return 0
}

// backdateWorkout rewrites a workout's timestamps so analytics queries
// can be tested against known dates.
func backdateWorkout(t *testing.T, s *Store, workoutID int64, startedAt, finishedAt string) {
	t.Helper()

	var err error
	if finishedAt == "" {
		_, err = s.db.Exec("UPDATE workouts SET started_at = ?, finished_at = NULL WHERE id = ?", startedAt, workoutID)
	} else {
		_, err = s.db.Exec("UPDATE workouts SET started_at = ?, finished_at = ? WHERE id = ?", startedAt, finishedAt, workoutID)
	}
	if err != nil {
		t.Fatalf("backdate workout failed: %v", err)
	}
}

// finishedWorkoutWithSets starts a workout, logs the given (weight, reps)
// pairs against one exercise, and finishes it.
func finishedWorkoutWithSets(t *testing.T, s *Store, exerciseID int64, sets [][2]float64) int64 {
	t.Helper()

	workoutID, err := s.StartWorkout()
	if err != nil {
		t.Fatalf("StartWorkout failed: %v", err)
	}
	weID, err := s.AddExerciseToWorkout(workoutID, exerciseID)
	if err != nil {
		t.Fatalf("AddExerciseToWorkout failed: %v", err)
	}
	for _, set := range sets {
		if _, err := s.AddSet(weID, set[0], int(set[1]), false, nil); err != nil {
			t.Fatalf("AddSet failed: %v", err)
		}
	}
	if err := s.FinishWorkout(workoutID, nil); err != nil {
		t.Fatalf("FinishWorkout failed: %v", err)
	}
	return workoutID
}
