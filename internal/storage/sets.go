// ABOUTME: Set mutations and queries for a workout exercise.
// ABOUTME: Set numbers stay dense and 1-based; deletion renumbers the rest.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/ironlog/internal/models"
)

// GetSetsForWorkoutExercise returns a workout exercise's sets ordered by
// set number.
func (s *Store) GetSetsForWorkoutExercise(workoutExerciseID int64) ([]*models.Set, error) {
	rows, err := s.db.Query(`
		SELECT id, workout_exercise_id, set_number, weight_kg, reps, is_warmup, rpe
		FROM sets WHERE workout_exercise_id = ? ORDER BY set_number
	`, workoutExerciseID)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	defer rows.Close()

	var sets []*models.Set
	for rows.Next() {
		var set models.Set
		var rpe sql.NullFloat64
		if err := rows.Scan(&set.ID, &set.WorkoutExerciseID, &set.SetNumber,
			&set.WeightKg, &set.Reps, &set.IsWarmup, &rpe); err != nil {
			return nil, fmt.Errorf("scan set: %w", err)
		}
		if rpe.Valid {
			v := rpe.Float64
			set.RPE = &v
		}
		sets = append(sets, &set)
	}
	return sets, rows.Err()
}

// AddSet appends a set at the next set number (1 when none exist).
func (s *Store) AddSet(workoutExerciseID int64, weightKg float64, reps int, isWarmup bool, rpe *float64) (int64, error) {
	var setNumber int
	if err := s.db.QueryRow(
		"SELECT COALESCE(MAX(set_number), 0) + 1 FROM sets WHERE workout_exercise_id = ?",
		workoutExerciseID,
	).Scan(&setNumber); err != nil {
		return 0, fmt.Errorf("next set number: %w", err)
	}

	res, err := s.db.Exec(
		"INSERT INTO sets (workout_exercise_id, set_number, weight_kg, reps, is_warmup, rpe) VALUES (?, ?, ?, ?, ?, ?)",
		workoutExerciseID, setNumber, weightKg, reps, boolToInt(isWarmup), rpe,
	)
	if err != nil {
		return 0, fmt.Errorf("add set: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add set: %w", err)
	}
	s.scheduleSave()
	return id, nil
}

// UpdateSet replaces a set's mutable fields. The set number never changes
// here. Returns ErrNotFound for an id that matches nothing.
func (s *Store) UpdateSet(setID int64, weightKg float64, reps int, isWarmup bool, rpe *float64) error {
	res, err := s.db.Exec(
		"UPDATE sets SET weight_kg = ?, reps = ?, is_warmup = ?, rpe = ? WHERE id = ?",
		weightKg, reps, boolToInt(isWarmup), rpe, setID,
	)
	if err != nil {
		return fmt.Errorf("update set: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	s.scheduleSave()
	return nil
}

// DeleteSet removes a set and renumbers the remaining sets of the same
// workout exercise to 1..N. The renumbering is mandatory: set numbers are
// the one ordering in the schema required to stay gapless. Deleting a
// nonexistent set is a no-op.
func (s *Store) DeleteSet(setID int64) error {
	var workoutExerciseID int64
	err := s.db.QueryRow("SELECT workout_exercise_id FROM sets WHERE id = ?", setID).Scan(&workoutExerciseID)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete set: %w", err)
	}

	if _, err := s.db.Exec("DELETE FROM sets WHERE id = ?", setID); err != nil {
		return fmt.Errorf("delete set: %w", err)
	}

	rows, err := s.db.Query(
		"SELECT id FROM sets WHERE workout_exercise_id = ? ORDER BY set_number",
		workoutExerciseID,
	)
	if err != nil {
		return fmt.Errorf("renumber sets: %w", err)
	}
	var remaining []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("renumber sets: %w", err)
		}
		remaining = append(remaining, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("renumber sets: %w", err)
	}
	rows.Close()

	for i, id := range remaining {
		if _, err := s.db.Exec("UPDATE sets SET set_number = ? WHERE id = ?", i+1, id); err != nil {
			return fmt.Errorf("renumber sets: %w", err)
		}
	}

	s.scheduleSave()
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
