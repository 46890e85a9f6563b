// ABOUTME: Workout lifecycle and workout-exercise mutations and queries.
// ABOUTME: Deleting a workout cascades explicitly through sets and exercises.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/ironlog/internal/models"
)

// StartWorkout creates a new active workout. If another workout is still
// unfinished it returns ErrActiveWorkout instead of creating a duplicate;
// callers that want to resume should use GetActiveWorkout first.
func (s *Store) StartWorkout() (int64, error) {
	active, err := s.GetActiveWorkout()
	if err != nil {
		return 0, err
	}
	if active != nil {
		return 0, ErrActiveWorkout
	}

	res, err := s.db.Exec("INSERT INTO workouts (started_at) VALUES (?)", nowISO())
	if err != nil {
		return 0, fmt.Errorf("start workout: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("start workout: %w", err)
	}
	s.scheduleSave()
	return id, nil
}

// FinishWorkout stamps the completion time and optional notes. Finishing
// an already-finished workout just overwrites both. Returns ErrNotFound
// for an id that matches nothing.
func (s *Store) FinishWorkout(id int64, notes *string) error {
	res, err := s.db.Exec(
		"UPDATE workouts SET finished_at = ?, notes = ? WHERE id = ?",
		nowISO(), notes, id,
	)
	if err != nil {
		return fmt.Errorf("finish workout: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	s.scheduleSave()
	return nil
}

// DeleteWorkout removes a workout and everything it owns. Sets sit two
// foreign-key hops down, so the cascade is spelled out bottom-up.
func (s *Store) DeleteWorkout(id int64) error {
	if _, err := s.db.Exec(
		"DELETE FROM sets WHERE workout_exercise_id IN (SELECT id FROM workout_exercises WHERE workout_id = ?)",
		id,
	); err != nil {
		return fmt.Errorf("delete workout sets: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM workout_exercises WHERE workout_id = ?", id); err != nil {
		return fmt.Errorf("delete workout exercises: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM workouts WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	s.scheduleSave()
	return nil
}

// GetActiveWorkout returns the most recent unfinished workout, or nil when
// none exists.
func (s *Store) GetActiveWorkout() (*models.Workout, error) {
	row := s.db.QueryRow(
		"SELECT id, started_at, finished_at, notes FROM workouts WHERE finished_at IS NULL ORDER BY id DESC LIMIT 1",
	)
	w, err := scanWorkout(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active workout: %w", err)
	}
	return w, nil
}

// GetWorkoutByID returns one workout, or nil when it does not exist.
func (s *Store) GetWorkoutByID(id int64) (*models.Workout, error) {
	row := s.db.QueryRow("SELECT id, started_at, finished_at, notes FROM workouts WHERE id = ?", id)
	w, err := scanWorkout(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get workout: %w", err)
	}
	return w, nil
}

// AddExerciseToWorkout appends an exercise at the next sort order.
func (s *Store) AddExerciseToWorkout(workoutID, exerciseID int64) (int64, error) {
	var sortOrder int
	if err := s.db.QueryRow(
		"SELECT COALESCE(MAX(sort_order), -1) + 1 FROM workout_exercises WHERE workout_id = ?",
		workoutID,
	).Scan(&sortOrder); err != nil {
		return 0, fmt.Errorf("next sort order: %w", err)
	}

	res, err := s.db.Exec(
		"INSERT INTO workout_exercises (workout_id, exercise_id, sort_order) VALUES (?, ?, ?)",
		workoutID, exerciseID, sortOrder,
	)
	if err != nil {
		return 0, fmt.Errorf("add exercise to workout: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add exercise to workout: %w", err)
	}
	s.scheduleSave()
	return id, nil
}

// RemoveExerciseFromWorkout deletes a workout exercise and its sets.
// Remaining sort orders are left as-is; gaps are fine since only relative
// order matters.
func (s *Store) RemoveExerciseFromWorkout(workoutExerciseID int64) error {
	if _, err := s.db.Exec("DELETE FROM sets WHERE workout_exercise_id = ?", workoutExerciseID); err != nil {
		return fmt.Errorf("delete sets: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM workout_exercises WHERE id = ?", workoutExerciseID); err != nil {
		return fmt.Errorf("remove exercise from workout: %w", err)
	}
	s.scheduleSave()
	return nil
}

// GetWorkoutExercises returns a workout's exercises in workout order with
// exercise and muscle group names joined in.
func (s *Store) GetWorkoutExercises(workoutID int64) ([]*models.WorkoutExercise, error) {
	rows, err := s.db.Query(`
		SELECT we.id, we.workout_id, we.exercise_id, we.sort_order, we.notes,
		       e.name, mg.name
		FROM workout_exercises we
		JOIN exercises e ON e.id = we.exercise_id
		JOIN muscle_groups mg ON mg.id = e.muscle_group_id
		WHERE we.workout_id = ?
		ORDER BY we.sort_order
	`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("list workout exercises: %w", err)
	}
	defer rows.Close()

	var result []*models.WorkoutExercise
	for rows.Next() {
		var we models.WorkoutExercise
		var notes sql.NullString
		if err := rows.Scan(&we.ID, &we.WorkoutID, &we.ExerciseID, &we.SortOrder, &notes,
			&we.ExerciseName, &we.MuscleGroupName); err != nil {
			return nil, fmt.Errorf("scan workout exercise: %w", err)
		}
		we.Notes = nullableString(notes)
		result = append(result, &we)
	}
	return result, rows.Err()
}

// GetWorkoutSummaries returns finished workouts, most recent first, with
// derived exercise/set counts, non-warmup volume, and duration.
func (s *Store) GetWorkoutSummaries(limit int) ([]*models.WorkoutSummary, error) {
	query := `
		SELECT w.id, w.started_at, w.finished_at, w.notes,
			(SELECT COUNT(DISTINCT we.id) FROM workout_exercises we WHERE we.workout_id = w.id),
			(SELECT COUNT(*) FROM sets s JOIN workout_exercises we ON we.id = s.workout_exercise_id WHERE we.workout_id = w.id),
			(SELECT COALESCE(SUM(s.weight_kg * s.reps), 0) FROM sets s JOIN workout_exercises we ON we.id = s.workout_exercise_id WHERE we.workout_id = w.id AND s.is_warmup = 0),
			CASE WHEN w.finished_at IS NOT NULL
				THEN CAST(ROUND((julianday(w.finished_at) - julianday(w.started_at)) * 1440) AS INTEGER)
				ELSE NULL END
		FROM workouts w
		WHERE w.finished_at IS NOT NULL
		ORDER BY w.started_at DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workout summaries: %w", err)
	}
	defer rows.Close()

	var summaries []*models.WorkoutSummary
	for rows.Next() {
		var ws models.WorkoutSummary
		var startedAt string
		var finishedAt, notes sql.NullString
		var duration sql.NullInt64
		if err := rows.Scan(&ws.ID, &startedAt, &finishedAt, &notes,
			&ws.ExerciseCount, &ws.TotalSets, &ws.TotalVolume, &duration); err != nil {
			return nil, fmt.Errorf("scan workout summary: %w", err)
		}
		ws.StartedAt = parseTime(startedAt)
		ws.FinishedAt = nullableTime(finishedAt)
		ws.Notes = nullableString(notes)
		if duration.Valid {
			d := int(duration.Int64)
			ws.DurationMinutes = &d
		}
		summaries = append(summaries, &ws)
	}
	return summaries, rows.Err()
}

// scanWorkout reads a workout row; errors pass through untouched so
// callers can detect sql.ErrNoRows.
func scanWorkout(row *sql.Row) (*models.Workout, error) {
	var w models.Workout
	var startedAt string
	var finishedAt, notes sql.NullString
	if err := row.Scan(&w.ID, &startedAt, &finishedAt, &notes); err != nil {
		return nil, err
	}
	w.StartedAt = parseTime(startedAt)
	w.FinishedAt = nullableTime(finishedAt)
	w.Notes = nullableString(notes)
	return &w, nil
}
