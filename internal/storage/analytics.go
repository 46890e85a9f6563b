// ABOUTME: Read-only aggregates: progress series, personal records, weekly summaries.
// ABOUTME: Only non-warmup sets with reps > 0 from finished workouts qualify.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/harperreed/ironlog/internal/models"
)

// e1rmExpr is the SQL form of models.Epley1RM, including the single-rep
// special case. Rows with reps <= 0 are excluded before it applies.
const e1rmExpr = "CASE WHEN s.reps = 1 THEN s.weight_kg ELSE s.weight_kg * (1.0 + s.reps / 30.0) END"

// GetExerciseProgress returns one aggregate row per calendar date on which
// the exercise was performed in a finished workout, ascending by date.
func (s *Store) GetExerciseProgress(exerciseID int64) ([]*models.ExerciseProgress, error) {
	rows, err := s.db.Query(`
		SELECT
			date(w.started_at),
			MAX(s.weight_kg),
			MAX(`+e1rmExpr+`),
			SUM(s.weight_kg * s.reps),
			COUNT(*)
		FROM sets s
		JOIN workout_exercises we ON we.id = s.workout_exercise_id
		JOIN workouts w ON w.id = we.workout_id
		WHERE we.exercise_id = ?
			AND s.is_warmup = 0
			AND s.reps > 0
			AND w.finished_at IS NOT NULL
		GROUP BY date(w.started_at)
		ORDER BY date(w.started_at)
	`, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("exercise progress: %w", err)
	}
	defer rows.Close()

	var progress []*models.ExerciseProgress
	for rows.Next() {
		var p models.ExerciseProgress
		if err := rows.Scan(&p.Date, &p.BestWeight, &p.BestE1RM, &p.TotalVolume, &p.TotalSets); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		progress = append(progress, &p)
	}
	return progress, rows.Err()
}

// GetPersonalRecords returns, for every exercise with qualifying sets, the
// single set with the highest estimated 1RM, descending by e1RM. Ties go
// to the first row encountered. limit <= 0 means no cap.
func (s *Store) GetPersonalRecords(limit int) ([]*models.PersonalRecord, error) {
	query := `
		SELECT exercise_id, exercise_name, weight_kg, reps, e1rm, date
		FROM (
			SELECT
				e.id AS exercise_id,
				e.name AS exercise_name,
				s.weight_kg,
				s.reps,
				` + e1rmExpr + ` AS e1rm,
				date(w.started_at) AS date,
				ROW_NUMBER() OVER (PARTITION BY e.id ORDER BY ` + e1rmExpr + ` DESC) AS rn
			FROM sets s
			JOIN workout_exercises we ON we.id = s.workout_exercise_id
			JOIN exercises e ON e.id = we.exercise_id
			JOIN workouts w ON w.id = we.workout_id
			WHERE s.is_warmup = 0
				AND s.reps > 0
				AND w.finished_at IS NOT NULL
		) sub
		WHERE rn = 1
		ORDER BY e1rm DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("personal records: %w", err)
	}
	defer rows.Close()

	var records []*models.PersonalRecord
	for rows.Next() {
		var pr models.PersonalRecord
		if err := rows.Scan(&pr.ExerciseID, &pr.ExerciseName, &pr.WeightKg, &pr.Reps, &pr.E1RM, &pr.Date); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, &pr)
	}
	return records, rows.Err()
}

// GetExercisePR returns the best set for one exercise, or nil when no set
// qualifies.
func (s *Store) GetExercisePR(exerciseID int64) (*models.PersonalRecord, error) {
	var pr models.PersonalRecord
	err := s.db.QueryRow(`
		SELECT
			e.id,
			e.name,
			s.weight_kg,
			s.reps,
			`+e1rmExpr+` AS e1rm,
			date(w.started_at)
		FROM sets s
		JOIN workout_exercises we ON we.id = s.workout_exercise_id
		JOIN exercises e ON e.id = we.exercise_id
		JOIN workouts w ON w.id = we.workout_id
		WHERE we.exercise_id = ?
			AND s.is_warmup = 0
			AND s.reps > 0
			AND w.finished_at IS NOT NULL
		ORDER BY e1rm DESC
		LIMIT 1
	`, exerciseID).Scan(&pr.ExerciseID, &pr.ExerciseName, &pr.WeightKg, &pr.Reps, &pr.E1RM, &pr.Date)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("exercise PR: %w", err)
	}
	return &pr, nil
}

// GetWeeklySummaries buckets finished workouts from the last weeksBack
// weeks by the Monday of their ISO week, ascending. Total sets count every
// set in the bucket's workouts; volume counts non-warmup work only. Weeks
// with no workouts do not produce rows.
func (s *Store) GetWeeklySummaries(weeksBack int) ([]*models.WeeklySummary, error) {
	if weeksBack <= 0 {
		weeksBack = 12
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -weeksBack*7).Format("2006-01-02")

	// 'weekday 0' advances to the following Sunday; minus six days lands
	// on the Monday of the same ISO week.
	rows, err := s.db.Query(`
		SELECT
			date(w.started_at, 'weekday 0', '-6 days') AS week_start,
			COUNT(DISTINCT w.id),
			COALESCE(SUM(CASE WHEN s.is_warmup = 0 THEN s.weight_kg * s.reps END), 0),
			COUNT(s.id)
		FROM workouts w
		LEFT JOIN workout_exercises we ON we.workout_id = w.id
		LEFT JOIN sets s ON s.workout_exercise_id = we.id
		WHERE w.finished_at IS NOT NULL
			AND w.started_at >= ?
		GROUP BY week_start
		ORDER BY week_start
	`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("weekly summaries: %w", err)
	}
	defer rows.Close()

	var summaries []*models.WeeklySummary
	for rows.Next() {
		var ws models.WeeklySummary
		if err := rows.Scan(&ws.WeekStart, &ws.WorkoutCount, &ws.TotalVolume, &ws.TotalSets); err != nil {
			return nil, fmt.Errorf("scan weekly summary: %w", err)
		}
		summaries = append(summaries, &ws)
	}
	return summaries, rows.Err()
}
