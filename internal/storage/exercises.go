// ABOUTME: Muscle group and exercise library queries and mutations.
// ABOUTME: Seeded exercises are immutable; deleting them is a silent no-op.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/ironlog/internal/models"
)

// GetMuscleGroups returns all muscle groups ordered by id.
func (s *Store) GetMuscleGroups() ([]*models.MuscleGroup, error) {
	rows, err := s.db.Query("SELECT id, name FROM muscle_groups ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list muscle groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.MuscleGroup
	for rows.Next() {
		var g models.MuscleGroup
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("scan muscle group: %w", err)
		}
		groups = append(groups, &g)
	}
	return groups, rows.Err()
}

// GetExercises lists the exercise library, optionally filtered by muscle
// group and a case-insensitive name substring. Ordered by muscle group
// name, then exercise name.
func (s *Store) GetExercises(muscleGroupID *int64, search string) ([]*models.Exercise, error) {
	query := `
		SELECT e.id, e.name, e.muscle_group_id, e.is_custom, mg.name
		FROM exercises e
		JOIN muscle_groups mg ON mg.id = e.muscle_group_id
		WHERE 1=1
	`
	var args []interface{}

	if muscleGroupID != nil {
		query += " AND e.muscle_group_id = ?"
		args = append(args, *muscleGroupID)
	}
	if search != "" {
		query += " AND e.name LIKE ?"
		args = append(args, "%"+search+"%")
	}

	query += " ORDER BY mg.name, e.name"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*models.Exercise
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.MuscleGroupID, &e.IsCustom, &e.MuscleGroupName); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, &e)
	}
	return exercises, rows.Err()
}

// GetExerciseByID returns one exercise, or nil when it does not exist.
func (s *Store) GetExerciseByID(id int64) (*models.Exercise, error) {
	var e models.Exercise
	err := s.db.QueryRow(`
		SELECT e.id, e.name, e.muscle_group_id, e.is_custom, mg.name
		FROM exercises e
		JOIN muscle_groups mg ON mg.id = e.muscle_group_id
		WHERE e.id = ?
	`, id).Scan(&e.ID, &e.Name, &e.MuscleGroupID, &e.IsCustom, &e.MuscleGroupName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return &e, nil
}

// CreateExercise inserts a user-defined exercise. Names are free text and
// duplicates are allowed.
func (s *Store) CreateExercise(name string, muscleGroupID int64) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO exercises (name, muscle_group_id, is_custom) VALUES (?, ?, 1)",
		name, muscleGroupID,
	)
	if err != nil {
		return 0, fmt.Errorf("create exercise: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create exercise: %w", err)
	}
	s.scheduleSave()
	return id, nil
}

// DeleteExercise removes a custom exercise. Seeded exercises never match
// the predicate, so deleting one is a silent no-op rather than an error.
// A custom exercise still referenced by workouts or templates is rejected
// by foreign-key enforcement.
func (s *Store) DeleteExercise(id int64) error {
	if _, err := s.db.Exec("DELETE FROM exercises WHERE id = ? AND is_custom = 1", id); err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	s.scheduleSave()
	return nil
}
