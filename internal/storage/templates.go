// ABOUTME: Template CRUD and template-to-workout instantiation.
// ABOUTME: Instantiation copies a day's exercise list and seeds one empty set each.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/ironlog/internal/models"
)

// GetTemplates returns all templates with day counts, presets first, then
// by name.
func (s *Store) GetTemplates() ([]*models.Template, error) {
	rows, err := s.db.Query(`
		SELECT t.id, t.name, t.is_preset,
			(SELECT COUNT(*) FROM template_days td WHERE td.template_id = t.id)
		FROM templates t
		ORDER BY t.is_preset DESC, t.name
	`)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var templates []*models.Template
	for rows.Next() {
		var t models.Template
		if err := rows.Scan(&t.ID, &t.Name, &t.IsPreset, &t.DayCount); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, &t)
	}
	return templates, rows.Err()
}

// GetTemplateByID returns a template with its full day/exercise tree, or
// nil when it does not exist.
func (s *Store) GetTemplateByID(id int64) (*models.TemplateWithDays, error) {
	var t models.TemplateWithDays
	err := s.db.QueryRow("SELECT id, name, is_preset FROM templates WHERE id = ?", id).
		Scan(&t.ID, &t.Name, &t.IsPreset)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}

	days, err := s.templateDays(id)
	if err != nil {
		return nil, err
	}
	for i := range days {
		exercises, err := s.templateDayExercises(days[i].ID)
		if err != nil {
			return nil, err
		}
		days[i].Exercises = exercises
	}
	t.Days = days
	t.DayCount = len(days)
	return &t, nil
}

// GetTemplatesWithDays returns all templates with their day lists (day
// exercise trees left empty), presets first.
func (s *Store) GetTemplatesWithDays() ([]*models.TemplateWithDays, error) {
	rows, err := s.db.Query("SELECT id, name, is_preset FROM templates ORDER BY is_preset DESC, name")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var templates []*models.TemplateWithDays
	for rows.Next() {
		var t models.TemplateWithDays
		if err := rows.Scan(&t.ID, &t.Name, &t.IsPreset); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, t := range templates {
		days, err := s.templateDays(t.ID)
		if err != nil {
			return nil, err
		}
		t.Days = days
		t.DayCount = len(days)
	}
	return templates, nil
}

// CreateTemplate inserts a user template.
func (s *Store) CreateTemplate(name string) (int64, error) {
	res, err := s.db.Exec("INSERT INTO templates (name, is_preset) VALUES (?, 0)", name)
	if err != nil {
		return 0, fmt.Errorf("create template: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create template: %w", err)
	}
	s.scheduleSave()
	return id, nil
}

// DeleteTemplate removes a template and its days and day exercises.
func (s *Store) DeleteTemplate(id int64) error {
	if _, err := s.db.Exec(
		"DELETE FROM template_day_exercises WHERE template_day_id IN (SELECT id FROM template_days WHERE template_id = ?)",
		id,
	); err != nil {
		return fmt.Errorf("delete template day exercises: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM template_days WHERE template_id = ?", id); err != nil {
		return fmt.Errorf("delete template days: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM templates WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	s.scheduleSave()
	return nil
}

// AddTemplateDay appends a day at the next sort order.
func (s *Store) AddTemplateDay(templateID int64, name string) (int64, error) {
	var sortOrder int
	if err := s.db.QueryRow(
		"SELECT COALESCE(MAX(sort_order), -1) + 1 FROM template_days WHERE template_id = ?",
		templateID,
	).Scan(&sortOrder); err != nil {
		return 0, fmt.Errorf("next sort order: %w", err)
	}

	res, err := s.db.Exec(
		"INSERT INTO template_days (template_id, name, sort_order) VALUES (?, ?, ?)",
		templateID, name, sortOrder,
	)
	if err != nil {
		return 0, fmt.Errorf("add template day: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add template day: %w", err)
	}
	s.scheduleSave()
	return id, nil
}

// DeleteTemplateDay removes a day and its exercise slots.
func (s *Store) DeleteTemplateDay(dayID int64) error {
	if _, err := s.db.Exec("DELETE FROM template_day_exercises WHERE template_day_id = ?", dayID); err != nil {
		return fmt.Errorf("delete template day exercises: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM template_days WHERE id = ?", dayID); err != nil {
		return fmt.Errorf("delete template day: %w", err)
	}
	s.scheduleSave()
	return nil
}

// RenameTemplateDay updates a day's name. Returns ErrNotFound for an id
// that matches nothing.
func (s *Store) RenameTemplateDay(dayID int64, name string) error {
	res, err := s.db.Exec("UPDATE template_days SET name = ? WHERE id = ?", name, dayID)
	if err != nil {
		return fmt.Errorf("rename template day: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	s.scheduleSave()
	return nil
}

// AddExerciseToDay appends an exercise slot at the next sort order.
func (s *Store) AddExerciseToDay(dayID, exerciseID int64) (int64, error) {
	var sortOrder int
	if err := s.db.QueryRow(
		"SELECT COALESCE(MAX(sort_order), -1) + 1 FROM template_day_exercises WHERE template_day_id = ?",
		dayID,
	).Scan(&sortOrder); err != nil {
		return 0, fmt.Errorf("next sort order: %w", err)
	}

	res, err := s.db.Exec(
		"INSERT INTO template_day_exercises (template_day_id, exercise_id, sort_order) VALUES (?, ?, ?)",
		dayID, exerciseID, sortOrder,
	)
	if err != nil {
		return 0, fmt.Errorf("add exercise to day: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add exercise to day: %w", err)
	}
	s.scheduleSave()
	return id, nil
}

// RemoveExerciseFromDay deletes an exercise slot. Sort orders of the rest
// are left alone.
func (s *Store) RemoveExerciseFromDay(templateDayExerciseID int64) error {
	if _, err := s.db.Exec("DELETE FROM template_day_exercises WHERE id = ?", templateDayExerciseID); err != nil {
		return fmt.Errorf("remove exercise from day: %w", err)
	}
	s.scheduleSave()
	return nil
}

// StartWorkoutFromDay creates a new workout from a template day: every day
// exercise becomes a workout exercise in template order, each seeded with
// one empty set so there is an editable starting row. Returns
// ErrActiveWorkout if a workout is already in progress.
func (s *Store) StartWorkoutFromDay(dayID int64) (int64, error) {
	workoutID, err := s.StartWorkout()
	if err != nil {
		return 0, err
	}

	if err := s.copyDayExercises(workoutID, dayID); err != nil {
		return 0, err
	}

	s.scheduleSave()
	return workoutID, nil
}

// AddTemplateDayToWorkout appends a template day's exercises to an
// existing workout, continuing its sort order sequence.
func (s *Store) AddTemplateDayToWorkout(workoutID, dayID int64) error {
	if err := s.copyDayExercises(workoutID, dayID); err != nil {
		return err
	}
	s.scheduleSave()
	return nil
}

// copyDayExercises inserts a day's exercises into a workout in day order,
// seeding each with set 1 at zero weight and reps.
func (s *Store) copyDayExercises(workoutID, dayID int64) error {
	rows, err := s.db.Query(
		"SELECT exercise_id FROM template_day_exercises WHERE template_day_id = ? ORDER BY sort_order",
		dayID,
	)
	if err != nil {
		return fmt.Errorf("list day exercises: %w", err)
	}
	var exerciseIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scan day exercise: %w", err)
		}
		exerciseIDs = append(exerciseIDs, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	var sortOrder int
	if err := s.db.QueryRow(
		"SELECT COALESCE(MAX(sort_order), -1) + 1 FROM workout_exercises WHERE workout_id = ?",
		workoutID,
	).Scan(&sortOrder); err != nil {
		return fmt.Errorf("next sort order: %w", err)
	}

	for _, exerciseID := range exerciseIDs {
		res, err := s.db.Exec(
			"INSERT INTO workout_exercises (workout_id, exercise_id, sort_order) VALUES (?, ?, ?)",
			workoutID, exerciseID, sortOrder,
		)
		if err != nil {
			return fmt.Errorf("copy day exercise: %w", err)
		}
		weID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("copy day exercise: %w", err)
		}
		if _, err := s.db.Exec(
			"INSERT INTO sets (workout_exercise_id, set_number, weight_kg, reps, is_warmup, rpe) VALUES (?, 1, 0, 0, 0, NULL)",
			weID,
		); err != nil {
			return fmt.Errorf("seed initial set: %w", err)
		}
		sortOrder++
	}
	return nil
}

// templateDays returns a template's days in order.
func (s *Store) templateDays(templateID int64) ([]models.TemplateDay, error) {
	rows, err := s.db.Query(
		"SELECT id, template_id, name, sort_order FROM template_days WHERE template_id = ? ORDER BY sort_order",
		templateID,
	)
	if err != nil {
		return nil, fmt.Errorf("list template days: %w", err)
	}
	defer rows.Close()

	var days []models.TemplateDay
	for rows.Next() {
		var d models.TemplateDay
		if err := rows.Scan(&d.ID, &d.TemplateID, &d.Name, &d.SortOrder); err != nil {
			return nil, fmt.Errorf("scan template day: %w", err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

// templateDayExercises returns a day's exercise slots in order with names
// joined in.
func (s *Store) templateDayExercises(dayID int64) ([]models.TemplateDayExercise, error) {
	rows, err := s.db.Query(`
		SELECT tde.id, tde.template_day_id, tde.exercise_id, tde.sort_order,
		       e.name, mg.name
		FROM template_day_exercises tde
		JOIN exercises e ON e.id = tde.exercise_id
		JOIN muscle_groups mg ON mg.id = e.muscle_group_id
		WHERE tde.template_day_id = ?
		ORDER BY tde.sort_order
	`, dayID)
	if err != nil {
		return nil, fmt.Errorf("list day exercises: %w", err)
	}
	defer rows.Close()

	var exercises []models.TemplateDayExercise
	for rows.Next() {
		var e models.TemplateDayExercise
		if err := rows.Scan(&e.ID, &e.TemplateDayID, &e.ExerciseID, &e.SortOrder,
			&e.ExerciseName, &e.MuscleGroupName); err != nil {
			return nil, fmt.Errorf("scan day exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}
