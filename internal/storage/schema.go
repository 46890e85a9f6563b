// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Eight tables; workout and template trees cascade on delete.
package storage

// initSchema creates the database schema. Set rows sit two foreign-key
// hops below workouts, so workout deletion still needs the explicit
// multi-hop delete in DeleteWorkout; the declared cascades cover single
// hops only.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS muscle_groups (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS exercises (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		muscle_group_id INTEGER NOT NULL,
		is_custom INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (muscle_group_id) REFERENCES muscle_groups(id)
	);

	CREATE TABLE IF NOT EXISTS workouts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at TEXT NOT NULL,
		finished_at TEXT,
		notes TEXT
	);

	CREATE TABLE IF NOT EXISTS workout_exercises (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		workout_id INTEGER NOT NULL,
		exercise_id INTEGER NOT NULL,
		sort_order INTEGER NOT NULL DEFAULT 0,
		notes TEXT,
		FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE,
		FOREIGN KEY (exercise_id) REFERENCES exercises(id)
	);

	CREATE TABLE IF NOT EXISTS sets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		workout_exercise_id INTEGER NOT NULL,
		set_number INTEGER NOT NULL,
		weight_kg REAL NOT NULL DEFAULT 0,
		reps INTEGER NOT NULL DEFAULT 0,
		is_warmup INTEGER NOT NULL DEFAULT 0,
		rpe REAL,
		FOREIGN KEY (workout_exercise_id) REFERENCES workout_exercises(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS templates (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		is_preset INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS template_days (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		template_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		sort_order INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (template_id) REFERENCES templates(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS template_day_exercises (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		template_day_id INTEGER NOT NULL,
		exercise_id INTEGER NOT NULL,
		sort_order INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (template_day_id) REFERENCES template_days(id) ON DELETE CASCADE,
		FOREIGN KEY (exercise_id) REFERENCES exercises(id)
	);

	CREATE INDEX IF NOT EXISTS idx_exercises_muscle_group ON exercises(muscle_group_id);
	CREATE INDEX IF NOT EXISTS idx_workout_exercises_workout ON workout_exercises(workout_id);
	CREATE INDEX IF NOT EXISTS idx_sets_workout_exercise ON sets(workout_exercise_id);
	CREATE INDEX IF NOT EXISTS idx_workouts_started ON workouts(started_at DESC);
	CREATE INDEX IF NOT EXISTS idx_template_days_template ON template_days(template_id);
	CREATE INDEX IF NOT EXISTS idx_template_day_exercises_day ON template_day_exercises(template_day_id);
	`

	_, err := s.db.Exec(schema)
	return err
}
