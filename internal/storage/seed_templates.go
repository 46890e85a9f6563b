// ABOUTME: One-time population of preset workout templates.
// ABOUTME: Referenced exercises are looked up by name or created as stock entries.
package storage

import (
	"database/sql"
	"fmt"
)

// scheduleExercise references an exercise by name plus the muscle group it
// belongs to if it has to be created.
type scheduleExercise struct {
	name  string
	group string
}

type scheduleDay struct {
	name      string
	exercises []scheduleExercise
}

type schedule struct {
	name string
	days []scheduleDay
}

var presetSchedules = []schedule{
	{
		name: "Push / Pull / Legs (PPL)",
		days: []scheduleDay{
			{"Push", []scheduleExercise{
				{"Barbell Bench Press", "Chest"},
				{"Overhead Barbell Press (Standing)", "Shoulders"},
				{"Incline Dumbbell Press", "Chest"},
				{"Dumbbell Lateral Raise", "Shoulders"},
				{"Tricep Rope Pushdown", "Arms"},
				{"Overhead Tricep Cable Extension", "Arms"},
			}},
			{"Pull", []scheduleExercise{
				{"Barbell Bent-Over Row", "Back"},
				{"Weighted Pull-Up", "Back"},
				{"Seated Cable Row", "Back"},
				{"Face Pull", "Shoulders"},
				{"Barbell Bicep Curl", "Arms"},
				{"Dumbbell Hammer Curl", "Arms"},
			}},
			{"Legs", []scheduleExercise{
				{"Barbell Back Squat", "Legs"},
				{"Romanian Deadlift", "Legs"},
				{"Leg Press", "Legs"},
				{"Walking Dumbbell Lunge", "Legs"},
				{"Leg Curl Machine", "Legs"},
				{"Standing Calf Raise", "Legs"},
			}},
		},
	},
	{
		name: "Upper / Lower Split",
		days: []scheduleDay{
			{"Upper A", []scheduleExercise{
				{"Barbell Bench Press", "Chest"},
				{"Barbell Bent-Over Row", "Back"},
				{"Overhead Barbell Press (Standing)", "Shoulders"},
				{"Lat Pulldown (Wide Grip)", "Back"},
				{"Dumbbell Lateral Raise", "Shoulders"},
				{"Barbell Bicep Curl", "Arms"},
				{"Tricep Rope Pushdown", "Arms"},
			}},
			{"Lower A", []scheduleExercise{
				{"Barbell Back Squat", "Legs"},
				{"Romanian Deadlift", "Legs"},
				{"Leg Press", "Legs"},
				{"Leg Curl Machine", "Legs"},
				{"Leg Extension Machine", "Legs"},
				{"Standing Calf Raise", "Legs"},
				{"Cable Crunch", "Core"},
			}},
			{"Upper B", []scheduleExercise{
				{"Incline Dumbbell Press", "Chest"},
				{"Weighted Pull-Up", "Back"},
				{"Seated Dumbbell Shoulder Press", "Shoulders"},
				{"Seated Cable Row", "Back"},
				{"Cable Lateral Raise", "Shoulders"},
				{"Dumbbell Hammer Curl", "Arms"},
				{"Overhead Tricep Cable Extension", "Arms"},
			}},
			{"Lower B", []scheduleExercise{
				{"Barbell Front Squat", "Legs"},
				{"Conventional Barbell Deadlift", "Back"},
				{"Bulgarian Split Squat (Dumbbell)", "Legs"},
				{"Glute Ham Raise", "Legs"},
				{"Hip Thrust (Barbell)", "Legs"},
				{"Seated Calf Raise", "Legs"},
				{"Hanging Leg Raise", "Core"},
			}},
		},
	},
	{
		name: "Bro Split",
		days: []scheduleDay{
			{"Chest", []scheduleExercise{
				{"Barbell Bench Press (Flat)", "Chest"},
				{"Incline Dumbbell Press", "Chest"},
				{"Decline Barbell Press", "Chest"},
				{"Cable Chest Fly (Low to High)", "Chest"},
				{"Cable Chest Fly (High to Low)", "Chest"},
				{"Dumbbell Pullover", "Chest"},
			}},
			{"Back", []scheduleExercise{
				{"Conventional Barbell Deadlift", "Back"},
				{"Weighted Pull-Up", "Back"},
				{"Barbell Bent-Over Row", "Back"},
				{"Seated Cable Row", "Back"},
				{"Straight Arm Lat Pulldown", "Back"},
				{"Dumbbell Single Arm Row", "Back"},
			}},
			{"Shoulders", []scheduleExercise{
				{"Overhead Barbell Press (Standing)", "Shoulders"},
				{"Dumbbell Lateral Raise", "Shoulders"},
				{"Seated Dumbbell Shoulder Press", "Shoulders"},
				{"Barbell Upright Row", "Shoulders"},
				{"Face Pull", "Shoulders"},
				{"Reverse Pec Deck Fly", "Shoulders"},
			}},
			{"Arms", []scheduleExercise{
				{"Barbell Bicep Curl", "Arms"},
				{"Close Grip Barbell Bench Press", "Arms"},
				{"Dumbbell Incline Curl", "Arms"},
				{"Skull Crusher (EZ Bar)", "Arms"},
				{"Dumbbell Hammer Curl", "Arms"},
				{"Tricep Rope Pushdown", "Arms"},
				{"Cable Overhead Curl", "Arms"},
				{"Tricep Dip (Weighted)", "Arms"},
			}},
			{"Legs", []scheduleExercise{
				{"Barbell Back Squat", "Legs"},
				{"Romanian Deadlift", "Legs"},
				{"Leg Press", "Legs"},
				{"Walking Dumbbell Lunge", "Legs"},
				{"Leg Curl Machine", "Legs"},
				{"Leg Extension Machine", "Legs"},
				{"Standing Calf Raise", "Legs"},
				{"Seated Calf Raise", "Legs"},
			}},
		},
	},
	{
		name: "Full Body",
		days: []scheduleDay{
			{"Session A", []scheduleExercise{
				{"Barbell Back Squat", "Legs"},
				{"Barbell Bench Press", "Chest"},
				{"Barbell Bent-Over Row", "Back"},
				{"Overhead Barbell Press (Standing)", "Shoulders"},
				{"Romanian Deadlift", "Legs"},
				{"Barbell Bicep Curl", "Arms"},
				{"Tricep Rope Pushdown", "Arms"},
			}},
			{"Session B", []scheduleExercise{
				{"Conventional Barbell Deadlift", "Back"},
				{"Incline Dumbbell Press", "Chest"},
				{"Weighted Pull-Up", "Back"},
				{"Seated Dumbbell Shoulder Press", "Shoulders"},
				{"Bulgarian Split Squat (Dumbbell)", "Legs"},
				{"Dumbbell Hammer Curl", "Arms"},
				{"Overhead Tricep Cable Extension", "Arms"},
			}},
			{"Session C", []scheduleExercise{
				{"Barbell Front Squat", "Legs"},
				{"Dumbbell Flat Bench Press", "Chest"},
				{"Seated Cable Row", "Back"},
				{"Dumbbell Lateral Raise", "Shoulders"},
				{"Hip Thrust (Barbell)", "Legs"},
				{"Cable Bicep Curl", "Arms"},
				{"Tricep Dip (Weighted)", "Arms"},
			}},
		},
	},
	{
		name: "PPLUL Hybrid",
		days: []scheduleDay{
			{"Push", []scheduleExercise{
				{"Barbell Bench Press", "Chest"},
				{"Overhead Barbell Press (Standing)", "Shoulders"},
				{"Incline Dumbbell Press", "Chest"},
				{"Dumbbell Lateral Raise", "Shoulders"},
				{"Tricep Rope Pushdown", "Arms"},
				{"Overhead Tricep Cable Extension", "Arms"},
			}},
			{"Pull", []scheduleExercise{
				{"Barbell Bent-Over Row", "Back"},
				{"Weighted Pull-Up", "Back"},
				{"Seated Cable Row", "Back"},
				{"Face Pull", "Shoulders"},
				{"Barbell Bicep Curl", "Arms"},
				{"Dumbbell Hammer Curl", "Arms"},
			}},
			{"Legs (Heavy)", []scheduleExercise{
				{"Barbell Back Squat", "Legs"},
				{"Romanian Deadlift", "Legs"},
				{"Leg Press", "Legs"},
				{"Leg Curl Machine", "Legs"},
				{"Standing Calf Raise", "Legs"},
			}},
			{"Upper (Hypertrophy)", []scheduleExercise{
				{"Incline Dumbbell Press", "Chest"},
				{"Lat Pulldown (Wide Grip)", "Back"},
				{"Seated Dumbbell Shoulder Press", "Shoulders"},
				{"Dumbbell Single Arm Row", "Back"},
				{"Cable Lateral Raise", "Shoulders"},
				{"Cable Bicep Curl", "Arms"},
				{"Skull Crusher (EZ Bar)", "Arms"},
			}},
			{"Lower (Hypertrophy)", []scheduleExercise{
				{"Barbell Front Squat", "Legs"},
				{"Bulgarian Split Squat (Dumbbell)", "Legs"},
				{"Hip Thrust (Barbell)", "Legs"},
				{"Leg Extension Machine", "Legs"},
				{"Leg Curl Machine", "Legs"},
				{"Seated Calf Raise", "Legs"},
				{"Hanging Leg Raise", "Core"},
			}},
		},
	},
	{
		name: "Anterior / Posterior Split",
		days: []scheduleDay{
			{"Anterior A", []scheduleExercise{
				{"Barbell Back Squat", "Legs"},
				{"Barbell Bench Press (Flat)", "Chest"},
				{"Overhead Barbell Press (Standing)", "Shoulders"},
				{"Leg Extension Machine", "Legs"},
				{"Incline Dumbbell Press", "Chest"},
				{"Dumbbell Lateral Raise", "Shoulders"},
				{"Tricep Rope Pushdown", "Arms"},
				{"Cable Crunch", "Core"},
			}},
			{"Posterior A", []scheduleExercise{
				{"Conventional Barbell Deadlift", "Back"},
				{"Barbell Bent-Over Row", "Back"},
				{"Romanian Deadlift", "Legs"},
				{"Weighted Pull-Up", "Back"},
				{"Leg Curl Machine", "Legs"},
				{"Face Pull", "Shoulders"},
				{"Barbell Bicep Curl", "Arms"},
				{"Reverse Hyperextension", "Back"},
			}},
			{"Anterior B", []scheduleExercise{
				{"Barbell Front Squat", "Legs"},
				{"Incline Barbell Bench Press", "Chest"},
				{"Seated Dumbbell Shoulder Press", "Shoulders"},
				{"Leg Press", "Legs"},
				{"Cable Chest Fly (Low to High)", "Chest"},
				{"Cable Lateral Raise", "Shoulders"},
				{"Overhead Tricep Cable Extension", "Arms"},
				{"Hanging Leg Raise", "Core"},
			}},
			{"Posterior B", []scheduleExercise{
				{"Hip Thrust (Barbell)", "Legs"},
				{"Seated Cable Row", "Back"},
				{"Glute Ham Raise", "Legs"},
				{"Lat Pulldown (Wide Grip)", "Back"},
				{"Dumbbell Single Arm Row", "Back"},
				{"Reverse Pec Deck Fly", "Shoulders"},
				{"Dumbbell Hammer Curl", "Arms"},
				{"Back Extension (Weighted)", "Back"},
			}},
		},
	},
}

// SeedTemplates populates the preset schedules on first run. Safe to call
// repeatedly; it does nothing once any template exists.
func (s *Store) SeedTemplates() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM templates").Scan(&count); err != nil {
		return fmt.Errorf("count templates: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, sched := range presetSchedules {
		res, err := s.db.Exec("INSERT INTO templates (name, is_preset) VALUES (?, 1)", sched.name)
		if err != nil {
			return fmt.Errorf("insert template %q: %w", sched.name, err)
		}
		templateID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert template %q: %w", sched.name, err)
		}

		for d, day := range sched.days {
			dayRes, err := s.db.Exec(
				"INSERT INTO template_days (template_id, name, sort_order) VALUES (?, ?, ?)",
				templateID, day.name, d,
			)
			if err != nil {
				return fmt.Errorf("insert template day %q: %w", day.name, err)
			}
			dayID, err := dayRes.LastInsertId()
			if err != nil {
				return fmt.Errorf("insert template day %q: %w", day.name, err)
			}

			for e, ex := range day.exercises {
				exerciseID, err := s.findOrCreateExercise(ex.name, ex.group)
				if err != nil {
					return err
				}
				if _, err := s.db.Exec(
					"INSERT INTO template_day_exercises (template_day_id, exercise_id, sort_order) VALUES (?, ?, ?)",
					dayID, exerciseID, e,
				); err != nil {
					return fmt.Errorf("insert day exercise %q: %w", ex.name, err)
				}
			}
		}
	}
	return nil
}

// findOrCreateExercise resolves a seed exercise by name, inserting it as a
// stock (non-custom) entry when missing. Unknown muscle group names fall
// back to group id 1.
func (s *Store) findOrCreateExercise(name, muscleGroup string) (int64, error) {
	var id int64
	err := s.db.QueryRow("SELECT id FROM exercises WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("find seed exercise %q: %w", name, err)
	}

	var groupID int64 = 1
	if err := s.db.QueryRow("SELECT id FROM muscle_groups WHERE name = ?", muscleGroup).Scan(&groupID); err != nil {
		groupID = 1
	}

	res, err := s.db.Exec(
		"INSERT INTO exercises (name, muscle_group_id, is_custom) VALUES (?, ?, 0)",
		name, groupID,
	)
	if err != nil {
		return 0, fmt.Errorf("create seed exercise %q: %w", name, err)
	}
	return res.LastInsertId()
}
