// ABOUTME: One-time population of muscle groups and the exercise library.
// ABOUTME: Idempotent: a non-empty muscle_groups table makes it a no-op.
package storage

import "fmt"

// seedGroup pairs a muscle group with its stock exercises. Order matters:
// groups are inserted in slice order so their ids are stable across fresh
// databases.
type seedGroup struct {
	name      string
	exercises []string
}

var seedLibrary = []seedGroup{
	{"Chest", []string{
		"Barbell Bench Press", "Incline Barbell Bench Press", "Decline Barbell Bench Press",
		"Dumbbell Bench Press", "Incline Dumbbell Bench Press", "Dumbbell Fly",
		"Incline Dumbbell Fly", "Cable Fly", "Machine Chest Press",
		"Pec Deck Machine", "Push-Up", "Dips (Chest)",
	}},
	{"Back", []string{
		"Barbell Row", "Dumbbell Row", "Pendlay Row",
		"Seated Cable Row", "T-Bar Row", "Pull-Up",
		"Chin-Up", "Lat Pulldown", "Straight-Arm Pulldown",
		"Face Pull", "Deadlift", "Rack Pull",
	}},
	{"Legs", []string{
		"Barbell Squat", "Front Squat", "Leg Press",
		"Hack Squat", "Bulgarian Split Squat", "Lunges",
		"Romanian Deadlift", "Leg Curl", "Leg Extension",
		"Calf Raise", "Seated Calf Raise", "Hip Thrust",
		"Goblet Squat", "Sumo Deadlift",
	}},
	{"Shoulders", []string{
		"Overhead Press", "Dumbbell Shoulder Press", "Arnold Press",
		"Lateral Raise", "Front Raise", "Reverse Fly",
		"Cable Lateral Raise", "Upright Row", "Shrugs",
		"Barbell Shrugs", "Machine Shoulder Press",
	}},
	{"Arms", []string{
		"Barbell Curl", "Dumbbell Curl", "Hammer Curl",
		"Preacher Curl", "Concentration Curl", "Cable Curl",
		"Tricep Pushdown", "Overhead Tricep Extension", "Skull Crusher",
		"Close-Grip Bench Press", "Dips (Triceps)", "Kickbacks",
	}},
	{"Core", []string{
		"Plank", "Crunch", "Hanging Leg Raise",
		"Cable Crunch", "Ab Wheel Rollout", "Russian Twist",
		"Woodchop", "Dead Bug", "Side Plank",
		"Decline Sit-Up",
	}},
}

// Seed populates muscle groups and the stock exercise library on first
// run. Safe to call repeatedly; it does nothing once muscle groups exist.
func (s *Store) Seed() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM muscle_groups").Scan(&count); err != nil {
		return fmt.Errorf("count muscle groups: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, group := range seedLibrary {
		res, err := s.db.Exec("INSERT INTO muscle_groups (name) VALUES (?)", group.name)
		if err != nil {
			return fmt.Errorf("insert muscle group %q: %w", group.name, err)
		}
		groupID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert muscle group %q: %w", group.name, err)
		}
		for _, name := range group.exercises {
			if _, err := s.db.Exec(
				"INSERT INTO exercises (name, muscle_group_id, is_custom) VALUES (?, ?, 0)",
				name, groupID,
			); err != nil {
				return fmt.Errorf("insert exercise %q: %w", name, err)
			}
		}
	}
	return nil
}
