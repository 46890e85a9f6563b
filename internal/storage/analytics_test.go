// ABOUTME: Tests for progress, personal record, and weekly summary queries.
// ABOUTME: Verifies warmup and unfinished-session exclusions and e1RM math.
package storage

import (
	"math"
	"testing"
	"time"
)

func isoDaysAgo(days int, hour int) string {
	t := time.Now().UTC().AddDate(0, 0, -days)
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, time.UTC).Format(time.RFC3339)
}

func TestGetPersonalRecordsBestPerExercise(t *testing.T) {
	s := setupTestStore(t)

	benchID := firstExerciseID(t, s, "Barbell Bench Press")

	// 100x5 has e1RM 116.7; the later 120x1 single beats it.
	w1 := finishedWorkoutWithSets(t, s, benchID, [][2]float64{{100, 5}})
	backdateWorkout(t, s, w1, isoDaysAgo(14, 10), isoDaysAgo(14, 11))
	w2 := finishedWorkoutWithSets(t, s, benchID, [][2]float64{{120, 1}})
	backdateWorkout(t, s, w2, isoDaysAgo(7, 10), isoDaysAgo(7, 11))

	records, err := s.GetPersonalRecords(0)
	if err != nil {
		t.Fatalf("GetPersonalRecords failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	r := records[0]
	if r.ExerciseID != benchID {
		t.Errorf("ExerciseID = %d, want %d", r.ExerciseID, benchID)
	}
	if r.WeightKg != 120 || r.Reps != 1 {
		t.Errorf("record = %.0f x %d, want 120 x 1", r.WeightKg, r.Reps)
	}
	// A single counts at face value.
	if r.E1RM != 120 {
		t.Errorf("E1RM = %v, want 120", r.E1RM)
	}
}

func TestGetPersonalRecordsExcludesWarmupsAndUnfinished(t *testing.T) {
	s := setupTestStore(t)

	benchID := firstExerciseID(t, s, "Barbell Bench Press")

	// A heavy warmup in a finished workout and an even heavier set in an
	// unfinished one; neither may count.
	workoutID, err := s.StartWorkout()
	if err != nil {
		t.Fatalf("StartWorkout failed: %v", err)
	}
	weID, err := s.AddExerciseToWorkout(workoutID, benchID)
	if err != nil {
		t.Fatalf("AddExerciseToWorkout failed: %v", err)
	}
	if _, err := s.AddSet(weID, 200, 5, true, nil); err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}
	if _, err := s.AddSet(weID, 100, 5, false, nil); err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}
	if err := s.FinishWorkout(workoutID, nil); err != nil {
		t.Fatalf("FinishWorkout failed: %v", err)
	}

	unfinishedID, err := s.StartWorkout()
	if err != nil {
		t.Fatalf("StartWorkout failed: %v", err)
	}
	weID2, err := s.AddExerciseToWorkout(unfinishedID, benchID)
	if err != nil {
		t.Fatalf("AddExerciseToWorkout failed: %v", err)
	}
	if _, err := s.AddSet(weID2, 300, 5, false, nil); err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}

	record, err := s.GetExercisePR(benchID)
	if err != nil {
		t.Fatalf("GetExercisePR failed: %v", err)
	}
	if record == nil {
		t.Fatal("expected a record")
	}
	if record.WeightKg != 100 {
		t.Errorf("record weight = %.0f, want 100", record.WeightKg)
	}
	wantE1RM := 100 * (1 + 5.0/30)
	if math.Abs(record.E1RM-wantE1RM) > 1e-9 {
		t.Errorf("E1RM = %v, want %v", record.E1RM, wantE1RM)
	}
}

func TestGetExercisePRMissing(t *testing.T) {
	s := setupTestStore(t)

	benchID := firstExerciseID(t, s, "Barbell Bench Press")
	record, err := s.GetExercisePR(benchID)
	if err != nil {
		t.Fatalf("GetExercisePR failed: %v", err)
	}
	if record != nil {
		t.Errorf("expected nil record, got %+v", record)
	}
}

func TestGetExerciseProgressPerDate(t *testing.T) {
	s := setupTestStore(t)

	benchID := firstExerciseID(t, s, "Barbell Bench Press")

	w1 := finishedWorkoutWithSets(t, s, benchID, [][2]float64{{100, 5}, {100, 5}})
	backdateWorkout(t, s, w1, isoDaysAgo(14, 10), isoDaysAgo(14, 11))
	w2 := finishedWorkoutWithSets(t, s, benchID, [][2]float64{{105, 3}})
	backdateWorkout(t, s, w2, isoDaysAgo(7, 10), isoDaysAgo(7, 11))

	progress, err := s.GetExerciseProgress(benchID)
	if err != nil {
		t.Fatalf("GetExerciseProgress failed: %v", err)
	}
	if len(progress) != 2 {
		t.Fatalf("got %d progress rows, want 2", len(progress))
	}

	// Ascending by date: the older session first.
	first, second := progress[0], progress[1]
	if first.BestWeight != 100 || first.TotalSets != 2 || first.TotalVolume != 1000 {
		t.Errorf("first row = %.0f kg / %d sets / %.0f vol, want 100 / 2 / 1000", first.BestWeight, first.TotalSets, first.TotalVolume)
	}
	if second.BestWeight != 105 || second.TotalSets != 1 || second.TotalVolume != 315 {
		t.Errorf("second row = %.0f kg / %d sets / %.0f vol, want 105 / 1 / 315", second.BestWeight, second.TotalSets, second.TotalVolume)
	}
	if first.Date >= second.Date {
		t.Errorf("dates not ascending: %s then %s", first.Date, second.Date)
	}
}

func TestGetExerciseProgressSkipsZeroRepSets(t *testing.T) {
	s := setupTestStore(t)

	benchID := firstExerciseID(t, s, "Barbell Bench Press")

	workoutID, err := s.StartWorkout()
	if err != nil {
		t.Fatalf("StartWorkout failed: %v", err)
	}
	weID, err := s.AddExerciseToWorkout(workoutID, benchID)
	if err != nil {
		t.Fatalf("AddExerciseToWorkout failed: %v", err)
	}
	// The empty placeholder set a template day creates must not count.
	if _, err := s.AddSet(weID, 0, 0, false, nil); err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}
	if _, err := s.AddSet(weID, 100, 5, false, nil); err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}
	if err := s.FinishWorkout(workoutID, nil); err != nil {
		t.Fatalf("FinishWorkout failed: %v", err)
	}

	progress, err := s.GetExerciseProgress(benchID)
	if err != nil {
		t.Fatalf("GetExerciseProgress failed: %v", err)
	}
	if len(progress) != 1 {
		t.Fatalf("got %d progress rows, want 1", len(progress))
	}
	if progress[0].TotalSets != 1 || progress[0].TotalVolume != 500 {
		t.Errorf("row = %d sets / %.0f vol, want 1 / 500", progress[0].TotalSets, progress[0].TotalVolume)
	}
}

func TestGetWeeklySummaries(t *testing.T) {
	s := setupTestStore(t)

	benchID := firstExerciseID(t, s, "Barbell Bench Press")

	// One warmup and one work set: both count toward sets, only the work
	// set toward volume.
	workoutID, err := s.StartWorkout()
	if err != nil {
		t.Fatalf("StartWorkout failed: %v", err)
	}
	weID, err := s.AddExerciseToWorkout(workoutID, benchID)
	if err != nil {
		t.Fatalf("AddExerciseToWorkout failed: %v", err)
	}
	if _, err := s.AddSet(weID, 60, 8, true, nil); err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}
	if _, err := s.AddSet(weID, 100, 5, false, nil); err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}
	if err := s.FinishWorkout(workoutID, nil); err != nil {
		t.Fatalf("FinishWorkout failed: %v", err)
	}

	summaries, err := s.GetWeeklySummaries(12)
	if err != nil {
		t.Fatalf("GetWeeklySummaries failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}

	sum := summaries[0]
	if sum.WorkoutCount != 1 {
		t.Errorf("WorkoutCount = %d, want 1", sum.WorkoutCount)
	}
	if sum.TotalSets != 2 {
		t.Errorf("TotalSets = %d, want 2", sum.TotalSets)
	}
	if sum.TotalVolume != 500 {
		t.Errorf("TotalVolume = %v, want 500", sum.TotalVolume)
	}

	// Week starts are Mondays.
	weekStart, err := time.Parse("2006-01-02", sum.WeekStart)
	if err != nil {
		t.Fatalf("bad week start %q: %v", sum.WeekStart, err)
	}
	if weekStart.Weekday() != time.Monday {
		t.Errorf("week start %s is a %s, want Monday", sum.WeekStart, weekStart.Weekday())
	}
}

func TestGetWeeklySummariesExcludesUnfinished(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.StartWorkout(); err != nil {
		t.Fatalf("StartWorkout failed: %v", err)
	}

	summaries, err := s.GetWeeklySummaries(12)
	if err != nil {
		t.Fatalf("GetWeeklySummaries failed: %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("got %d summaries, want 0", len(summaries))
	}
}
