// ABOUTME: Strength formulas: Epley estimated one-rep max and tonnage.
// ABOUTME: The SQL aggregates in internal/storage must match Epley1RM exactly.
package models

// Epley1RM estimates a one-rep max from a set. A single rep is already a
// measured max, so reps == 1 returns the weight unchanged; non-positive
// reps contribute nothing.
func Epley1RM(weightKg float64, reps int) float64 {
	if reps <= 0 {
		return 0
	}
	if reps == 1 {
		return weightKg
	}
	return weightKg * (1 + float64(reps)/30)
}

// Tonnage is the training volume of a set: weight times reps.
func Tonnage(weightKg float64, reps int) float64 {
	return weightKg * float64(reps)
}
