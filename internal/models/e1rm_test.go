// ABOUTME: Tests for the Epley e1RM and tonnage formulas.
// ABOUTME: Verifies the single-rep and zero-rep special cases.
package models

import (
	"math"
	"testing"
)

func TestEpley1RMSingleRep(t *testing.T) {
	// A 1-rep set is a measured max, not an estimate.
	if got := Epley1RM(100, 1); got != 100 {
		t.Errorf("Epley1RM(100, 1) = %v, want 100", got)
	}
}

func TestEpley1RMMultiRep(t *testing.T) {
	got := Epley1RM(100, 10)
	want := 100 * (1 + 10.0/30.0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Epley1RM(100, 10) = %v, want %v", got, want)
	}

	got = Epley1RM(102.5, 3)
	want = 102.5 * (1 + 3.0/30.0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Epley1RM(102.5, 3) = %v, want %v", got, want)
	}
}

func TestEpley1RMNonPositiveReps(t *testing.T) {
	if got := Epley1RM(100, 0); got != 0 {
		t.Errorf("Epley1RM(100, 0) = %v, want 0", got)
	}
	if got := Epley1RM(100, -3); got != 0 {
		t.Errorf("Epley1RM(100, -3) = %v, want 0", got)
	}
}

func TestTonnage(t *testing.T) {
	if got := Tonnage(80, 5); got != 400 {
		t.Errorf("Tonnage(80, 5) = %v, want 400", got)
	}
	if got := Tonnage(80, 0); got != 0 {
		t.Errorf("Tonnage(80, 0) = %v, want 0", got)
	}
}
