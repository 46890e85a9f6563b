// ABOUTME: Tests for CLI helpers and argument parsing.
// ABOUTME: Covers truncate, padRight, parseSetArgs, and command wiring.
package main

import (
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is a longer string", 10, "this is..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input  string
		length int
		want   string
	}{
		{"ab", 5, "ab   "},
		{"abcde", 5, "abcde"},
		{"abcdef", 5, "abcdef"},
	}
	for _, tt := range tests {
		if got := padRight(tt.input, tt.length); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
		}
	}
}

func TestParseSetArgs(t *testing.T) {
	id, weight, reps, err := parseSetArgs([]string{"3", "102.5", "5"})
	if err != nil {
		t.Fatalf("parseSetArgs failed: %v", err)
	}
	if id != 3 || weight != 102.5 || reps != 5 {
		t.Errorf("got %d/%.1f/%d, want 3/102.5/5", id, weight, reps)
	}

	for _, args := range [][]string{
		{"x", "100", "5"},
		{"1", "heavy", "5"},
		{"1", "100", "five"},
	} {
		if _, _, _, err := parseSetArgs(args); err == nil {
			t.Errorf("parseSetArgs(%v) should fail", args)
		}
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"workout", "set", "exercise", "template", "stats", "db", "mcp"}
	for _, name := range want {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}
