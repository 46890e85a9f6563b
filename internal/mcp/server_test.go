// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, the workout tool handlers, and resource reads.
package mcp

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/ironlog/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "ironlog.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	server, err := NewServer(store)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func TestNewServer(t *testing.T) {
	server := setupTestServer(t)

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.store == nil {
		t.Error("Expected non-nil store")
	}
}

func TestHandleStartAndFinishWorkout(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, out, err := server.handleStartWorkout(ctx, nil, startWorkoutInput{})
	if err != nil {
		t.Fatalf("handleStartWorkout failed: %v", err)
	}
	if out.WorkoutID == 0 {
		t.Error("expected a workout id")
	}

	// A second start must be rejected while one is active.
	_, _, err = server.handleStartWorkout(ctx, nil, startWorkoutInput{})
	if err == nil {
		t.Fatal("expected error for second active workout")
	}
	if !strings.Contains(err.Error(), "already active") {
		t.Errorf("error = %v, want already-active message", err)
	}

	_, finOut, err := server.handleFinishWorkout(ctx, nil, finishWorkoutInput{Notes: "done"})
	if err != nil {
		t.Fatalf("handleFinishWorkout failed: %v", err)
	}
	if finOut.Message == "" {
		t.Error("expected a finish message")
	}

	// With nothing active, finishing fails.
	_, _, err = server.handleFinishWorkout(ctx, nil, finishWorkoutInput{})
	if err == nil {
		t.Error("expected error when no workout is active")
	}
}

func TestHandleLogSetFlow(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, _, err := server.handleStartWorkout(ctx, nil, startWorkoutInput{})
	if err != nil {
		t.Fatalf("handleStartWorkout failed: %v", err)
	}

	exercises, err := server.store.GetExercises(nil, "Barbell Bench Press")
	if err != nil || len(exercises) == 0 {
		t.Fatalf("seeded exercise lookup failed: %v", err)
	}

	_, addOut, err := server.handleAddExercise(ctx, nil, addExerciseInput{ExerciseID: exercises[0].ID})
	if err != nil {
		t.Fatalf("handleAddExercise failed: %v", err)
	}

	_, setOut, err := server.handleLogSet(ctx, nil, logSetInput{
		WorkoutExerciseID: addOut.WorkoutExerciseID,
		WeightKg:          100,
		Reps:              5,
	})
	if err != nil {
		t.Fatalf("handleLogSet failed: %v", err)
	}
	if setOut.SetID == 0 {
		t.Error("expected a set id")
	}

	_, _, err = server.handleDeleteSet(ctx, nil, deleteSetInput{SetID: setOut.SetID})
	if err != nil {
		t.Fatalf("handleDeleteSet failed: %v", err)
	}
}

func TestHandleAddExerciseValidation(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	// No active workout yet.
	_, _, err := server.handleAddExercise(ctx, nil, addExerciseInput{ExerciseID: 1})
	if err == nil {
		t.Error("expected error with no active workout")
	}

	_, _, err = server.handleStartWorkout(ctx, nil, startWorkoutInput{})
	if err != nil {
		t.Fatalf("handleStartWorkout failed: %v", err)
	}

	// Unknown exercise id.
	_, _, err = server.handleAddExercise(ctx, nil, addExerciseInput{ExerciseID: 999999})
	if err == nil {
		t.Error("expected error for unknown exercise")
	}
}

func TestHandleListExercises(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, out, err := server.handleListExercises(ctx, nil, listExercisesInput{Search: "squat"})
	if err != nil {
		t.Fatalf("handleListExercises failed: %v", err)
	}
	if out == nil {
		t.Fatal("expected output")
	}
}

func TestResourceHandlers(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	for _, uri := range []string{"ironlog://active", "ironlog://records", "ironlog://summary"} {
		var result *mcp.ReadResourceResult
		var err error
		switch uri {
		case "ironlog://active":
			result, err = server.handleActiveResource(ctx, nil)
		case "ironlog://records":
			result, err = server.handleRecordsResource(ctx, nil)
		case "ironlog://summary":
			result, err = server.handleSummaryResource(ctx, nil)
		}
		if err != nil {
			t.Fatalf("resource %s failed: %v", uri, err)
		}
		if len(result.Contents) != 1 {
			t.Fatalf("resource %s returned %d contents, want 1", uri, len(result.Contents))
		}
		if result.Contents[0].URI != uri {
			t.Errorf("resource URI = %q, want %q", result.Contents[0].URI, uri)
		}
		if result.Contents[0].MIMEType != "application/json" {
			t.Errorf("resource %s MIME = %q", uri, result.Contents[0].MIMEType)
		}
	}
}
