// ABOUTME: MCP resource implementations for workout data.
// ABOUTME: Provides ironlog://active, ironlog://records, and ironlog://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// ironlog://active - The in-progress workout with exercises and sets
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "ironlog://active",
		Name:        "Active Workout",
		Description: "The in-progress workout with its exercises and sets",
		MIMEType:    "application/json",
	}, s.handleActiveResource)

	// ironlog://records - Best e1RM set per exercise
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "ironlog://records",
		Name:        "Personal Records",
		Description: "Best estimated-1RM set for each exercise",
		MIMEType:    "application/json",
	}, s.handleRecordsResource)

	// ironlog://summary - Recent workouts plus weekly training volume
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "ironlog://summary",
		Name:        "Training Summary",
		Description: "Recent workouts plus weekly volume and set counts",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleActiveResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	active, err := s.store.GetActiveWorkout()
	if err != nil {
		return nil, fmt.Errorf("failed to look up active workout: %w", err)
	}

	var result interface{}
	if active == nil {
		result = map[string]interface{}{"message": "No active workout."}
	} else {
		tree, err := s.workoutTree(active.ID)
		if err != nil {
			return nil, err
		}
		result = map[string]interface{}{
			"workout":   active,
			"exercises": tree,
		}
	}

	return resourceJSON("ironlog://active", result)
}

func (s *Server) handleRecordsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	records, err := s.store.GetPersonalRecords(0)
	if err != nil {
		return nil, fmt.Errorf("failed to get personal records: %w", err)
	}

	return resourceJSON("ironlog://records", map[string]interface{}{
		"records": records,
	})
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts, err := s.store.GetWorkoutSummaries(10)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	weekly, err := s.store.GetWeeklySummaries(12)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly summaries: %w", err)
	}

	return resourceJSON("ironlog://summary", map[string]interface{}{
		"recent_workouts": workouts,
		"weekly":          weekly,
	})
}

func resourceJSON(uri string, result interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
