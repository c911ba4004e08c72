package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/liftlog/internal/workout"
	"github.com/mark3labs/mcp-go/mcp"
)

// recentWorkoutLimit caps the recent_workouts resource payload.
const recentWorkoutLimit = 20

func (h *handlers) recentWorkouts(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	records, err := h.ds.ListWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) > recentWorkoutLimit {
		records = records[len(records)-recentWorkoutLimit:]
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) exerciseCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	catalog := make(map[string][]string)
	for _, group := range workout.MuscleGroups() {
		catalog[group] = workout.Exercises(group)
	}

	data, err := json.Marshal(catalog)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
