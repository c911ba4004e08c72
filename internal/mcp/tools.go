package mcp

import (
	"context"
	"strings"

	"github.com/claude/liftlog/internal/analytics"
	"github.com/claude/liftlog/internal/api"
	"github.com/claude/liftlog/internal/workout"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetProfile = mcp.NewTool("get_profile",
	mcp.WithDescription("Retrieve the authenticated user's profile: username, email, height, weight, gender, and age."),
)

var toolGetWorkouts = mcp.NewTool("get_workouts",
	mcp.WithDescription("Query recorded workouts. Each record has a date, muscle group, exercise, set count, and per-set reps and weight."),
	mcp.WithString("exercise", mcp.Description("Filter by exercise name (partial match, e.g. 'bench')")),
	mcp.WithNumber("limit", mcp.Description("Maximum number of records to return. Defaults to all.")),
)

var toolGetExerciseProgress = mcp.NewTool("get_exercise_progress",
	mcp.WithDescription("Per-session progress for one exercise: total sets, average reps per set, and average weight per set for each recorded date."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exact exercise name (e.g. 'Bench Press')")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List all muscle groups with the exercises available under each."),
)

// --- Tool handlers ---

func (h *handlers) getProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)
	if uid == "" {
		return mcp.NewToolResultError("no authenticated user"), nil
	}

	user, err := h.ds.GetUser(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_profile", "error", err)
		return mcp.NewToolResultError("profile fetch failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(user)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result, nil
}

func (h *handlers) getWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records, err := h.ds.ListWorkouts(ctx)
	if err != nil {
		h.log.Error("mcp get_workouts", "error", err)
		return mcp.NewToolResultError("workout fetch failed: " + err.Error()), nil
	}

	if filter := req.GetString("exercise", ""); filter != "" {
		records = filterByExercise(records, filter)
	}
	if limit := req.GetInt("limit", 0); limit > 0 && limit < len(records) {
		records = records[len(records)-limit:]
	}

	result, err := mcp.NewToolResultJSON(records)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result, nil
}

func (h *handlers) getExerciseProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}

	records, err := h.ds.GetAnalytics(ctx, exercise)
	if err != nil {
		h.log.Error("mcp get_exercise_progress", "exercise", exercise, "error", err)
		return mcp.NewToolResultError("analytics fetch failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(analytics.Points(records))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result, nil
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	catalog := make(map[string][]string)
	for _, group := range workout.MuscleGroups() {
		catalog[group] = workout.Exercises(group)
	}

	result, err := mcp.NewToolResultJSON(catalog)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result, nil
}

func filterByExercise(records []api.WorkoutRecord, filter string) []api.WorkoutRecord {
	filter = strings.ToLower(filter)
	var out []api.WorkoutRecord
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Exercise), filter) {
			out = append(out, rec)
		}
	}
	return out
}
