package mcp

import (
	"context"

	"github.com/claude/liftlog/internal/api"
)

// DataSource abstracts the remote API for MCP tools so handlers can be
// tested against a fake without a live server.
type DataSource interface {
	GetUser(ctx context.Context, id string) (*api.User, error)
	ListWorkouts(ctx context.Context) ([]api.WorkoutRecord, error)
	GetAnalytics(ctx context.Context, exercise string) ([]api.WorkoutRecord, error)
}

// Compile-time check: *api.Client satisfies DataSource.
var _ DataSource = (*api.Client)(nil)
