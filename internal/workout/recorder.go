package workout

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/claude/liftlog/internal/api"
)

// Recorder submits workout entries and keeps the fetched history.
type Recorder struct {
	client *api.Client
	log    *slog.Logger

	mu   sync.RWMutex
	past []api.WorkoutRecord
}

// NewRecorder creates a Recorder backed by the given API client.
func NewRecorder(client *api.Client, log *slog.Logger) *Recorder {
	return &Recorder{client: client, log: log}
}

// Submit coerces and sends the form, clears it, and refreshes the past
// workout list. The form is cleared whether or not the create succeeds;
// a failed create is logged and reported, but the typed values are gone.
func (r *Recorder) Submit(ctx context.Context, f *Form) error {
	entry := f.Entry()
	err := r.client.CreateWorkout(ctx, entry)
	f.Clear()
	if err != nil {
		r.log.Error("workout create failed", "exercise", entry.Exercise, "error", err)
		return err
	}

	if err := r.Refresh(ctx); err != nil {
		r.log.Warn("workout refresh failed after create", "error", err)
	}
	return nil
}

// Refresh re-fetches the workout history from the server.
func (r *Recorder) Refresh(ctx context.Context) error {
	records, err := r.client.ListWorkouts(ctx)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.past = records
	r.mu.Unlock()
	return nil
}

// Past returns the most recently fetched workout history.
func (r *Recorder) Past() []api.WorkoutRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]api.WorkoutRecord, len(r.past))
	copy(out, r.past)
	return out
}

// DistinctExercises returns the distinct exercise names from the fetched
// history, sorted ascending. Populates the analytics exercise selector.
func (r *Recorder) DistinctExercises() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool, len(r.past))
	var names []string
	for _, rec := range r.past {
		if rec.Exercise == "" || seen[rec.Exercise] {
			continue
		}
		seen[rec.Exercise] = true
		names = append(names, rec.Exercise)
	}
	sort.Strings(names)
	return names
}
