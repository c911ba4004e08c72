package workout

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/claude/liftlog/internal/api"
)

type staticToken string

func (s staticToken) Token() (string, error) { return string(s), nil }

func discardLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestExercisesLegs verifies the Legs group populates exactly its three
// catalog exercises.
func TestExercisesLegs(t *testing.T) {
	want := []string{"Squats", "Lunges", "Leg Press"}
	if got := Exercises("Legs"); !reflect.DeepEqual(got, want) {
		t.Errorf("Exercises(Legs) = %v, want %v", got, want)
	}
}

// TestExercisesUnknownGroup verifies an unknown group yields no exercises.
func TestExercisesUnknownGroup(t *testing.T) {
	if got := Exercises("Neck"); got != nil {
		t.Errorf("Exercises(Neck) = %v, want nil", got)
	}
}

// TestMuscleGroups verifies all six groups are present.
func TestMuscleGroups(t *testing.T) {
	want := []string{"Arms", "Back", "Chest", "Core", "Legs", "Shoulders"}
	if got := MuscleGroups(); !reflect.DeepEqual(got, want) {
		t.Errorf("MuscleGroups() = %v, want %v", got, want)
	}
}

// TestSetMuscleGroupResetsExercise verifies changing the group clears a
// previously chosen exercise.
func TestSetMuscleGroupResetsExercise(t *testing.T) {
	var f Form
	f.SetMuscleGroup("Chest")
	f.SetExercise("Bench Press")
	f.SetMuscleGroup("Legs")

	if f.Exercise != "" {
		t.Errorf("exercise = %q, want empty after group change", f.Exercise)
	}
	if f.MuscleGroup != "Legs" {
		t.Errorf("muscleGroup = %q, want Legs", f.MuscleGroup)
	}
}

// TestSetSetsResizesAndClears verifies both per-set slices resize to
// exactly n entries with prior values cleared. The clearing is intended
// behavior: a new set count restarts the per-set inputs.
func TestSetSetsResizesAndClears(t *testing.T) {
	var f Form
	f.SetSets(2)
	f.SetRep(0, "10")
	f.SetWeight(0, "50")
	f.SetRep(1, "8")
	f.SetWeight(1, "55")

	f.SetSets(3)

	if len(f.RepsPerSet) != 3 || len(f.WeightPerSet) != 3 {
		t.Fatalf("lengths = %d/%d, want 3/3", len(f.RepsPerSet), len(f.WeightPerSet))
	}
	for i := range 3 {
		if f.RepsPerSet[i] != "" || f.WeightPerSet[i] != "" {
			t.Errorf("set %d not cleared: reps=%q weight=%q", i, f.RepsPerSet[i], f.WeightPerSet[i])
		}
	}

	f.SetSets(0)
	if len(f.RepsPerSet) != 0 || len(f.WeightPerSet) != 0 {
		t.Errorf("lengths = %d/%d, want 0/0", len(f.RepsPerSet), len(f.WeightPerSet))
	}

	f.SetSets(-1)
	if f.Sets != 0 {
		t.Errorf("sets = %d, want 0 for negative input", f.Sets)
	}
}

// TestEntryCoercion verifies reps coerce to integers and weights to
// floats, with unparsable values defaulting to 0.
func TestEntryCoercion(t *testing.T) {
	var f Form
	f.SetMuscleGroup("Legs")
	f.SetExercise("Squats")
	f.SetSets(3)
	f.SetRep(0, "10")
	f.SetRep(1, "junk")
	// index 2 left empty
	f.SetWeight(0, "52.5")
	f.SetWeight(1, "")
	f.SetWeight(2, "60")

	entry := f.Entry()
	if !reflect.DeepEqual(entry.RepsPerSet, []int{10, 0, 0}) {
		t.Errorf("repsPerSet = %v, want [10 0 0]", entry.RepsPerSet)
	}
	if !reflect.DeepEqual(entry.WeightPerSet, []float64{52.5, 0, 60}) {
		t.Errorf("weightPerSet = %v, want [52.5 0 60]", entry.WeightPerSet)
	}
	if entry.Sets != 3 {
		t.Errorf("sets = %d, want 3", entry.Sets)
	}
	if len(entry.RepsPerSet) != entry.Sets || len(entry.WeightPerSet) != entry.Sets {
		t.Error("per-set slice lengths must equal sets at submission")
	}
}

// TestSubmitClearsFormAndRefreshes verifies a successful submit sends the
// entry, clears the form, and pulls the updated history.
func TestSubmitClearsFormAndRefreshes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/workouts":
			var entry api.WorkoutEntry
			if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
				t.Fatal(err)
			}
			if entry.Exercise != "Squats" {
				t.Errorf("exercise = %q, want Squats", entry.Exercise)
			}
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodGet && r.URL.Path == "/api/workouts":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode([]api.WorkoutRecord{
				{Date: "2024-01-01", WorkoutEntry: api.WorkoutEntry{Exercise: "Squats", Sets: 1}},
			})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	rec := NewRecorder(api.NewClient(ts.URL, staticToken("tok"), 0), discardLog())

	var f Form
	f.SetMuscleGroup("Legs")
	f.SetExercise("Squats")
	f.SetSets(1)
	f.SetRep(0, "10")
	f.SetWeight(0, "50")

	if err := rec.Submit(context.Background(), &f); err != nil {
		t.Fatal(err)
	}
	if f.Exercise != "" || f.Sets != 0 || len(f.RepsPerSet) != 0 {
		t.Errorf("form not cleared: %+v", f)
	}
	if got := len(rec.Past()); got != 1 {
		t.Errorf("past workouts = %d, want 1", got)
	}
}

// TestSubmitFailureStillClearsForm verifies the form is cleared even when
// the create fails.
func TestSubmitFailureStillClearsForm(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	rec := NewRecorder(api.NewClient(ts.URL, staticToken("tok"), 0), discardLog())

	var f Form
	f.SetMuscleGroup("Legs")
	f.SetExercise("Squats")
	f.SetSets(1)
	f.SetRep(0, "10")

	if err := rec.Submit(context.Background(), &f); err == nil {
		t.Fatal("expected error from failed create")
	}
	if f.Exercise != "" || len(f.RepsPerSet) != 0 {
		t.Errorf("form should be cleared even on failure: %+v", f)
	}
}

// TestDistinctExercises verifies distinct names come back sorted
// ascending.
func TestDistinctExercises(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]api.WorkoutRecord{
			{WorkoutEntry: api.WorkoutEntry{Exercise: "Squats"}},
			{WorkoutEntry: api.WorkoutEntry{Exercise: "Bench Press"}},
			{WorkoutEntry: api.WorkoutEntry{Exercise: "Squats"}},
			{WorkoutEntry: api.WorkoutEntry{Exercise: "Lunges"}},
		})
	}))
	defer ts.Close()

	rec := NewRecorder(api.NewClient(ts.URL, staticToken("tok"), 0), discardLog())
	if err := rec.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	want := []string{"Bench Press", "Lunges", "Squats"}
	if got := rec.DistinctExercises(); !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctExercises() = %v, want %v", got, want)
	}
}
