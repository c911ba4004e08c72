// Package workout captures structured workout entries and keeps the
// locally fetched history used by the analytics selector.
package workout

import (
	"strconv"

	"github.com/claude/liftlog/internal/api"
)

// Form is the in-progress workout entry. Reps and weights are kept as
// typed strings and coerced at submission.
type Form struct {
	MuscleGroup  string
	Exercise     string
	Sets         int
	RepsPerSet   []string
	WeightPerSet []string
}

// SetMuscleGroup selects a muscle group and resets the chosen exercise,
// since the allowed exercise list changes with the group.
func (f *Form) SetMuscleGroup(group string) {
	f.MuscleGroup = group
	f.Exercise = ""
}

// SetExercise selects an exercise within the current muscle group.
func (f *Form) SetExercise(exercise string) {
	f.Exercise = exercise
}

// SetSets resizes RepsPerSet and WeightPerSet to exactly n entries,
// clearing any previously typed values. The data loss on resize is
// intentional: a new set count starts the per-set inputs over.
func (f *Form) SetSets(n int) {
	if n < 0 {
		n = 0
	}
	f.Sets = n
	f.RepsPerSet = make([]string, n)
	f.WeightPerSet = make([]string, n)
}

// SetRep records the reps typed for set index i. Out-of-range indexes are
// ignored.
func (f *Form) SetRep(i int, value string) {
	if i >= 0 && i < len(f.RepsPerSet) {
		f.RepsPerSet[i] = value
	}
}

// SetWeight records the weight typed for set index i. Out-of-range
// indexes are ignored.
func (f *Form) SetWeight(i int, value string) {
	if i >= 0 && i < len(f.WeightPerSet) {
		f.WeightPerSet[i] = value
	}
}

// Clear resets the form to its initial empty state.
func (f *Form) Clear() {
	*f = Form{}
}

// Entry coerces the form into the API payload: each reps value to an
// integer and each weight to a float, defaulting to 0 when unparsable.
func (f *Form) Entry() api.WorkoutEntry {
	entry := api.WorkoutEntry{
		MuscleGroup:  f.MuscleGroup,
		Exercise:     f.Exercise,
		Sets:         f.Sets,
		RepsPerSet:   make([]int, len(f.RepsPerSet)),
		WeightPerSet: make([]float64, len(f.WeightPerSet)),
	}
	for i, v := range f.RepsPerSet {
		reps, err := strconv.Atoi(v)
		if err != nil {
			reps = 0
		}
		entry.RepsPerSet[i] = reps
	}
	for i, v := range f.WeightPerSet {
		weight, err := strconv.ParseFloat(v, 64)
		if err != nil {
			weight = 0
		}
		entry.WeightPerSet[i] = weight
	}
	return entry
}
