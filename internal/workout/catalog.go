package workout

import "sort"

// catalog is the fixed muscle-group → exercise lookup. A static
// enumeration, not server data.
var catalog = map[string][]string{
	"Chest":     {"Bench Press", "Push-ups", "Chest Flyes"},
	"Back":      {"Pull-ups", "Rows", "Deadlifts"},
	"Legs":      {"Squats", "Lunges", "Leg Press"},
	"Shoulders": {"Shoulder Press", "Lateral Raises", "Front Raises"},
	"Arms":      {"Bicep Curls", "Tricep Extensions", "Hammer Curls"},
	"Core":      {"Planks", "Crunches", "Russian Twists"},
}

// MuscleGroups returns the available muscle groups, sorted.
func MuscleGroups() []string {
	groups := make([]string, 0, len(catalog))
	for g := range catalog {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// Exercises returns the allowed exercises for a muscle group, in catalog
// order. Unknown groups yield nil.
func Exercises(group string) []string {
	exercises, ok := catalog[group]
	if !ok {
		return nil
	}
	out := make([]string, len(exercises))
	copy(out, exercises)
	return out
}
