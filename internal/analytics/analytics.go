// Package analytics shapes workout records into chart-ready datasets.
package analytics

import "github.com/claude/liftlog/internal/api"

// Point is the per-date aggregate derived from one workout record.
type Point struct {
	Date          string  `json:"date"`
	Sets          int     `json:"sets"`
	AverageReps   float64 `json:"averageReps"`
	AverageWeight float64 `json:"averageWeight"`
}

// Dataset is a chart-ready view of an exercise's history: one date axis
// and three aligned value series.
type Dataset struct {
	Labels        []string
	Sets          []int
	AverageReps   []float64
	AverageWeight []float64
}

// Empty reports whether the dataset has no points.
func (d Dataset) Empty() bool { return len(d.Labels) == 0 }

// Transform converts the server's records for one exercise into a
// Dataset. Pure and deterministic. A record with zero sets contributes
// zero averages rather than a division by zero.
func Transform(records []api.WorkoutRecord) Dataset {
	d := Dataset{
		Labels:        make([]string, 0, len(records)),
		Sets:          make([]int, 0, len(records)),
		AverageReps:   make([]float64, 0, len(records)),
		AverageWeight: make([]float64, 0, len(records)),
	}
	for _, rec := range records {
		p := pointFrom(rec)
		d.Labels = append(d.Labels, p.Date)
		d.Sets = append(d.Sets, p.Sets)
		d.AverageReps = append(d.AverageReps, p.AverageReps)
		d.AverageWeight = append(d.AverageWeight, p.AverageWeight)
	}
	return d
}

// Points returns the per-record aggregates without the series layout.
func Points(records []api.WorkoutRecord) []Point {
	points := make([]Point, len(records))
	for i, rec := range records {
		points[i] = pointFrom(rec)
	}
	return points
}

func pointFrom(rec api.WorkoutRecord) Point {
	p := Point{Date: rec.Date, Sets: rec.Sets}
	if rec.Sets <= 0 {
		return p
	}

	var totalReps int
	for _, reps := range rec.RepsPerSet {
		totalReps += reps
	}
	var totalWeight float64
	for _, weight := range rec.WeightPerSet {
		totalWeight += weight
	}

	p.AverageReps = float64(totalReps) / float64(rec.Sets)
	p.AverageWeight = totalWeight / float64(rec.Sets)
	return p
}
