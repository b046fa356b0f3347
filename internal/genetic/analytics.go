package genetic

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates projection and salary statistics over a final
// population. Used for end-of-run logging and API metadata.
type Summary struct {
	Lineups          int     `json:"lineups"`
	Rounds           int     `json:"rounds"`
	BestProjection   float64 `json:"best_projection"`
	MeanProjection   float64 `json:"mean_projection"`
	StdDevProjection float64 `json:"stddev_projection"`
	MeanSalary       float64 `json:"mean_salary"`
}

// Summarize computes population statistics for a set of validated lineups.
func Summarize(lineups []Lineup, rounds int) Summary {
	summary := Summary{Lineups: len(lineups), Rounds: rounds}
	if len(lineups) == 0 {
		return summary
	}

	projections := make([]float64, len(lineups))
	salaries := make([]float64, len(lineups))
	for i, l := range lineups {
		projections[i] = l.Projection
		salaries[i] = float64(l.TotalSalary)
	}

	summary.BestProjection = floats.Max(projections)
	summary.MeanProjection = stat.Mean(projections, nil)
	summary.MeanSalary = stat.Mean(salaries, nil)
	if len(lineups) > 1 {
		summary.StdDevProjection = stat.StdDev(projections, nil)
	}
	return summary
}
