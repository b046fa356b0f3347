package genetic

import (
	"fmt"
	"math"

	"github.com/jnederlo/linecruncher/internal/roster"
)

// Default contest constraints for DraftKings NHL classic contests.
const (
	DefaultSalaryCap = 50000
	DefaultMinTeams  = 3
)

// RejectionError reports why a candidate lineup failed validation. It is
// consumed inside the generator and crossover retry loops and never surfaces
// to callers of the engine.
type RejectionError struct {
	TotalSalary   int
	DistinctTeams int
	DistinctNames int
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("lineup rejected: salary=%d teams=%d unique_players=%d",
		e.TotalSalary, e.DistinctTeams, e.DistinctNames)
}

// Validator scores and accepts candidate lineups. The zero value is not
// usable; construct with NewValidator.
type Validator struct {
	salaryCap int
	minTeams  int
}

// NewValidator returns a validator for the given contest constraints.
// Non-positive arguments fall back to the DraftKings NHL defaults.
func NewValidator(salaryCap, minTeams int) Validator {
	if salaryCap <= 0 {
		salaryCap = DefaultSalaryCap
	}
	if minTeams <= 0 {
		minTeams = DefaultMinTeams
	}
	return Validator{salaryCap: salaryCap, minTeams: minTeams}
}

// Validate computes the candidate's total salary, projection (rounded to two
// decimal places), team spread, and player uniqueness, and accepts iff the
// salary is strictly under the cap, at least minTeams teams are represented,
// and all 9 players are distinct. The strict inequality on salary and the
// exact distinct-player count mirror the contest rules: a player drawn into
// both a positional slot and the utility slot makes the candidate invalid.
func (v Validator) Validate(players [NumSlots]*roster.Player) (Lineup, error) {
	salary := 0
	projection := 0.0
	teams := make(map[string]struct{}, NumSlots)
	names := make(map[string]struct{}, NumSlots)

	for _, p := range players {
		salary += p.Salary
		projection += p.AvgPoints
		teams[p.Team] = struct{}{}
		names[p.Name] = struct{}{}
	}
	projection = math.Round(projection*100) / 100

	if salary < v.salaryCap && len(teams) >= v.minTeams && len(names) == NumSlots {
		return Lineup{
			Players:     players,
			TotalSalary: salary,
			Projection:  projection,
		}, nil
	}

	return Lineup{}, &RejectionError{
		TotalSalary:   salary,
		DistinctTeams: len(teams),
		DistinctNames: len(names),
	}
}
