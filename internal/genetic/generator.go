package genetic

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jnederlo/linecruncher/internal/roster"
)

// DefaultMaxAttempts bounds the resample-on-rejection loops in the generator
// and the crossover engine. A pool that cannot satisfy the constraints (too
// few teams, too expensive) surfaces ErrNoFeasibleLineup instead of spinning
// forever.
const DefaultMaxAttempts = 10000

// ErrNoFeasibleLineup is returned when the attempt ceiling is reached without
// producing a valid lineup.
var ErrNoFeasibleLineup = errors.New("no feasible lineup found within attempt limit")

// Generator produces random structurally-valid lineups from a player pool.
type Generator struct {
	pool        *roster.Pool
	validator   Validator
	rng         *rand.Rand
	maxAttempts int
}

// NewGenerator creates a generator over a read-only pool.
func NewGenerator(pool *roster.Pool, validator Validator, rng *rand.Rand, maxAttempts int) *Generator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{
		pool:        pool,
		validator:   validator,
		rng:         rng,
		maxAttempts: maxAttempts,
	}
}

// Generate draws one uniformly-random player per slot and validates the
// candidate, redrawing the whole lineup on rejection. Draws are independent,
// so the same player can land in two slots before validation; the validator's
// distinct-player check rejects those candidates.
func (g *Generator) Generate() (Lineup, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		var players [NumSlots]*roster.Player
		i := 0
		for _, rs := range roleSlots {
			seq := g.pool.Candidates(rs.Slot)
			if len(seq) == 0 {
				return Lineup{}, fmt.Errorf("empty %s pool: %w", rs.Slot, ErrNoFeasibleLineup)
			}
			for n := 0; n < rs.Count; n++ {
				players[i] = seq[g.rng.Intn(len(seq))]
				i++
			}
		}

		lineup, err := g.validator.Validate(players)
		if err != nil {
			continue
		}
		return lineup, nil
	}
	return Lineup{}, ErrNoFeasibleLineup
}
