package genetic

import (
	"fmt"
	"math/rand"

	"github.com/jnederlo/linecruncher/internal/roster"
)

// Crossover mates two validated lineups into a child lineup. For each role
// group the candidate pool is both parents' players in that role's slots plus
// exactly one fresh random player from the same role sequence, which injects
// novelty beyond the two parents. The role's required count is then sampled
// without replacement from that local pool.
type Crossover struct {
	pool        *roster.Pool
	validator   Validator
	rng         *rand.Rand
	maxAttempts int
}

// NewCrossover creates a crossover engine over a read-only pool.
func NewCrossover(pool *roster.Pool, validator Validator, rng *rand.Rand, maxAttempts int) *Crossover {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Crossover{
		pool:        pool,
		validator:   validator,
		rng:         rng,
		maxAttempts: maxAttempts,
	}
}

// Mate samples a child lineup from the parents' per-role pools and validates
// it. On rejection every role pool is rebuilt with fresh randomness, not just
// the failing one. Returns ErrNoFeasibleLineup once the attempt ceiling is
// reached.
func (c *Crossover) Mate(parent1, parent2 Lineup) (Lineup, error) {
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		var players [NumSlots]*roster.Player
		i := 0
		for _, rs := range roleSlots {
			seq := c.pool.Candidates(rs.Slot)
			if len(seq) == 0 {
				return Lineup{}, fmt.Errorf("empty %s pool: %w", rs.Slot, ErrNoFeasibleLineup)
			}

			candidates := make([]*roster.Player, 0, rs.Count*2+1)
			for n := 0; n < rs.Count; n++ {
				candidates = append(candidates,
					parent1.Players[rs.Start+n],
					parent2.Players[rs.Start+n])
			}
			candidates = append(candidates, seq[c.rng.Intn(len(seq))])

			// Sample without replacement so one player object cannot fill two
			// slots of the same role within a single attempt.
			for n := 0; n < rs.Count; n++ {
				j := c.rng.Intn(len(candidates))
				players[i] = candidates[j]
				candidates = append(candidates[:j], candidates[j+1:]...)
				i++
			}
		}

		lineup, err := c.validator.Validate(players)
		if err != nil {
			continue
		}
		return lineup, nil
	}
	return Lineup{}, ErrNoFeasibleLineup
}
