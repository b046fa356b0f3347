package genetic

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnederlo/linecruncher/internal/roster"
)

func TestGenerate_FeasiblePool(t *testing.T) {
	pool := testPool()
	rng := rand.New(rand.NewSource(1))
	gen := NewGenerator(pool, NewValidator(DefaultSalaryCap, DefaultMinTeams), rng, DefaultMaxAttempts)

	for i := 0; i < 50; i++ {
		lineup, err := gen.Generate()
		require.NoError(t, err)

		salaryOK, teamsOK, uniqueOK := lineupInvariantsHold(lineup, DefaultSalaryCap, DefaultMinTeams)
		assert.True(t, salaryOK, "total salary must be strictly under the cap")
		assert.True(t, teamsOK, "lineup must span at least 3 teams")
		assert.True(t, uniqueOK, "lineup must hold 9 distinct players")
	}
}

func TestGenerate_SlotPositionsMatchLayout(t *testing.T) {
	pool := testPool()
	rng := rand.New(rand.NewSource(2))
	gen := NewGenerator(pool, NewValidator(DefaultSalaryCap, DefaultMinTeams), rng, DefaultMaxAttempts)

	lineup, err := gen.Generate()
	require.NoError(t, err)

	assert.Equal(t, roster.PositionCenter, lineup.Players[0].Position)
	assert.Equal(t, roster.PositionCenter, lineup.Players[1].Position)
	for i := 2; i <= 4; i++ {
		assert.Equal(t, roster.PositionWinger, lineup.Players[i].Position)
	}
	assert.Equal(t, roster.PositionDefenseman, lineup.Players[5].Position)
	assert.Equal(t, roster.PositionDefenseman, lineup.Players[6].Position)
	assert.Equal(t, roster.PositionGoalie, lineup.Players[7].Position)
	// Utility is role-agnostic but never a goalie
	assert.NotEqual(t, roster.PositionGoalie, lineup.Players[8].Position)
}

func TestGenerate_SingleTeamPoolNeverSucceeds(t *testing.T) {
	// One candidate per required slot, all on one team: every draw produces
	// 9 distinct cheap players that can never satisfy the 3-team minimum.
	// The attempt ceiling must convert the endless retry into an error.
	pool := roster.NewPool(singleTeamPlayers())
	rng := rand.New(rand.NewSource(3))
	gen := NewGenerator(pool, NewValidator(DefaultSalaryCap, DefaultMinTeams), rng, 200)

	_, err := gen.Generate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoFeasibleLineup))
}

func TestGenerate_EmptyRolePool(t *testing.T) {
	// No goalies at all
	players := testPlayers()
	var skatersOnly []roster.Player
	for _, p := range players {
		if p.Position != roster.PositionGoalie {
			skatersOnly = append(skatersOnly, p)
		}
	}
	pool := roster.NewPool(skatersOnly)

	rng := rand.New(rand.NewSource(4))
	gen := NewGenerator(pool, NewValidator(DefaultSalaryCap, DefaultMinTeams), rng, DefaultMaxAttempts)

	_, err := gen.Generate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoFeasibleLineup))
}
