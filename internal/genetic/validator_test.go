package genetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnederlo/linecruncher/internal/roster"
)

// candidate builds a 9-player candidate in slot order [C C W W W D D G UTIL].
func candidate(players ...*roster.Player) [NumSlots]*roster.Player {
	var c [NumSlots]*roster.Player
	copy(c[:], players)
	return c
}

func validCandidate() [NumSlots]*roster.Player {
	pool := testPool()
	return candidate(
		pool.Centers[0], pool.Centers[1],
		pool.Wingers[0], pool.Wingers[1], pool.Wingers[2],
		pool.Defensemen[0], pool.Defensemen[1],
		pool.Goalies[0],
		pool.Centers[2], // utility
	)
}

func TestValidate_AcceptsValidLineup(t *testing.T) {
	v := NewValidator(DefaultSalaryCap, DefaultMinTeams)

	lineup, err := v.Validate(validCandidate())
	require.NoError(t, err)

	expectedSalary := 6500 + 7800 + 6900 + 6200 + 7100 + 5900 + 5500 + 7600 + 5400
	assert.Equal(t, expectedSalary, lineup.TotalSalary)
	assert.InDelta(t, 18.5+22.3+19.4+17.8+20.2+14.2+13.5+16.4+15.1, lineup.Projection, 0.001)
}

func TestValidate_RejectsSalaryAtCap(t *testing.T) {
	players := validCandidate()
	total := 0
	for _, p := range players {
		total += p.Salary
	}

	// A cap equal to the total must reject: the rule is strictly under
	v := NewValidator(total, DefaultMinTeams)
	_, err := v.Validate(players)
	require.Error(t, err)

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, total, rejection.TotalSalary)

	// One dollar of headroom and the same candidate passes
	v = NewValidator(total+1, DefaultMinTeams)
	_, err = v.Validate(players)
	assert.NoError(t, err)
}

func TestValidate_RejectsDuplicatePlayer(t *testing.T) {
	pool := testPool()
	players := candidate(
		pool.Centers[0], pool.Centers[1],
		pool.Wingers[0], pool.Wingers[1], pool.Wingers[2],
		pool.Defensemen[0], pool.Defensemen[1],
		pool.Goalies[0],
		pool.Centers[0], // double-booked into the utility slot
	)

	v := NewValidator(DefaultSalaryCap, DefaultMinTeams)
	_, err := v.Validate(players)
	require.Error(t, err)

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, 8, rejection.DistinctNames)
}

func TestValidate_RejectsTooFewTeams(t *testing.T) {
	pool := roster.NewPool(singleTeamPlayers())
	players := candidate(
		pool.Centers[0], pool.Centers[1],
		pool.Wingers[0], pool.Wingers[1], pool.Wingers[2],
		pool.Defensemen[0], pool.Defensemen[1],
		pool.Goalies[0],
		pool.Utility[0],
	)

	v := NewValidator(DefaultSalaryCap, DefaultMinTeams)
	_, err := v.Validate(players)
	require.Error(t, err)

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, 1, rejection.DistinctTeams)
}

func TestValidate_Idempotent(t *testing.T) {
	v := NewValidator(DefaultSalaryCap, DefaultMinTeams)

	first, err := v.Validate(validCandidate())
	require.NoError(t, err)

	second, err := v.Validate(first.Players)
	require.NoError(t, err)
	assert.Equal(t, first.TotalSalary, second.TotalSalary)
	assert.Equal(t, first.Projection, second.Projection)
	assert.Equal(t, first.Players, second.Players)
}

func TestValidate_ProjectionRoundedToTwoDecimals(t *testing.T) {
	players := validCandidate()
	lineup, err := NewValidator(DefaultSalaryCap, DefaultMinTeams).Validate(players)
	require.NoError(t, err)

	scaled := lineup.Projection * 100
	assert.InDelta(t, scaled, float64(int64(scaled+0.5)), 1e-6)
}
