package genetic

import "github.com/jnederlo/linecruncher/internal/roster"

// Lineup is a validated set of 9 players in fixed slot order plus the two
// scalars computed at validation time. Lineups are immutable once validated;
// candidates that fail validation are never materialized as a Lineup.
type Lineup struct {
	ID          string                   `json:"id,omitempty"`
	Players     [NumSlots]*roster.Player `json:"players"`
	TotalSalary int                      `json:"total_salary"`
	Projection  float64                  `json:"projection"`
}

// Names returns the player names in slot order.
func (l Lineup) Names() []string {
	names := make([]string, NumSlots)
	for i, p := range l.Players {
		names[i] = p.Name
	}
	return names
}
