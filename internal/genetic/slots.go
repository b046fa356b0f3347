package genetic

import "github.com/jnederlo/linecruncher/internal/roster"

// NumSlots is the number of players in a complete lineup.
const NumSlots = 9

// RoleSlot describes one role group of the fixed DraftKings NHL lineup layout
// [C, C, W, W, W, D, D, G, UTIL]: which pool sequence feeds it, how many
// players it requires, and where its slots start in the lineup.
type RoleSlot struct {
	Slot  string
	Count int
	Start int
}

// roleSlots is the single source of truth for slot order and per-role counts.
// Both the generator and the crossover engine iterate it so the
// sampling logic stays uniform across roles.
var roleSlots = []RoleSlot{
	{Slot: roster.PositionCenter, Count: 2, Start: 0},
	{Slot: roster.PositionWinger, Count: 3, Start: 2},
	{Slot: roster.PositionDefenseman, Count: 2, Start: 5},
	{Slot: roster.PositionGoalie, Count: 1, Start: 7},
	{Slot: roster.SlotUtil, Count: 1, Start: 8},
}

// RoleSlots returns the lineup's role groups in slot order.
func RoleSlots() []RoleSlot {
	return roleSlots
}

// SlotNames returns the per-slot column names in lineup order.
func SlotNames() []string {
	names := make([]string, 0, NumSlots)
	for _, rs := range roleSlots {
		for i := 0; i < rs.Count; i++ {
			names = append(names, rs.Slot)
		}
	}
	return names
}
