package genetic

import (
	"github.com/jnederlo/linecruncher/internal/roster"
)

// testPlayers covers every role with at least three candidates and three
// teams, with salaries low enough that almost any draw fits under the cap.
func testPlayers() []roster.Player {
	return []roster.Player{
		// Centers
		{Name: "Crosby", Position: "C", Salary: 6500, Team: "PIT", AvgPoints: 18.5},
		{Name: "McDavid", Position: "C", Salary: 7800, Team: "EDM", AvgPoints: 22.3},
		{Name: "Barkov", Position: "C", Salary: 5400, Team: "FLA", AvgPoints: 15.1},
		{Name: "Bergeron", Position: "C", Salary: 4900, Team: "BOS", AvgPoints: 13.7},
		// Wingers
		{Name: "Ovechkin", Position: "W", Salary: 6900, Team: "WSH", AvgPoints: 19.4},
		{Name: "Pastrnak", Position: "W", Salary: 6200, Team: "BOS", AvgPoints: 17.8},
		{Name: "Kucherov", Position: "W", Salary: 7100, Team: "TBL", AvgPoints: 20.2},
		{Name: "Marchand", Position: "W", Salary: 5600, Team: "BOS", AvgPoints: 14.9},
		{Name: "Stone", Position: "W", Salary: 4800, Team: "VGK", AvgPoints: 12.6},
		// Defensemen
		{Name: "Karlsson", Position: "D", Salary: 5900, Team: "SJS", AvgPoints: 14.2},
		{Name: "Hedman", Position: "D", Salary: 5500, Team: "TBL", AvgPoints: 13.5},
		{Name: "Josi", Position: "D", Salary: 5200, Team: "NSH", AvgPoints: 12.8},
		{Name: "Fox", Position: "D", Salary: 4700, Team: "NYR", AvgPoints: 11.9},
		// Goalies
		{Name: "Vasilevskiy", Position: "G", Salary: 7600, Team: "TBL", AvgPoints: 16.4},
		{Name: "Shesterkin", Position: "G", Salary: 7200, Team: "NYR", AvgPoints: 15.2},
		{Name: "Hellebuyck", Position: "G", Salary: 6800, Team: "WPG", AvgPoints: 14.6},
	}
}

func testPool() *roster.Pool {
	return roster.NewPool(testPlayers())
}

// singleTeamPlayers is the pathological pool: one candidate per required
// role slot, every player on the same team. Cheap and distinct, but the
// minimum-team constraint can never be satisfied.
func singleTeamPlayers() []roster.Player {
	return []roster.Player{
		{Name: "C1", Position: "C", Salary: 1000, Team: "PIT", AvgPoints: 10},
		{Name: "C2", Position: "C", Salary: 1000, Team: "PIT", AvgPoints: 10},
		{Name: "W1", Position: "W", Salary: 1000, Team: "PIT", AvgPoints: 10},
		{Name: "W2", Position: "W", Salary: 1000, Team: "PIT", AvgPoints: 10},
		{Name: "W3", Position: "W", Salary: 1000, Team: "PIT", AvgPoints: 10},
		{Name: "D1", Position: "D", Salary: 1000, Team: "PIT", AvgPoints: 10},
		{Name: "D2", Position: "D", Salary: 1000, Team: "PIT", AvgPoints: 10},
		{Name: "G1", Position: "G", Salary: 1000, Team: "PIT", AvgPoints: 10},
	}
}

// lineupInvariantsHold checks the three contest invariants on a lineup.
func lineupInvariantsHold(l Lineup, salaryCap, minTeams int) (salaryOK, teamsOK, uniqueOK bool) {
	salary := 0
	teams := make(map[string]struct{})
	names := make(map[string]struct{})
	for _, p := range l.Players {
		salary += p.Salary
		teams[p.Team] = struct{}{}
		names[p.Name] = struct{}{}
	}
	return salary < salaryCap, len(teams) >= minTeams, len(names) == NumSlots
}
