package roster

// Position codes as they appear in the DraftKings roster file.
const (
	PositionGoalie     = "G"
	PositionCenter     = "C"
	PositionWinger     = "W"
	PositionDefenseman = "D"

	// SlotUtil is a lineup slot, not a stored position: any skater qualifies.
	SlotUtil = "UTIL"
)

// Player represents a single roster entry. Players are immutable once loaded
// and are shared by reference between the pool and every lineup that uses them.
type Player struct {
	Name      string  `json:"name"`
	Position  string  `json:"position"`
	Salary    int     `json:"salary"`
	Team      string  `json:"team"`
	AvgPoints float64 `json:"avg_points"`
}

// Pool holds the role-bucketed player sequences for a slate. It is populated
// once by LoadRoster and read-only during the search.
type Pool struct {
	Goalies    []*Player
	Centers    []*Player
	Wingers    []*Player
	Defensemen []*Player
	// Utility holds every non-goalie player regardless of primary position.
	Utility []*Player
}

// NewPool buckets players by position. Players averaging exactly 0 points are
// treated as inactive and dropped before bucketing.
func NewPool(players []Player) *Pool {
	pool := &Pool{}
	for i := range players {
		if players[i].AvgPoints == 0 {
			continue
		}
		p := players[i]
		pool.add(&p)
	}
	return pool
}

// Candidates returns the pool sequence eligible for a lineup slot.
func (p *Pool) Candidates(slot string) []*Player {
	switch slot {
	case PositionCenter:
		return p.Centers
	case PositionWinger:
		return p.Wingers
	case PositionDefenseman:
		return p.Defensemen
	case PositionGoalie:
		return p.Goalies
	case SlotUtil:
		return p.Utility
	}
	return nil
}

// Counts reports the size of each role bucket, used for startup logging and
// feasibility checks.
func (p *Pool) Counts() map[string]int {
	return map[string]int{
		PositionCenter:     len(p.Centers),
		PositionWinger:     len(p.Wingers),
		PositionDefenseman: len(p.Defensemen),
		PositionGoalie:     len(p.Goalies),
		SlotUtil:           len(p.Utility),
	}
}

func (p *Pool) add(player *Player) {
	switch player.Position {
	case PositionGoalie:
		p.Goalies = append(p.Goalies, player)
	case PositionCenter:
		p.Centers = append(p.Centers, player)
	case PositionWinger:
		p.Wingers = append(p.Wingers, player)
	case PositionDefenseman:
		p.Defensemen = append(p.Defensemen, player)
	}

	if player.Position != PositionGoalie {
		p.Utility = append(p.Utility, player)
	}
}
