package chase

import "github.com/vovakirdan/tui-alarm/internal/core"

// Mode is a pursuer's behavior mode. Only chase is implemented.
type Mode string

const ModeChase Mode = "chase"

// Pursuer is an opponent that closes in on the player once per tick.
type Pursuer struct {
	ID    int
	Pos   core.Point
	Color core.Color
	Mode  Mode
}

// Tag returns the presentation tag for the host view.
func (p Pursuer) Tag() string {
	return p.Color.String()
}

// ChaseStep picks the next cell for a pursuer at from: among the four
// neighbours that are in bounds and not walls, the one with the smallest
// Manhattan distance to target, ties going to the earlier direction in
// Directions. With no open neighbour the pursuer stays put.
func ChaseStep(m *Maze, from, target core.Point) core.Point {
	best := from
	bestDist := -1
	for _, d := range Directions {
		c := from.Add(d.Delta())
		if m.Blocked(c) {
			continue
		}
		if dist := c.Manhattan(target); bestDist < 0 || dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return best
}

// AdvancePursuers moves every pursuer one step toward target and returns the
// new slice. Each decision sees only start-of-tick positions; pursuers may
// end up sharing a cell.
func AdvancePursuers(m *Maze, pursuers []Pursuer, target core.Point) []Pursuer {
	out := make([]Pursuer, len(pursuers))
	for i, p := range pursuers {
		p.Pos = ChaseStep(m, p.Pos, target)
		out[i] = p
	}
	return out
}
