package chase

import "github.com/vovakirdan/tui-alarm/internal/core"

// Snapshot captures the complete challenge state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    int
	PlayerX  int
	PlayerY  int
	Facing   Direction
	Pursuers []core.Point
	DotsLeft int
	Status   Status
}

// Snapshot returns the current challenge snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.sim == nil {
		return Snapshot{}
	}

	s := g.sim.State()
	pursuers := make([]core.Point, len(s.Pursuers))
	for i, p := range s.Pursuers {
		pursuers[i] = p.Pos
	}
	return Snapshot{
		Tick:     g.ticks,
		Score:    s.Score,
		PlayerX:  s.Player.Pos.X,
		PlayerY:  s.Player.Pos.Y,
		Facing:   s.Player.Facing,
		Pursuers: pursuers,
		DotsLeft: len(s.Collectibles),
		Status:   s.Status,
	}
}
