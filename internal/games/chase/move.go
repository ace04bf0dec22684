package chase

import "github.com/vovakirdan/tui-alarm/internal/core"

// Direction is one of the four axis-aligned moves.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in enumeration order.
// Pursuers break distance ties by taking the first entry.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit offset for the direction.
func (d Direction) Delta() core.Point {
	switch d {
	case DirUp:
		return core.Pt(0, -1)
	case DirDown:
		return core.Pt(0, 1)
	case DirLeft:
		return core.Pt(-1, 0)
	case DirRight:
		return core.Pt(1, 0)
	default:
		return core.Point{}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFor maps a movement action to a direction.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// Step moves p one cell in direction d. The candidate is clamped to the grid,
// never wrapped; a wall candidate rejects the move and p is returned unchanged.
// Player input and pursuer movement share these semantics.
func Step(m *Maze, p core.Point, d Direction) core.Point {
	delta := d.Delta()
	last := m.Side() - 1
	next := core.Pt(
		core.Clamp(p.X+delta.X, 0, last),
		core.Clamp(p.Y+delta.Y, 0, last),
	)
	if m.Blocked(next) {
		return p
	}
	return next
}
