package chase

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-alarm/internal/core"
)

// DefaultSide is the side length of the standard board.
const DefaultSide = 19

// ErrLayout is returned by ParseMaze for malformed layouts.
var ErrLayout = errors.New("chase: invalid maze layout")

// defaultLayout is the standard board: full border plus a symmetric interior.
var defaultLayout = []string{
	"###################",
	"#.................#",
	"#.####.#####.####.#",
	"#.................#",
	"#.#.#.###.###.#.#.#",
	"#.................#",
	"#.###.#.....#.###.#",
	"#.................#",
	"#.....##...##.....#",
	"#.................#",
	"#.###.#.....#.###.#",
	"#.................#",
	"#.#.#.###.###.#.#.#",
	"#.................#",
	"#.####.#####.####.#",
	"#.................#",
	"#.#.#.#.....#.#.#.#",
	"#.................#",
	"###################",
}

// Maze is an immutable square grid of walls and walkable cells.
type Maze struct {
	side  int
	walls map[core.Point]bool
	list  []core.Point // row-major, for rendering
}

// NewMaze returns the standard 19x19 board.
func NewMaze() *Maze {
	m, err := ParseMaze(defaultLayout)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMaze builds a maze from square text rows where '#' marks a wall and
// '.' or ' ' a walkable cell.
func ParseMaze(rows []string) (*Maze, error) {
	side := len(rows)
	if side == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrLayout)
	}

	m := &Maze{
		side:  side,
		walls: make(map[core.Point]bool),
	}
	for y, row := range rows {
		cells := []rune(row)
		if len(cells) != side {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrLayout, y, len(cells), side)
		}
		for x, ch := range cells {
			switch ch {
			case '#':
				p := core.Pt(x, y)
				m.walls[p] = true
				m.list = append(m.list, p)
			case '.', ' ':
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d, %d)", ErrLayout, ch, x, y)
			}
		}
	}
	return m, nil
}

// Side returns the grid side length N.
func (m *Maze) Side() int {
	return m.side
}

// InBounds reports whether p lies within [0, N-1] on both axes.
func (m *Maze) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < m.side && p.Y >= 0 && p.Y < m.side
}

// IsWall reports whether (x, y) is a wall or lies outside the grid.
func (m *Maze) IsWall(x, y int) bool {
	p := core.Pt(x, y)
	return !m.InBounds(p) || m.walls[p]
}

// Blocked is IsWall for a point.
func (m *Maze) Blocked(p core.Point) bool {
	return m.IsWall(p.X, p.Y)
}

// Walls returns a copy of the wall list in row-major order.
func (m *Maze) Walls() []core.Point {
	out := make([]core.Point, len(m.list))
	copy(out, m.list)
	return out
}
