package chase

import (
	"slices"

	"github.com/vovakirdan/tui-alarm/internal/core"
)

// Sim owns a maze, its rules and the current state. It is not safe for
// concurrent use: the host must deliver one stimulus at a time.
type Sim struct {
	maze  *Maze
	rules Rules
	state State
	won   chan struct{}
}

// NewSim creates a simulation in its initial Active state.
func NewSim(m *Maze, r Rules) *Sim {
	s := &Sim{maze: m, rules: r}
	s.Reset()
	return s
}

// NewDefaultSim creates a simulation on the standard board.
func NewDefaultSim() *Sim {
	return NewSim(NewMaze(), DefaultRules())
}

// Move applies one directional input.
func (s *Sim) Move(d Direction) []Event {
	next, events := Move(s.maze, s.state, d, s.rules.Points)
	s.apply(next, events)
	return events
}

// Tick advances the pursuers once.
func (s *Sim) Tick() []Event {
	next, events := Tick(s.maze, s.state)
	s.apply(next, events)
	return events
}

// Reset rebuilds player, pursuers, collectibles and score from the rules and
// arms a fresh won channel.
func (s *Sim) Reset() {
	s.state = s.rules.Initial(s.maze)
	s.won = make(chan struct{})
}

func (s *Sim) apply(next State, events []Event) {
	s.state = next
	for _, ev := range events {
		if ev.Kind == EventWon {
			close(s.won)
		}
	}
}

// Won returns a channel that is closed once, when the current run is won.
// A Reset replaces it; a loss never closes it.
func (s *Sim) Won() <-chan struct{} {
	return s.won
}

// State returns the current state snapshot.
func (s *Sim) State() State {
	return s.state
}

// Status returns the lifecycle state.
func (s *Sim) Status() Status {
	return s.state.Status
}

// Player returns the player's cell.
func (s *Sim) Player() core.Point {
	return s.state.Player.Pos
}

// Facing returns the direction of the player's last successful move.
func (s *Sim) Facing() Direction {
	return s.state.Player.Facing
}

// Pursuers returns a copy of the pursuer list.
func (s *Sim) Pursuers() []Pursuer {
	return slices.Clone(s.state.Pursuers)
}

// Collectibles returns a copy of the remaining collectibles.
func (s *Sim) Collectibles() []core.Point {
	return slices.Clone(s.state.Collectibles)
}

// Score returns the current score.
func (s *Sim) Score() int {
	return s.state.Score
}

// Walls returns the static wall list.
func (s *Sim) Walls() []core.Point {
	return s.maze.Walls()
}

// Side returns the grid side length.
func (s *Sim) Side() int {
	return s.maze.Side()
}

// Maze returns the board.
func (s *Sim) Maze() *Maze {
	return s.maze
}
