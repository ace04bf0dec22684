package chase

import "github.com/vovakirdan/tui-alarm/internal/core"

// Status is the simulation lifecycle state.
type Status int

const (
	StatusActive Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status freezes the simulation.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Spawn is a pursuer's fixed starting cell and presentation color.
type Spawn struct {
	Pos   core.Point
	Color core.Color
}

// Rules holds the fixed initial values a reset rebuilds from.
type Rules struct {
	PlayerSpawn   core.Point
	PursuerSpawns []Spawn
	Quota         int // maximum number of collectibles seeded
	Points        int // score per collectible
}

// DefaultRules returns the standard spawns for the 19x19 board.
func DefaultRules() Rules {
	return Rules{
		PlayerSpawn: core.Pt(9, 15),
		PursuerSpawns: []Spawn{
			{Pos: core.Pt(9, 7), Color: core.ColorRed},
			{Pos: core.Pt(8, 8), Color: core.ColorPink},
			{Pos: core.Pt(10, 8), Color: core.ColorCyan},
			{Pos: core.Pt(9, 8), Color: core.ColorOrange},
		},
		Quota:  DefaultQuota,
		Points: DefaultPoints,
	}
}

// spawnCells lists the player spawn followed by every pursuer spawn.
func (r Rules) spawnCells() []core.Point {
	cells := []core.Point{r.PlayerSpawn}
	for _, s := range r.PursuerSpawns {
		cells = append(cells, s.Pos)
	}
	return cells
}

// Player is the input-driven actor.
type Player struct {
	Pos    core.Point
	Facing Direction // presentation only; updated on successful moves
}

// State is one immutable snapshot of the simulation. Transition functions
// return a new State and never modify the slices of the one they were given.
type State struct {
	Player       Player
	Pursuers     []Pursuer
	Collectibles []core.Point
	Score        int
	Status       Status
}

// Initial builds the starting state for the maze.
func (r Rules) Initial(m *Maze) State {
	pursuers := make([]Pursuer, len(r.PursuerSpawns))
	for i, s := range r.PursuerSpawns {
		pursuers[i] = Pursuer{ID: i + 1, Pos: s.Pos, Color: s.Color, Mode: ModeChase}
	}
	return State{
		Player:       Player{Pos: r.PlayerSpawn, Facing: DirRight},
		Pursuers:     pursuers,
		Collectibles: SeedCollectibles(m, r.spawnCells(), r.Quota),
		Status:       StatusActive,
	}
}

// EventKind identifies a notification produced by a transition.
type EventKind int

const (
	EventCollected EventKind = iota
	EventWon
	EventLost
)

// Event is a notification produced by a transition.
type Event struct {
	Kind  EventKind
	At    core.Point
	Delta int // score delta for EventCollected
}

// caught reports whether any pursuer shares the player's cell.
func (s State) caught() bool {
	for _, p := range s.Pursuers {
		if p.Pos == s.Player.Pos {
			return true
		}
	}
	return false
}

// Move handles one directional input. Outside Active it is a no-op.
func Move(m *Maze, s State, d Direction, points int) (State, []Event) {
	if s.Status != StatusActive {
		return s, nil
	}

	var events []Event
	next := Step(m, s.Player.Pos, d)
	if next != s.Player.Pos {
		s.Player = Player{Pos: next, Facing: d}
		var delta int
		s.Collectibles, delta = Collect(s.Collectibles, next, points)
		if delta > 0 {
			s.Score += delta
			events = append(events, Event{Kind: EventCollected, At: next, Delta: delta})
		}
	}

	switch {
	case s.caught():
		s.Status = StatusLost
		events = append(events, Event{Kind: EventLost, At: s.Player.Pos})
	case len(s.Collectibles) == 0:
		s.Status = StatusWon
		events = append(events, Event{Kind: EventWon, At: s.Player.Pos})
	}
	return s, events
}

// Tick advances every pursuer once. Outside Active it is a no-op.
func Tick(m *Maze, s State) (State, []Event) {
	if s.Status != StatusActive {
		return s, nil
	}

	s.Pursuers = AdvancePursuers(m, s.Pursuers, s.Player.Pos)
	if s.caught() {
		s.Status = StatusLost
		return s, []Event{{Kind: EventLost, At: s.Player.Pos}}
	}
	return s, nil
}
