// Package chase implements the maze-chase dismissal challenge: the player
// collects every dot on a fixed board while pursuers close in on each tick.
package chase

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-alarm/internal/config"
	"github.com/vovakirdan/tui-alarm/internal/core"
	"github.com/vovakirdan/tui-alarm/internal/registry"
)

// DefaultPursuerInterval is the period between pursuer ticks.
const DefaultPursuerInterval = 400 * time.Millisecond

// Settings tunes the challenge. Set once by the command layer before games
// are created.
type Settings struct {
	PursuerInterval time.Duration
	Quota           int
	Points          int
	Difficulty      config.DifficultyConfig // optional speed-up, off by default
}

// DefaultSettings returns the standard tuning.
func DefaultSettings() Settings {
	return Settings{
		PursuerInterval: DefaultPursuerInterval,
		Quota:           DefaultQuota,
		Points:          DefaultPoints,
	}
}

var settings = DefaultSettings()

// SetSettings replaces the tuning used by subsequently reset games.
// Zero fields keep their defaults.
func SetSettings(s Settings) {
	def := DefaultSettings()
	if s.PursuerInterval <= 0 {
		s.PursuerInterval = def.PursuerInterval
	}
	if s.Quota <= 0 {
		s.Quota = def.Quota
	}
	if s.Points <= 0 {
		s.Points = def.Points
	}
	settings = s
}

// CurrentSettings returns the active tuning.
func CurrentSettings() Settings {
	return settings
}

const (
	hudHeight    = 2
	footerHeight = 1
	cellWidth    = 2 // each board cell is drawn two columns wide
)

// Game adapts Sim to the registry.Challenge interface.
type Game struct {
	sim        *Sim
	interval   time.Duration
	difficulty *config.DifficultyManager
	ticks      uint64
	screenW    int
	screenH    int
	tooSmall   bool
}

// New creates a maze-chase challenge.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("chase", func() registry.Challenge {
		return New()
	})
}

// ID returns the challenge identifier.
func (g *Game) ID() string {
	return "chase"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze Chase"
}

// Reset rebuilds the simulation from the current settings.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	s := CurrentSettings()
	rules := DefaultRules()
	rules.Quota = s.Quota
	rules.Points = s.Points

	g.sim = NewSim(NewMaze(), rules)
	g.interval = s.PursuerInterval
	g.difficulty = config.NewDifficultyManager(s.Difficulty)
	g.ticks = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records a new screen size without touching the run. The run is
// frozen while the board does not fit.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < DefaultSide*cellWidth+2 || h < hudHeight+DefaultSide+footerHeight
}

// TooSmall reports whether the last screen size cannot fit the board.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Won returns the current run's won channel. It is closed once when every
// collectible has been taken; Reset arms a new one.
func (g *Game) Won() <-chan struct{} {
	if g.sim == nil {
		return nil
	}
	return g.sim.Won()
}

// Input applies one key action. Movement is ignored once the run is over or
// while the board does not fit; Restart only works after a loss.
func (g *Game) Input(a core.Action) core.StepResult {
	if g.sim == nil {
		return core.StepResult{}
	}

	changed := false
	switch {
	case a.IsDirection() && g.tooSmall:
	case a.IsDirection():
		d, _ := DirectionFor(a)
		before := g.sim.State()
		g.sim.Move(d)
		after := g.sim.State()
		changed = before.Player != after.Player || before.Status != after.Status
	case a == core.ActionRestart && g.sim.Status() == StatusLost:
		g.sim.Reset()
		g.ticks = 0
		changed = true
	}
	return core.StepResult{State: g.State(), Changed: changed}
}

// Tick advances the pursuers.
func (g *Game) Tick() core.StepResult {
	if g.sim == nil || g.sim.Status() != StatusActive || g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	g.ticks++
	g.sim.Tick()
	return core.StepResult{State: g.State(), Changed: true}
}

// TickInterval returns the pursuer period, shortened by difficulty
// progression when enabled.
func (g *Game) TickInterval() time.Duration {
	if g.interval <= 0 {
		return DefaultPursuerInterval
	}
	if g.difficulty == nil || g.sim == nil {
		return g.interval
	}
	return g.difficulty.Interval(g.interval, g.sim.Score(), int(g.ticks))
}

// State returns the platform view of the simulation.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.Status() == StatusLost,
		Complete: g.sim.Status() == StatusWon,
	}
}

// Render draws the board to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	hud := fmt.Sprintf(" Maze Chase  Score: %d  Dots left: %d", g.sim.Score(), len(g.sim.Collectibles()))
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	if g.tooSmall {
		dst.DrawMessage("Window too small", "Resize to continue", core.ColorYellow)
		return
	}

	offX := (dst.Width() - g.sim.Side()*cellWidth) / 2
	offY := hudHeight
	put := func(p core.Point, r rune, c core.Color) {
		dst.SetColored(offX+p.X*cellWidth, offY+p.Y, r, c)
	}

	for _, w := range g.sim.Walls() {
		put(w, '█', core.ColorBlue)
		dst.SetColored(offX+w.X*cellWidth+1, offY+w.Y, '█', core.ColorBlue)
	}
	for _, d := range g.sim.Collectibles() {
		put(d, '·', core.ColorBrightYellow)
	}
	for _, p := range g.sim.Pursuers() {
		put(p.Pos, 'M', p.Color)
	}
	put(g.sim.Player(), playerGlyph(g.sim.Facing()), core.ColorYellow)

	footerY := offY + g.sim.Side()
	dst.DrawTextCentered(footerY, "arrows/wasd: move   r: retry after game over")

	switch g.sim.Status() {
	case StatusWon:
		dst.DrawMessage("Challenge Complete!", fmt.Sprintf("Final Score: %d", g.sim.Score()), core.ColorBrightGreen)
	case StatusLost:
		dst.DrawMessage("GAME OVER!", "Press R to try again", core.ColorBrightRed)
	}
}

// playerGlyph opens the mouth toward the facing direction.
func playerGlyph(d Direction) rune {
	switch d {
	case DirUp:
		return 'v'
	case DirDown:
		return '^'
	case DirLeft:
		return '>'
	default:
		return '<'
	}
}
