// Package shake implements the shake-counter dismissal challenge. Shakes come
// from accelerometer samples or, on a keyboard, from manual taps.
package shake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-alarm/internal/core"
	"github.com/vovakirdan/tui-alarm/internal/registry"
)

const (
	MinTarget     = 5
	MaxTarget     = 50
	DefaultTarget = 20

	// DefaultFlash is how long the "shaking" indicator stays lit.
	DefaultFlash = 300 * time.Millisecond

	tickInterval = 50 * time.Millisecond
)

// Settings tunes the challenge.
type Settings struct {
	Target    int
	Threshold float64
	Debounce  time.Duration
	Flash     time.Duration
}

// DefaultSettings returns the standard tuning.
func DefaultSettings() Settings {
	return Settings{
		Target:    DefaultTarget,
		Threshold: DefaultThreshold,
		Debounce:  DefaultDebounce,
		Flash:     DefaultFlash,
	}
}

var settings = DefaultSettings()

// SetSettings replaces the tuning used by subsequently reset games. The target
// is clamped to [MinTarget, MaxTarget]; other zero fields keep their defaults.
func SetSettings(s Settings) {
	def := DefaultSettings()
	if s.Target <= 0 {
		s.Target = def.Target
	}
	s.Target = core.Clamp(s.Target, MinTarget, MaxTarget)
	if s.Threshold <= 0 {
		s.Threshold = def.Threshold
	}
	if s.Debounce <= 0 {
		s.Debounce = def.Debounce
	}
	if s.Flash <= 0 {
		s.Flash = def.Flash
	}
	settings = s
}

// CurrentSettings returns the active tuning.
func CurrentSettings() Settings {
	return settings
}

// SetTarget changes only the target count.
func SetTarget(n int) {
	s := settings
	s.Target = n
	SetSettings(s)
}

// Game counts shakes until the target is reached.
type Game struct {
	detector   *Detector
	override   int // per-alarm target; 0 uses the settings
	target     int
	count      int
	flash      time.Duration
	flashUntil time.Time
	shaking    bool
	now        func() time.Time
}

// New creates a shake challenge.
func New() *Game {
	return &Game{now: time.Now}
}

func init() {
	registry.Register("shake", func() registry.Challenge {
		return New()
	})
}

// ID returns the challenge identifier.
func (g *Game) ID() string {
	return "shake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Shake Counter"
}

// Reset zeroes the count and picks up the current settings.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	s := CurrentSettings()
	g.detector = NewDetector(s.Threshold, s.Debounce)
	g.target = s.Target
	if g.override > 0 {
		g.target = core.Clamp(g.override, MinTarget, MaxTarget)
	}
	g.flash = s.Flash
	g.count = 0
	g.shaking = false
	g.flashUntil = time.Time{}
}

// UseTarget sets this game's target count, taking effect on the next Reset.
func (g *Game) UseTarget(n int) {
	g.override = n
}

// Observe feeds one accelerometer sample. It reports whether the sample
// registered a shake.
func (g *Game) Observe(s Sample) bool {
	if g.detector == nil || g.Complete() {
		return false
	}
	if !g.detector.Observe(s) {
		return false
	}
	g.bump(s.At)
	return true
}

// Input handles a key action. Tap and Confirm count as one manual shake;
// a shake run cannot be lost, so there is nothing to restart.
func (g *Game) Input(a core.Action) core.StepResult {
	if g.detector == nil {
		return core.StepResult{}
	}
	switch a {
	case core.ActionTap, core.ActionConfirm:
		if g.Complete() {
			break
		}
		g.bump(g.now())
		return core.StepResult{State: g.State(), Changed: true}
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) bump(at time.Time) {
	g.count = min(g.count+1, g.target)
	g.shaking = true
	g.flashUntil = at.Add(g.flash)
}

// Tick clears an expired shaking flash.
func (g *Game) Tick() core.StepResult {
	if g.shaking && !g.now().Before(g.flashUntil) {
		g.shaking = false
		return core.StepResult{State: g.State(), Changed: true}
	}
	return core.StepResult{State: g.State()}
}

// TickInterval returns how often the flash is checked.
func (g *Game) TickInterval() time.Duration {
	return tickInterval
}

// Count returns the shakes registered so far.
func (g *Game) Count() int {
	return g.count
}

// Target returns the shakes needed to complete.
func (g *Game) Target() int {
	return g.target
}

// Shaking reports whether the flash indicator is lit.
func (g *Game) Shaking() bool {
	return g.shaking
}

// Complete reports whether the target has been reached.
func (g *Game) Complete() bool {
	return g.target > 0 && g.count >= g.target
}

// State returns the platform view of the challenge.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.count,
		Complete: g.Complete(),
	}
}

// Render draws the counter and a progress bar.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.detector == nil {
		return
	}

	h := dst.Height()
	dst.DrawText(0, 0, " Shake Counter")
	dst.DrawHLine(0, 1, dst.Width(), '─')

	mid := h / 2
	counter := fmt.Sprintf("%d / %d", g.count, g.target)
	color := core.ColorWhite
	if g.shaking {
		color = core.ColorBrightYellow
	}
	dst.DrawTextColored((dst.Width()-len(counter))/2, mid-2, counter, color)

	barW := core.Clamp(dst.Width()-10, 10, 50)
	dst.DrawBar((dst.Width()-barW-2)/2, mid, barW, g.count, g.target, core.ColorGreen)

	switch {
	case g.Complete():
		dst.DrawTextCentered(mid+2, "Alarm dismissed!")
	case g.shaking:
		dst.DrawTextCentered(mid+2, "Shaking...")
	default:
		dst.DrawTextCentered(mid+2, "Shake your device or press space")
	}
}
