package chase

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-alarm/internal/config"
	"github.com/vovakirdan/tui-alarm/internal/core"
	"github.com/vovakirdan/tui-alarm/internal/registry"
)

func newTestGame() *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	return g
}

// loseGame steps left three times and waits for the pursuers to arrive.
func loseGame(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 3; i++ {
		g.Input(core.ActionLeft)
	}
	for i := 0; i < 10; i++ {
		g.Tick()
	}
	if !g.State().GameOver {
		t.Fatalf("expected game over, snapshot %+v", g.Snapshot())
	}
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("chase") {
		t.Fatal("chase should be registered")
	}
	c, err := registry.Create("chase")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if c.Title() != "Maze Chase" {
		t.Errorf("Title() = %q", c.Title())
	}
}

func TestGameInput(t *testing.T) {
	g := newTestGame()

	res := g.Input(core.ActionRight)
	if !res.Changed {
		t.Error("moving right from spawn should change the state")
	}
	snap := g.Snapshot()
	if snap.PlayerX != 10 || snap.PlayerY != 15 {
		t.Errorf("player at (%d, %d), expected (10, 15)", snap.PlayerX, snap.PlayerY)
	}

	res = g.Input(core.ActionUp)
	if res.Changed {
		t.Error("moving into a wall should not change the state")
	}

	res = g.Input(core.ActionTap)
	if res.Changed {
		t.Error("tap is not a chase action")
	}
}

func TestGameRestartOnlyAfterLoss(t *testing.T) {
	g := newTestGame()
	g.Input(core.ActionRight)

	if res := g.Input(core.ActionRestart); res.Changed {
		t.Error("restart should be ignored while active")
	}
	if g.Snapshot().PlayerX != 10 {
		t.Error("restart while active reset the board")
	}

	g = newTestGame()
	loseGame(t, g)

	before := g.Snapshot()
	g.Input(core.ActionRight)
	g.Tick()
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("state changed after game over")
	}

	if res := g.Input(core.ActionRestart); !res.Changed {
		t.Error("restart after loss should change the state")
	}
	snap := g.Snapshot()
	if snap.Status != StatusActive || snap.Score != 0 || snap.Tick != 0 {
		t.Errorf("after restart snapshot = %+v", snap)
	}
	if snap.PlayerX != 9 || snap.PlayerY != 15 {
		t.Errorf("player at (%d, %d) after restart", snap.PlayerX, snap.PlayerY)
	}
}

func TestGameTickInterval(t *testing.T) {
	defer SetSettings(DefaultSettings())

	g := newTestGame()
	if g.TickInterval() != 400*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 400ms", g.TickInterval())
	}

	SetSettings(Settings{PursuerInterval: 250 * time.Millisecond})
	g = newTestGame()
	if g.TickInterval() != 250*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 250ms", g.TickInterval())
	}
	if CurrentSettings().Quota != DefaultQuota {
		t.Errorf("zero quota should fall back to %d", DefaultQuota)
	}
}

func TestGameTickIntervalProgression(t *testing.T) {
	defer SetSettings(DefaultSettings())

	SetSettings(Settings{
		PursuerInterval: 400 * time.Millisecond,
		Difficulty: config.DifficultyConfig{
			Enabled:     true,
			Progression: config.ProgressionConfig{Type: "time", MaxAt: 4},
			Scaling:     config.ScalingConfig{SpeedMultiplier: 1.0},
		},
	})
	g := newTestGame()

	for i := 0; i < 4; i++ {
		g.Tick()
	}
	if g.TickInterval() != 200*time.Millisecond {
		t.Errorf("TickInterval() = %v after max progression, expected 200ms", g.TickInterval())
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Maze Chase") {
		t.Error("render should include the title")
	}
	if !strings.Contains(out, "Dots left: 30") {
		t.Error("render should include the remaining dot count")
	}
	// one in the title plus four pursuers
	if n := strings.Count(out, "M"); n != 5 {
		t.Errorf("expected 5 'M' runes, got %d", n)
	}

	loseGame(t, g)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER!") {
		t.Error("render should show the game over overlay")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10})
	screen := core.NewScreen(30, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Error("small screen should show a resize hint")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := []core.Action{
		core.ActionLeft, core.ActionLeft, core.ActionLeft, core.ActionLeft,
		core.ActionLeft, core.ActionLeft, core.ActionLeft, core.ActionLeft,
		core.ActionUp, core.ActionUp, core.ActionUp,
	}

	run := func() []Snapshot {
		g := newTestGame()
		var snaps []Snapshot
		for _, a := range inputs {
			g.Input(a)
			g.Tick()
			snaps = append(snaps, g.Snapshot())
		}
		return snaps
	}

	first := run()
	for i := 0; i < 5; i++ {
		if !reflect.DeepEqual(first, run()) {
			t.Fatalf("run %d diverged", i)
		}
	}
}

func TestGameResizeKeepsRun(t *testing.T) {
	g := newTestGame()
	g.Input(core.ActionRight)

	g.Resize(20, 10)
	before := g.Snapshot()
	if res := g.Tick(); res.Changed {
		t.Error("pursuers should hold still while the board does not fit")
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("tick changed state on a small screen")
	}
	if res := g.Input(core.ActionLeft); res.Changed {
		t.Error("player should hold still while the board does not fit")
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("input changed state on a small screen")
	}

	g.Resize(80, 24)
	if g.Snapshot().PlayerX != 10 {
		t.Error("resize should not reset the run")
	}
	if res := g.Tick(); !res.Changed {
		t.Error("ticks should resume after growing the screen")
	}
}

func TestGameFitsScreen(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		small bool
	}{
		{"80x24 terminal below a two-line banner", 80, 22, false},
		{"exact fit", DefaultSide*cellWidth + 2, hudHeight + DefaultSide + footerHeight, false},
		{"one row short", 80, 21, true},
		{"one column short", DefaultSide*cellWidth + 1, 30, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			g.Reset(core.RuntimeConfig{ScreenW: tt.w, ScreenH: tt.h})
			if g.TooSmall() != tt.small {
				t.Fatalf("TooSmall() = %v, expected %v", g.TooSmall(), tt.small)
			}

			before := g.Snapshot()
			g.Tick()
			if moved := !reflect.DeepEqual(before.Pursuers, g.Snapshot().Pursuers); moved == tt.small {
				t.Errorf("pursuers moved = %v on %dx%d", moved, tt.w, tt.h)
			}
		})
	}
}

func TestGameRenderFitsStandardTerminal(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 22})
	screen := core.NewScreen(80, 22)
	g.Render(screen)

	if !strings.Contains(screen.Row(21), "arrows/wasd: move") {
		t.Errorf("footer row = %q", screen.Row(21))
	}
	if strings.Contains(screen.String(), "Window too small") {
		t.Error("board should fit 80x22")
	}
}

func TestGameWonChannelRearmedOnRestart(t *testing.T) {
	g := newTestGame()
	first := g.Won()
	if isClosed(first) {
		t.Fatal("won channel closed at start")
	}

	loseGame(t, g)
	if isClosed(g.Won()) {
		t.Error("loss should not close the won channel")
	}

	g.Input(core.ActionRestart)
	if g.Won() == first {
		t.Error("restart should arm a new won channel")
	}
}
