package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-alarm/internal/core"
	"github.com/vovakirdan/tui-alarm/internal/games/shake"
	"github.com/vovakirdan/tui-alarm/internal/registry"
	"github.com/vovakirdan/tui-alarm/internal/storage"
)

const (
	tagChallenge = "challenge"
	tagDismiss   = "dismiss"
)

// MotionMsg carries one accelerometer sample to the running challenge.
type MotionMsg shake.Sample

// wonMsg is sent when a challenge's won channel closes.
type wonMsg struct{ gen uint64 }

// Optional challenge capabilities.
type (
	motionObserver interface{ Observe(shake.Sample) bool }
	winNotifier    interface{ Won() <-chan struct{} }
	resizer        interface{ Resize(w, h int) }
)

// ChallengeOptions tunes how a challenge is hosted.
type ChallengeOptions struct {
	// DismissDelay is the pause between completing the challenge and
	// reporting it dismissed, so the win screen is visible.
	DismissDelay time.Duration

	// Practice allows leaving with esc and pausing with p. A ringing alarm
	// can only be silenced by completing its challenge.
	Practice bool

	// Store receives the score of every finished run. May be nil.
	Store *storage.Store
}

// ChallengeResult summarizes a hosted run.
type ChallengeResult struct {
	ChallengeID string
	Score       int
	Completed   bool
	Dismissed   bool
	Aborted     bool
	Attempts    int
	Duration    time.Duration
}

// ChallengeModel hosts one registry.Challenge: it delivers key and motion
// input synchronously, runs the challenge's periodic tick on a cancelable
// Schedule and dismisses after the win delay.
type ChallengeModel struct {
	challenge  registry.Challenge
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       ChallengeOptions
	keys       *KeyMapper
	ticker     Schedule
	dismiss    Schedule
	state      core.GameState
	cancelWon  context.CancelFunc
	wonGen     uint64
	attempts   int
	startedAt  time.Time
	paused     bool
	completed  bool
	dismissed  bool
	aborted    bool
	quitting   bool
	scoreSaved bool
	standalone bool    // owns the program; quits it when done
	startCmd   tea.Cmd // returned by Init once Start has run
}

// NewChallengeModel creates a host for the given challenge.
func NewChallengeModel(c registry.Challenge, cfg core.RuntimeConfig, opts ChallengeOptions) ChallengeModel {
	return ChallengeModel{
		challenge: c,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		opts:      opts,
		keys:      NewKeyMapper(),
		ticker:    NewSchedule(tagChallenge),
		dismiss:   NewSchedule(tagDismiss),
	}
}

// Start resets the challenge and arms its tick. Hosts call it on their own
// copy before the first Update; Init only replays the resulting command.
func (m *ChallengeModel) Start() tea.Cmd {
	m.challenge.Reset(m.config)
	m.state = m.challenge.State()
	m.attempts = 1
	m.startedAt = time.Now()
	return tea.Batch(m.ticker.Every(m.challenge.TickInterval()), m.watchWon())
}

// Init returns the command produced by Start.
func (m ChallengeModel) Init() tea.Cmd {
	return m.startCmd
}

// Update handles messages and updates the model state.
func (m ChallengeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, cmd
}

func (m *ChallengeModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return nil

	case TickMsg:
		return m.handleTick(msg)

	case MotionMsg:
		obs, ok := m.challenge.(motionObserver)
		if !ok || m.paused || m.state.Terminal() {
			return nil
		}
		obs.Observe(shake.Sample(msg))
		m.state = m.challenge.State()
		return m.afterStep()

	case wonMsg:
		if msg.gen == m.wonGen && !m.completed {
			m.state = m.challenge.State()
			return m.complete()
		}
	}
	return nil
}

// handleKey processes keyboard input.
func (m *ChallengeModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.Close()
		return m.exit()
	}

	switch action {
	case core.ActionBack:
		if m.opts.Practice && !m.completed {
			m.aborted = true
			m.Close()
			return m.exit()
		}
		return nil

	case core.ActionPause:
		if !m.opts.Practice || m.state.Terminal() {
			return nil
		}
		m.paused = !m.paused
		if m.paused {
			m.ticker.Cancel()
			return nil
		}
		return m.ticker.Every(m.challenge.TickInterval())

	case core.ActionRestart:
		if !m.state.GameOver {
			return nil
		}
		m.challenge.Input(action)
		m.state = m.challenge.State()
		m.attempts++
		m.scoreSaved = false
		return tea.Batch(m.ticker.Every(m.challenge.TickInterval()), m.watchWon())

	case core.ActionNone:
		return nil
	}

	if m.paused {
		return nil
	}
	res := m.challenge.Input(action)
	m.state = res.State
	return m.afterStep()
}

// handleTick routes schedule messages.
func (m *ChallengeModel) handleTick(msg TickMsg) tea.Cmd {
	switch {
	case m.ticker.Accept(msg):
		res := m.challenge.Tick()
		m.state = res.State
		if cmd := m.afterStep(); cmd != nil || m.state.Terminal() {
			return cmd
		}
		return m.ticker.Next(m.challenge.TickInterval())

	case m.dismiss.Accept(msg):
		m.dismissed = true
		m.Close()
		return m.exit()
	}
	return nil
}

// afterStep reacts to the challenge reaching a terminal state.
func (m *ChallengeModel) afterStep() tea.Cmd {
	switch {
	case m.state.Complete && !m.completed:
		return m.complete()
	case m.state.GameOver:
		m.ticker.Cancel()
		m.saveScore()
	}
	return nil
}

func (m *ChallengeModel) complete() tea.Cmd {
	m.completed = true
	m.ticker.Cancel()
	m.stopWatch()
	m.saveScore()
	return m.dismiss.After(m.opts.DismissDelay)
}

// watchWon waits on the challenge's won channel until it closes or the
// watch is replaced.
func (m *ChallengeModel) watchWon() tea.Cmd {
	wn, ok := m.challenge.(winNotifier)
	if !ok {
		return nil
	}
	ch := wn.Won()
	if ch == nil {
		return nil
	}

	m.stopWatch()
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelWon = cancel
	m.wonGen++
	gen := m.wonGen

	return func() tea.Msg {
		select {
		case <-ch:
			return wonMsg{gen: gen}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m *ChallengeModel) stopWatch() {
	if m.cancelWon != nil {
		m.cancelWon()
		m.cancelWon = nil
	}
}

// Close cancels every pending schedule and watcher.
func (m *ChallengeModel) Close() {
	m.ticker.Cancel()
	m.dismiss.Cancel()
	m.stopWatch()
}

func (m *ChallengeModel) exit() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

func (m *ChallengeModel) resize(w, h int) {
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.screen.Resize(w, h)
	if r, ok := m.challenge.(resizer); ok {
		r.Resize(w, h)
	}
}

// saveScore records the run once per attempt.
func (m *ChallengeModel) saveScore() {
	if m.scoreSaved || m.state.Score <= 0 {
		return
	}
	if m.opts.Store != nil {
		//nolint:errcheck // Best-effort save, the alarm flow continues regardless
		m.opts.Store.SaveScore(m.challenge.ID(), m.state.Score)
	}
	m.scoreSaved = true
}

// View renders the challenge.
func (m ChallengeModel) View() string {
	if m.quitting {
		return ""
	}

	m.challenge.Render(m.screen)
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, "  PAUSED (p to resume)  ")
	}
	return RenderScreen(m.screen)
}

// Result summarizes the run so far.
func (m ChallengeModel) Result() ChallengeResult {
	return ChallengeResult{
		ChallengeID: m.challenge.ID(),
		Score:       m.state.Score,
		Completed:   m.completed,
		Dismissed:   m.dismissed,
		Aborted:     m.aborted,
		Attempts:    m.attempts,
		Duration:    time.Since(m.startedAt),
	}
}

// Dismissed reports whether the challenge was completed and the win delay
// has passed.
func (m ChallengeModel) Dismissed() bool {
	return m.dismissed
}

// Aborted reports whether the user left a practice run.
func (m ChallengeModel) Aborted() bool {
	return m.aborted
}

// IsQuitting returns true if user requested to quit entirely.
func (m ChallengeModel) IsQuitting() bool {
	return m.quitting
}

// RunChallenge runs a challenge as its own program. A non-empty motion
// track is replayed into the challenge in real time.
func RunChallenge(c registry.Challenge, cfg core.RuntimeConfig, opts ChallengeOptions, motion []shake.TrackPoint) (ChallengeResult, error) {
	model := NewChallengeModel(c, cfg, opts)
	model.standalone = true
	model.startCmd = model.Start()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if len(motion) > 0 {
		go replayMotion(ctx, p, motion)
	}

	finalModel, err := p.Run()
	if err != nil {
		return ChallengeResult{ChallengeID: c.ID()}, err
	}

	m, ok := finalModel.(ChallengeModel)
	if !ok {
		return ChallengeResult{ChallengeID: c.ID()}, nil
	}
	m.Close()
	return m.Result(), nil
}

// replayMotion sends each track point when its offset has elapsed.
func replayMotion(ctx context.Context, p *tea.Program, track []shake.TrackPoint) {
	start := time.Now()
	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for _, pt := range track {
		timer.Reset(time.Until(start.Add(pt.Offset)))
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		p.Send(MotionMsg(pt.Sample(start)))
	}
}
