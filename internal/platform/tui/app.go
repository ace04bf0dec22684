package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-alarm/internal/alarm"
	"github.com/vovakirdan/tui-alarm/internal/core"
	"github.com/vovakirdan/tui-alarm/internal/registry"
	"github.com/vovakirdan/tui-alarm/internal/storage"
)

const (
	tagClock = "clock"

	bannerHeight         = 2
	defaultClockInterval = time.Second
)

type appScreen int

const (
	screenList appScreen = iota
	screenForm
	screenRinging
	screenHistory
)

// targetSetter is implemented by challenges with a per-alarm goal.
type targetSetter interface{ UseTarget(n int) }

// AppOptions configures the alarm clock UI.
type AppOptions struct {
	Book  *alarm.Book
	Store *storage.Store // may be nil; disables history and scores

	// Logger receives alarm lifecycle events. Defaults to a discarding logger.
	Logger *log.Logger

	// ClockInterval is how often due alarms are checked.
	ClockInterval time.Duration

	// DismissDelays holds the win-screen delay per challenge ID.
	DismissDelays map[string]time.Duration

	// User names the session in log lines.
	User string

	Width  int
	Height int
}

// AppModel is the top-level alarm clock: a list of alarms, a form to add
// them, the ringing screen that hosts a dismissal challenge and the history.
type AppModel struct {
	opts      AppOptions
	log       *log.Logger
	screen    appScreen
	clock     Schedule
	now       time.Time
	cursor    int
	keys      ListKeyMap
	help      help.Model
	form      FormModel
	history   HistoryModel
	challenge ChallengeModel
	ringing   alarm.Alarm
	testRing  bool // rung by hand from the list; not logged or dismissed
	err       error
	width     int
	height    int
	quitting  bool
	startCmd  tea.Cmd
}

// NewAppModel creates the app and arms its clock.
func NewAppModel(opts AppOptions) AppModel {
	if opts.ClockInterval <= 0 {
		opts.ClockInterval = defaultClockInterval
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := core.DefaultConfig()
		opts.Width, opts.Height = def.ScreenW, def.ScreenH
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.User != "" {
		logger = logger.With("user", opts.User)
	}

	m := AppModel{
		opts:   opts,
		log:    logger,
		clock:  NewSchedule(tagClock),
		now:    time.Now(),
		keys:   DefaultListKeyMap(),
		help:   help.New(),
		width:  opts.Width,
		height: opts.Height,
	}
	m.startCmd = m.clock.Every(opts.ClockInterval)
	return m
}

// Init starts the clock.
func (m AppModel) Init() tea.Cmd {
	return m.startCmd
}

// Update handles messages for the app.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, cmd
}

func (m *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case TickMsg:
		if m.clock.Accept(msg) {
			return m.handleClock(msg.At)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.screen == screenRinging {
			m.challenge.resize(msg.Width, msg.Height-bannerHeight)
		}
		if m.screen == screenHistory {
			m.history.update(msg)
		}
		return nil
	}

	switch m.screen {
	case screenForm:
		return m.updateForm(msg)
	case screenRinging:
		return m.updateRinging(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateList(msg)
	}
}

// handleClock checks for a due alarm and re-arms the clock.
func (m *AppModel) handleClock(at time.Time) tea.Cmd {
	m.now = at
	next := m.clock.Next(m.opts.ClockInterval)
	if m.screen == screenRinging {
		return next
	}

	a, ok, err := m.opts.Book.Due(at)
	if err != nil {
		m.err = err
		m.log.Error("could not mark alarm", "error", err)
		return next
	}
	if !ok {
		return next
	}
	m.log.Info("alarm ringing", "id", a.ShortID(), "time", a.Time, "challenge", a.Challenge)
	return tea.Batch(next, m.ring(a, false))
}

// ring switches to the ringing screen with a fresh challenge.
func (m *AppModel) ring(a alarm.Alarm, test bool) tea.Cmd {
	c, err := registry.Create(string(a.Challenge))
	if err != nil {
		m.err = err
		m.log.Error("cannot create challenge", "challenge", a.Challenge, "error", err)
		if !test {
			//nolint:errcheck // The alarm cannot ring without a challenge
			m.opts.Book.Dismiss(a.ID)
		}
		return nil
	}
	if ts, ok := c.(targetSetter); ok {
		ts.UseTarget(a.ShakeCount)
	}

	cfg := core.RuntimeConfig{ScreenW: m.width, ScreenH: m.height - bannerHeight}
	m.challenge = NewChallengeModel(c, cfg, ChallengeOptions{
		DismissDelay: m.opts.DismissDelays[c.ID()],
		Practice:     test,
		Store:        m.opts.Store,
	})
	m.ringing = a
	m.testRing = test
	m.screen = screenRinging
	m.err = nil
	return m.challenge.Start()
}

func (m *AppModel) updateRinging(msg tea.Msg) tea.Cmd {
	cmd := m.challenge.update(msg)

	switch {
	case m.challenge.Dismissed():
		m.finishRing(storage.OutcomeDismissed)
		return nil

	case m.challenge.Aborted():
		m.finishRing("")
		return nil

	case m.challenge.IsQuitting():
		m.finishRing(storage.OutcomeAbandoned)
		m.quitting = true
		return tea.Quit
	}
	return cmd
}

// finishRing silences the ringing alarm and logs the outcome. Test rings
// only return to the list.
func (m *AppModel) finishRing(outcome string) {
	m.challenge.Close()
	res := m.challenge.Result()
	a := m.ringing
	m.screen = screenList

	if m.testRing || outcome == "" {
		return
	}

	if _, err := m.opts.Book.Dismiss(a.ID); err != nil {
		m.err = err
		m.log.Error("could not dismiss alarm", "id", a.ShortID(), "error", err)
	}
	m.log.Info("alarm "+outcome,
		"id", a.ShortID(),
		"challenge", res.ChallengeID,
		"score", res.Score,
		"attempts", res.Attempts,
		"took", res.Duration.Round(time.Second),
	)

	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.RecordDismissal(storage.Dismissal{
		AlarmID:   a.ID,
		Label:     a.Label,
		Challenge: res.ChallengeID,
		Score:     res.Score,
		Outcome:   outcome,
		Attempts:  res.Attempts,
		Duration:  res.Duration,
	})
	if err != nil {
		m.log.Warn("could not record dismissal", "error", err)
	}
}

func (m *AppModel) updateList(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	alarms := m.opts.Book.List()
	// another session may have shrunk the shared book
	m.cursor = min(m.cursor, max(len(alarms)-1, 0))

	switch {
	case key.Matches(km, m.keys.Quit):
		m.quitting = true
		return tea.Quit

	case key.Matches(km, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(km, m.keys.Down):
		if m.cursor < len(alarms)-1 {
			m.cursor++
		}

	case key.Matches(km, m.keys.Add):
		m.form = NewFormModel()
		m.screen = screenForm
		m.err = nil
		return m.form.Init()

	case key.Matches(km, m.keys.History):
		m.history = NewHistoryModel(m.opts.Store, m.width, m.height)
		m.screen = screenHistory

	case len(alarms) == 0:
		return nil

	case key.Matches(km, m.keys.Toggle):
		a, err := m.opts.Book.Toggle(alarms[m.cursor].ID)
		m.err = err
		if err == nil {
			m.log.Info("alarm toggled", "id", a.ShortID(), "enabled", a.Enabled)
		}

	case key.Matches(km, m.keys.Delete):
		a := alarms[m.cursor]
		m.err = m.opts.Book.Delete(a.ID)
		if m.err == nil {
			m.log.Info("alarm deleted", "id", a.ShortID())
			if m.cursor >= len(alarms)-1 && m.cursor > 0 {
				m.cursor--
			}
		}

	case key.Matches(km, m.keys.Test):
		return m.ring(alarms[m.cursor], true)
	}
	return nil
}

func (m *AppModel) updateForm(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)

	switch {
	case m.form.Cancelled():
		m.screen = screenList

	case m.form.Submitted():
		a, err := m.opts.Book.Add(m.form.Draft())
		m.screen = screenList
		m.err = err
		if err == nil {
			m.cursor = m.opts.Book.Len() - 1
			m.log.Info("alarm added", "id", a.ShortID(), "time", a.Time, "challenge", a.Challenge)
		}
	}
	return cmd
}

func (m *AppModel) updateHistory(msg tea.Msg) tea.Cmd {
	cmd := m.history.update(msg)
	switch {
	case m.history.IsQuitting():
		m.quitting = true
		return tea.Quit
	case m.history.IsGoingBack():
		m.screen = screenList
		return nil
	}
	return cmd
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenForm:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.form.View())
	case screenRinging:
		return m.ringingView()
	case screenHistory:
		return m.history.View()
	default:
		return m.listView()
	}
}

func (m AppModel) ringingView() string {
	title := fmt.Sprintf("%s  %s", m.ringing.Time, m.ringing.Label)
	if m.testRing {
		title += "  (test, esc to stop)"
	}
	banner := ringingStyle.Render(title)
	return centerText(banner, m.width) + "\n\n" + m.challenge.View()
}

func (m AppModel) listView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.now.Format("15:04:05")))
	b.WriteString("\n\n")

	alarms := m.opts.Book.List()
	if len(alarms) == 0 {
		b.WriteString(mutedStyle.Italic(true).Render("No alarms yet. Press a to add one."))
		b.WriteString("\n")
	}
	for i, a := range alarms {
		state := "off"
		if a.Enabled {
			state = "on "
		}
		line := fmt.Sprintf(" %s  %-5s  %-20s %-16s %s ", a.ShortID(), a.Time, a.Label, a.Describe(), state)
		switch {
		case i == m.cursor:
			b.WriteString(selectedStyle.Render(line))
		case !a.Enabled:
			b.WriteString(mutedStyle.Render(line))
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(b.String()))
}

// Ringing reports whether an alarm is currently ringing.
func (m AppModel) Ringing() bool {
	return m.screen == screenRinging
}

// RunApp runs the alarm clock in the current terminal until the user quits.
func RunApp(opts AppOptions) error {
	model := NewAppModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if m, ok := finalModel.(AppModel); ok && m.screen == screenRinging {
		m.challenge.Close()
	}
	return err
}
