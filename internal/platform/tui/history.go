package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-alarm/internal/registry"
	"github.com/vovakirdan/tui-alarm/internal/storage"
)

const (
	historyLimit  = 100 // rows loaded per tab
	historyChrome = 8   // title, tabs, help and borders
)

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev tab"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// historyTab is either the dismissal log (empty challenge) or one
// challenge's score table.
type historyTab struct {
	challenge string
	title     string
}

// HistoryModel shows the dismissal log and per-challenge high scores.
type HistoryModel struct {
	store      *storage.Store
	tabs       []historyTab
	tab        int
	table      table.Model
	help       help.Model
	keys       HistoryKeyMap
	err        error
	empty      bool
	width      int
	height     int
	quitting   bool
	goingBack  bool
	standalone bool
}

// NewHistoryModel creates a history screen backed by store, which may be nil.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	tabs := []historyTab{{title: "Dismissals"}}
	for _, c := range registry.List() {
		tabs = append(tabs, historyTab{challenge: c.ID, title: c.Title})
	}

	m := HistoryModel{
		store:  store,
		tabs:   tabs,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

func (m *HistoryModel) reload() {
	cur := m.tabs[m.tab]
	var (
		columns []table.Column
		rows    []table.Row
	)

	if cur.challenge == "" {
		columns = []table.Column{
			{Title: "When", Width: 13},
			{Title: "Alarm", Width: 18},
			{Title: "Challenge", Width: 12},
			{Title: "Result", Width: 10},
			{Title: "Tries", Width: 5},
			{Title: "Took", Width: 7},
		}
		if m.store != nil {
			var entries []storage.Dismissal
			entries, m.err = m.store.RecentDismissals(historyLimit)
			for _, d := range entries {
				rows = append(rows, table.Row{
					d.CreatedAt.Local().Format("Jan 02 15:04"),
					d.Label,
					registry.Title(d.Challenge),
					d.Outcome,
					fmt.Sprintf("%d", d.Attempts),
					formatDuration(d.Duration),
				})
			}
		}
	} else {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 18},
		}
		if m.store != nil {
			var scores []storage.ScoreEntry
			scores, m.err = m.store.TopScores(cur.challenge, historyLimit)
			for i, s := range scores {
				rows = append(rows, table.Row{
					fmt.Sprintf("#%d", i+1),
					fmt.Sprintf("%d", s.Score),
					s.CreatedAt.Local().Format("Jan 02 15:04"),
				})
			}
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-historyChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m.table = t
	m.empty = len(rows) == 0
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, cmd
}

func (m *HistoryModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m.exit()

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m.exit()

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % len(m.tabs)
			m.reload()
			return nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab - 1 + len(m.tabs)) % len(m.tabs)
			m.reload()
			return nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.reload()
		return nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return cmd
}

func (m *HistoryModel) exit() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText("HISTORY", m.width)))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.tab {
			tabs[i] = selectedStyle.Padding(0, 1).Render(t.title)
		} else {
			tabs[i] = mutedStyle.Render(" " + t.title + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	var content string
	switch {
	case m.err != nil:
		content = errorStyle.Render(m.err.Error())
	case m.empty && m.tab == 0:
		content = mutedStyle.Italic(true).Padding(2, 4).
			Render("No alarms dismissed yet.")
	case m.empty:
		content = mutedStyle.Italic(true).Padding(2, 4).
			Render("No scores recorded yet.\nPractice with `alarm play` to set one!")
	default:
		content = m.table.View()
	}
	b.WriteString(centerText(boxStyle.Render(content), m.width))

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if the user wants to return to the alarm list.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen as its own program.
func RunHistory(store *storage.Store, width, height int) error {
	model := NewHistoryModel(store, width, height)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
}
