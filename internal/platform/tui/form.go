package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-alarm/internal/alarm"
)

const (
	fieldTime = iota
	fieldLabel
	fieldShakes
	fieldCount
)

var formChallenges = []alarm.ChallengeType{alarm.ChallengeShake, alarm.ChallengeChase}

// FormModel collects a new alarm.
type FormModel struct {
	inputs    [fieldCount]textinput.Model
	focus     int
	challenge int // index into formChallenges
	keys      FormKeyMap
	help      help.Model
	err       error
	submitted bool
	cancelled bool
}

// NewFormModel creates an empty form with the time field focused.
func NewFormModel() FormModel {
	var inputs [fieldCount]textinput.Model

	inputs[fieldTime] = textinput.New()
	inputs[fieldTime].Placeholder = "07:00"
	inputs[fieldTime].CharLimit = 5
	inputs[fieldTime].Width = 8
	inputs[fieldTime].Prompt = "Time      "

	inputs[fieldLabel] = textinput.New()
	inputs[fieldLabel].Placeholder = alarm.DefaultLabel
	inputs[fieldLabel].CharLimit = 40
	inputs[fieldLabel].Width = 30
	inputs[fieldLabel].Prompt = "Label     "

	inputs[fieldShakes] = textinput.New()
	inputs[fieldShakes].Placeholder = strconv.Itoa(alarm.DefaultShakeCount)
	inputs[fieldShakes].CharLimit = 2
	inputs[fieldShakes].Width = 4
	inputs[fieldShakes].Prompt = "Shakes    "

	inputs[fieldTime].Focus()

	return FormModel{
		inputs: inputs,
		keys:   DefaultFormKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the form.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the form.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, nil

		case key.Matches(msg, m.keys.Save):
			if _, err := m.Draft().Validate(); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.submitted = true
			return m, nil

		case key.Matches(msg, m.keys.Challenge):
			m.challenge = (m.challenge + 1) % len(formChallenges)
			return m, nil

		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus(m.focus + 1)

		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus(m.focus - 1)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setFocus moves focus, skipping the shake count for chase alarms.
func (m *FormModel) setFocus(i int) tea.Cmd {
	n := fieldCount
	if formChallenges[m.challenge] != alarm.ChallengeShake {
		n = fieldShakes
	}
	i = ((i % n) + n) % n

	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// Draft returns the form contents.
func (m FormModel) Draft() alarm.Draft {
	d := alarm.Draft{
		Time:      m.inputs[fieldTime].Value(),
		Label:     m.inputs[fieldLabel].Value(),
		Challenge: string(formChallenges[m.challenge]),
	}
	if s := strings.TrimSpace(m.inputs[fieldShakes].Value()); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			n = -1 // rejected by Validate
		}
		d.ShakeCount = n
	}
	return d
}

// Submitted reports whether the user saved a valid draft.
func (m FormModel) Submitted() bool {
	return m.submitted
}

// Cancelled reports whether the user backed out.
func (m FormModel) Cancelled() bool {
	return m.cancelled
}

// View renders the form.
func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("New alarm"))
	b.WriteString("\n\n")
	b.WriteString(m.inputs[fieldTime].View())
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldLabel].View())
	b.WriteString("\n")

	b.WriteString("Challenge ")
	for i, c := range formChallenges {
		name := " " + c.Title() + " "
		if i == m.challenge {
			b.WriteString(selectedStyle.Render(name))
		} else {
			b.WriteString(mutedStyle.Render(name))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")

	if formChallenges[m.challenge] == alarm.ChallengeShake {
		b.WriteString(m.inputs[fieldShakes].View())
		b.WriteString(mutedStyle.Render("  (5-50)"))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return boxStyle.Render(b.String())
}
