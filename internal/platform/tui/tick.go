// Package tui provides the Bubble Tea integration for the alarm clock.
// It handles the terminal UI loop, input mapping, scheduling and challenge
// orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is delivered when a Schedule fires.
type TickMsg struct {
	Tag string
	Gen uint64
	At  time.Time
}

// Schedule is a cancelable timer driven by tea.Tick. Every arm bumps a
// generation counter; messages from an older generation are rejected by
// Accept, so Cancel takes effect even when a tick is already in flight.
type Schedule struct {
	tag     string
	gen     uint64
	live    bool
	oneShot bool
}

// NewSchedule creates an idle schedule whose messages carry tag.
func NewSchedule(tag string) Schedule {
	return Schedule{tag: tag}
}

// Every arms a periodic schedule. The first message arrives after d; call
// Next after each accepted message to keep it running.
func (s *Schedule) Every(d time.Duration) tea.Cmd {
	s.gen++
	s.live = true
	s.oneShot = false
	return s.cmd(d)
}

// After arms a one-shot schedule.
func (s *Schedule) After(d time.Duration) tea.Cmd {
	s.gen++
	s.live = true
	s.oneShot = true
	return s.cmd(d)
}

// Next re-arms a live periodic schedule for another period d without
// changing its generation. It returns nil once the schedule is cancelled.
func (s *Schedule) Next(d time.Duration) tea.Cmd {
	if !s.live || s.oneShot {
		return nil
	}
	return s.cmd(d)
}

// Cancel stops the schedule. Pending messages are dropped by Accept.
func (s *Schedule) Cancel() {
	s.gen++
	s.live = false
}

// Live reports whether the schedule is armed.
func (s *Schedule) Live() bool {
	return s.live
}

// Accept reports whether msg belongs to the current arm of this schedule.
// Accepting a one-shot message disarms it.
func (s *Schedule) Accept(msg TickMsg) bool {
	if !s.live || msg.Tag != s.tag || msg.Gen != s.gen {
		return false
	}
	if s.oneShot {
		s.live = false
	}
	return true
}

func (s *Schedule) cmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = time.Millisecond
	}
	tag, gen := s.tag, s.gen
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Tag: tag, Gen: gen, At: t}
	})
}
