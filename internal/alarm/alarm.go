// Package alarm holds the alarm book: scheduled alarms, the challenge each
// one requires and the minute-resolution trigger check.
package alarm

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimeLayout is the 24h wall-clock format alarms are set in.
const TimeLayout = "15:04"

const (
	DefaultLabel      = "Wake up!"
	DefaultShakeCount = 20
	MinShakeCount     = 5
	MaxShakeCount     = 50
)

var (
	ErrInvalidTime       = errors.New("alarm: time must be HH:MM (24h)")
	ErrInvalidShakeCount = fmt.Errorf("alarm: shake count must be between %d and %d", MinShakeCount, MaxShakeCount)
	ErrUnknownChallenge  = errors.New("alarm: unknown challenge")
	ErrNotFound          = errors.New("alarm: not found")
	ErrAmbiguous         = errors.New("alarm: id prefix matches more than one alarm")
)

// ChallengeType selects the task that dismisses a ringing alarm.
type ChallengeType string

const (
	ChallengeShake ChallengeType = "shake"
	ChallengeChase ChallengeType = "chase"
)

// ParseChallenge accepts a challenge name. "pacman" is kept as an alias of
// chase.
func ParseChallenge(s string) (ChallengeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "shake":
		return ChallengeShake, nil
	case "chase", "pacman", "maze":
		return ChallengeChase, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChallenge, s)
}

// Title returns a human-readable name.
func (c ChallengeType) Title() string {
	switch c {
	case ChallengeChase:
		return "Maze Chase"
	case ChallengeShake:
		return "Shake Counter"
	}
	return string(c)
}

// Alarm is one scheduled alarm.
type Alarm struct {
	ID         string
	Time       string // HH:MM
	Label      string
	Challenge  ChallengeType
	ShakeCount int
	Enabled    bool
	Active     bool      // ringing, waiting for its challenge
	LastFired  time.Time // zero if never fired
}

// ShortID returns the first block of the UUID for display.
func (a Alarm) ShortID() string {
	if i := strings.IndexByte(a.ID, '-'); i > 0 {
		return a.ID[:i]
	}
	return a.ID
}

// Describe returns the challenge summary shown in lists.
func (a Alarm) Describe() string {
	if a.Challenge == ChallengeShake {
		return fmt.Sprintf("Shake %d times", a.ShakeCount)
	}
	return "Clear the maze"
}

// firedIn reports whether the alarm already fired during now's minute.
func (a Alarm) firedIn(now time.Time) bool {
	if a.LastFired.IsZero() {
		return false
	}
	const minute = "2006-01-02 15:04"
	return a.LastFired.In(now.Location()).Format(minute) == now.Format(minute)
}

// Draft is the user input for a new alarm.
type Draft struct {
	Time       string
	Label      string
	Challenge  string
	ShakeCount int
}

// Validate normalizes the draft into an enabled alarm with a fresh ID.
func (d Draft) Validate() (Alarm, error) {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(d.Time))
	if err != nil {
		return Alarm{}, fmt.Errorf("%w: %q", ErrInvalidTime, d.Time)
	}

	challenge, err := ParseChallenge(d.Challenge)
	if err != nil {
		return Alarm{}, err
	}

	count := d.ShakeCount
	if count == 0 {
		count = DefaultShakeCount
	}
	if challenge == ChallengeShake && (count < MinShakeCount || count > MaxShakeCount) {
		return Alarm{}, fmt.Errorf("%w: got %d", ErrInvalidShakeCount, count)
	}

	label := strings.TrimSpace(d.Label)
	if label == "" {
		label = DefaultLabel
	}

	return Alarm{
		ID:         uuid.NewString(),
		Time:       t.Format(TimeLayout),
		Label:      label,
		Challenge:  challenge,
		ShakeCount: count,
		Enabled:    true,
	}, nil
}
