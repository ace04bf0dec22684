package alarm

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name    string
		draft   Draft
		wantErr error
		check   func(t *testing.T, a Alarm)
	}{
		{
			name:  "defaults",
			draft: Draft{Time: "07:30"},
			check: func(t *testing.T, a Alarm) {
				if a.Label != DefaultLabel || a.Challenge != ChallengeShake || a.ShakeCount != DefaultShakeCount {
					t.Errorf("unexpected defaults: %+v", a)
				}
				if !a.Enabled || a.Active {
					t.Errorf("new alarm should be enabled and idle: %+v", a)
				}
				if _, err := uuid.Parse(a.ID); err != nil {
					t.Errorf("ID %q is not a UUID: %v", a.ID, err)
				}
			},
		},
		{
			name:  "normalizes time",
			draft: Draft{Time: "7:05", Challenge: "chase"},
			check: func(t *testing.T, a Alarm) {
				if a.Time != "07:05" {
					t.Errorf("Time = %q, expected 07:05", a.Time)
				}
			},
		},
		{
			name:  "pacman alias",
			draft: Draft{Time: "06:00", Challenge: "Pacman"},
			check: func(t *testing.T, a Alarm) {
				if a.Challenge != ChallengeChase {
					t.Errorf("Challenge = %q, expected chase", a.Challenge)
				}
			},
		},
		{
			name:  "chase ignores shake count range",
			draft: Draft{Time: "06:00", Challenge: "chase", ShakeCount: 99},
		},
		{name: "bad time", draft: Draft{Time: "25:00"}, wantErr: ErrInvalidTime},
		{name: "empty time", draft: Draft{}, wantErr: ErrInvalidTime},
		{name: "shake count too low", draft: Draft{Time: "06:00", ShakeCount: 4}, wantErr: ErrInvalidShakeCount},
		{name: "shake count too high", draft: Draft{Time: "06:00", ShakeCount: 51}, wantErr: ErrInvalidShakeCount},
		{name: "unknown challenge", draft: Draft{Time: "06:00", Challenge: "sudoku"}, wantErr: ErrUnknownChallenge},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := tc.draft.Validate()
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Validate() error = %v, expected %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() failed: %v", err)
			}
			if tc.check != nil {
				tc.check(t, a)
			}
		})
	}
}

func TestShortID(t *testing.T) {
	a := Alarm{ID: "1b4e28ba-2fa1-11d2-883f-0016d3cca427"}
	if a.ShortID() != "1b4e28ba" {
		t.Errorf("ShortID() = %q", a.ShortID())
	}
}
