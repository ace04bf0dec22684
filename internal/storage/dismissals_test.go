package storage

import (
	"testing"
	"time"
)

func TestStoreDismissals(t *testing.T) {
	store := openTestStore(t)

	entries := []Dismissal{
		{AlarmID: "a1", Label: "Gym", Challenge: "chase", Score: 300, Outcome: OutcomeDismissed, Attempts: 2, Duration: 90 * time.Second},
		{AlarmID: "a2", Label: "Work", Challenge: "shake", Score: 20, Outcome: OutcomeDismissed, Duration: 15 * time.Second},
		{AlarmID: "a1", Label: "Gym", Challenge: "chase", Score: 40, Outcome: OutcomeAbandoned, Attempts: 1, Duration: 30 * time.Second},
	}
	for _, d := range entries {
		if _, err := store.RecordDismissal(d); err != nil {
			t.Fatalf("RecordDismissal() failed: %v", err)
		}
	}

	recent, err := store.RecentDismissals(2)
	if err != nil {
		t.Fatalf("RecentDismissals() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].Outcome != OutcomeAbandoned || recent[1].Challenge != "shake" {
		t.Errorf("entries not newest first: %+v", recent)
	}
	if recent[1].Attempts != 1 {
		t.Errorf("zero attempts should be stored as 1, got %d", recent[1].Attempts)
	}
	if recent[0].Duration != 30*time.Second {
		t.Errorf("Duration = %v, expected 30s", recent[0].Duration)
	}

	stats, err := store.DismissalStats()
	if err != nil {
		t.Fatalf("DismissalStats() failed: %v", err)
	}
	chase := stats["chase"]
	if chase == nil || chase.Dismissals != 1 || chase.AvgAttempts != 2 {
		t.Errorf("chase stats = %+v", chase)
	}
	if chase != nil && chase.AvgDuration != 90*time.Second {
		t.Errorf("AvgDuration = %v, expected 90s", chase.AvgDuration)
	}
	if stats["shake"] == nil {
		t.Error("missing shake stats")
	}
}
