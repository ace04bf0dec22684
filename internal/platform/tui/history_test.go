package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-alarm/internal/storage"
)

func TestHistoryTabs(t *testing.T) {
	store := openStore(t)
	if _, err := store.RecordDismissal(storage.Dismissal{
		AlarmID: "a1", Label: "Gym", Challenge: "chase", Score: 300,
		Outcome: storage.OutcomeDismissed, Attempts: 2, Duration: 90 * time.Second,
	}); err != nil {
		t.Fatalf("RecordDismissal() failed: %v", err)
	}
	if _, err := store.SaveScore("chase", 300); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m := NewHistoryModel(store, 100, 30)
	if m.empty || len(m.table.Rows()) != 1 {
		t.Fatalf("dismissal tab rows = %d", len(m.table.Rows()))
	}
	if row := m.table.Rows()[0]; row[1] != "Gym" || row[2] != "Maze Chase" || row[5] != "1m30s" {
		t.Errorf("row = %v", row)
	}

	// tabs after the log follow registry order: chase, shake
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if m.tabs[m.tab].challenge != "chase" || len(m.table.Rows()) != 1 {
		t.Errorf("chase tab: %+v rows=%d", m.tabs[m.tab], len(m.table.Rows()))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if !m.empty || !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("shake tab should be empty")
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No alarms dismissed yet") {
		t.Error("history without a store should render the empty message")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0s"},
		{42 * time.Second, "42s"},
		{61 * time.Second, "1m01s"},
		{10*time.Minute + 500*time.Millisecond, "10m01s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
