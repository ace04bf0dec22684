package storage

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-alarm/internal/alarm"
)

func TestStoreAlarmRoundTrip(t *testing.T) {
	store := openTestStore(t)

	fired := time.Date(2026, 3, 14, 7, 0, 5, 0, time.UTC)
	first := alarm.Alarm{
		ID: "a1", Time: "07:00", Label: "Gym", Challenge: alarm.ChallengeChase,
		ShakeCount: 20, Enabled: true, Active: true, LastFired: fired,
	}
	second := alarm.Alarm{
		ID: "a2", Time: "08:30", Label: "Work", Challenge: alarm.ChallengeShake,
		ShakeCount: 35,
	}

	for _, a := range []alarm.Alarm{first, second} {
		if err := store.SaveAlarm(a); err != nil {
			t.Fatalf("SaveAlarm() failed: %v", err)
		}
	}

	loaded, err := store.LoadAlarms()
	if err != nil {
		t.Fatalf("LoadAlarms() failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 alarms, got %d", len(loaded))
	}

	got := loaded[0]
	if got.ID != "a1" || got.Label != "Gym" || got.Challenge != alarm.ChallengeChase || !got.Enabled || !got.Active {
		t.Errorf("first alarm = %+v", got)
	}
	if !got.LastFired.Equal(fired) {
		t.Errorf("LastFired = %v, expected %v", got.LastFired, fired)
	}
	if loaded[1].ShakeCount != 35 || loaded[1].Enabled || !loaded[1].LastFired.IsZero() {
		t.Errorf("second alarm = %+v", loaded[1])
	}
}

func TestStoreAlarmUpdateKeepsOrder(t *testing.T) {
	store := openTestStore(t)

	store.SaveAlarm(alarm.Alarm{ID: "a1", Time: "07:00", Label: "one", Challenge: alarm.ChallengeShake})
	store.SaveAlarm(alarm.Alarm{ID: "a2", Time: "08:00", Label: "two", Challenge: alarm.ChallengeShake})
	if err := store.SaveAlarm(alarm.Alarm{ID: "a1", Time: "06:45", Label: "one", Challenge: alarm.ChallengeShake, Enabled: true}); err != nil {
		t.Fatalf("SaveAlarm() update failed: %v", err)
	}

	loaded, _ := store.LoadAlarms()
	if len(loaded) != 2 {
		t.Fatalf("update should not insert, got %d alarms", len(loaded))
	}
	if loaded[0].ID != "a1" || loaded[0].Time != "06:45" || !loaded[0].Enabled {
		t.Errorf("updated alarm = %+v", loaded[0])
	}

	if err := store.DeleteAlarm("a1"); err != nil {
		t.Fatalf("DeleteAlarm() failed: %v", err)
	}
	if err := store.DeleteAlarm("missing"); err != nil {
		t.Errorf("DeleteAlarm() of missing id failed: %v", err)
	}
	loaded, _ = store.LoadAlarms()
	if len(loaded) != 1 || loaded[0].ID != "a2" {
		t.Errorf("after delete = %+v", loaded)
	}
}

func TestStoreBackedBook(t *testing.T) {
	store := openTestStore(t)

	book := alarm.NewBook(store)
	a, err := book.Add(alarm.Draft{Time: "07:15", Challenge: "pacman"})
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if _, ok, err := book.Due(time.Date(2026, 3, 14, 7, 15, 0, 0, time.Local)); !ok || err != nil {
		t.Fatalf("Due() = %v, %v", ok, err)
	}

	reloaded := alarm.NewBook(store)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	got, err := reloaded.Get(a.ID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.Challenge != alarm.ChallengeChase || got.LastFired.IsZero() {
		t.Errorf("reloaded alarm = %+v", got)
	}
	if got.Active {
		t.Error("reload should clear the ringing flag")
	}
}
