package alarm

import (
	"errors"
	"testing"
	"time"
)

// memRepo is an in-memory Repository that records calls.
type memRepo struct {
	saved   map[string]Alarm
	deleted []string
	failOn  string
}

func newMemRepo() *memRepo {
	return &memRepo{saved: make(map[string]Alarm)}
}

var errRepo = errors.New("repo failure")

func (r *memRepo) SaveAlarm(a Alarm) error {
	if r.failOn == "save" {
		return errRepo
	}
	r.saved[a.ID] = a
	return nil
}

func (r *memRepo) DeleteAlarm(id string) error {
	if r.failOn == "delete" {
		return errRepo
	}
	delete(r.saved, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *memRepo) LoadAlarms() ([]Alarm, error) {
	var out []Alarm
	for _, a := range r.saved {
		out = append(out, a)
	}
	return out, nil
}

func mustAdd(t *testing.T, b *Book, d Draft) Alarm {
	t.Helper()
	a, err := b.Add(d)
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	return a
}

func at(hh, mm, ss int) time.Time {
	return time.Date(2026, 3, 14, hh, mm, ss, 0, time.Local)
}

func TestBookAddListDelete(t *testing.T) {
	repo := newMemRepo()
	b := NewBook(repo)

	first := mustAdd(t, b, Draft{Time: "07:00"})
	second := mustAdd(t, b, Draft{Time: "08:00", Challenge: "chase"})

	list := b.List()
	if len(list) != 2 || list[0].ID != first.ID || list[1].ID != second.ID {
		t.Fatalf("List() = %+v, expected insertion order", list)
	}
	if len(repo.saved) != 2 {
		t.Errorf("expected 2 saved alarms, got %d", len(repo.saved))
	}

	if err := b.Delete(first.ShortID()); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d after delete", b.Len())
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != first.ID {
		t.Errorf("repo deletes = %v", repo.deleted)
	}

	if err := b.Delete(first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, expected ErrNotFound", err)
	}
}

func TestBookToggleAndGet(t *testing.T) {
	b := NewBook(nil)
	a := mustAdd(t, b, Draft{Time: "07:00"})

	toggled, err := b.Toggle(a.ID)
	if err != nil {
		t.Fatalf("Toggle() failed: %v", err)
	}
	if toggled.Enabled {
		t.Error("Toggle() should disable an enabled alarm")
	}

	got, err := b.Get(a.ID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.Enabled {
		t.Error("Get() should reflect the toggle")
	}

	if _, err := b.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, expected ErrNotFound", err)
	}
	if _, err := b.Get(""); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(\"\") error = %v, expected ErrNotFound", err)
	}
}

func TestBookDue(t *testing.T) {
	b := NewBook(nil)
	disabled := mustAdd(t, b, Draft{Time: "07:00", Label: "disabled"})
	if _, err := b.Toggle(disabled.ID); err != nil {
		t.Fatalf("Toggle() failed: %v", err)
	}
	target := mustAdd(t, b, Draft{Time: "07:00", Label: "target"})
	mustAdd(t, b, Draft{Time: "07:01", Label: "later"})

	if _, ok, _ := b.Due(at(6, 59, 30)); ok {
		t.Fatal("nothing should be due at 06:59")
	}

	got, ok, err := b.Due(at(7, 0, 5))
	if err != nil || !ok {
		t.Fatalf("Due() = %v, %v; expected the 07:00 alarm", ok, err)
	}
	if got.ID != target.ID {
		t.Errorf("Due() fired %q, expected %q", got.Label, "target")
	}
	if !got.Active || got.LastFired.IsZero() {
		t.Errorf("fired alarm should be active and stamped: %+v", got)
	}

	// Already active
	if _, ok, _ := b.Due(at(7, 0, 10)); ok {
		t.Error("active alarm fired twice")
	}

	// Dismissed within the same minute: no re-trigger
	if _, err := b.Dismiss(target.ID); err != nil {
		t.Fatalf("Dismiss() failed: %v", err)
	}
	if _, ok, _ := b.Due(at(7, 0, 40)); ok {
		t.Error("dismissed alarm re-fired in the same minute")
	}

	// Next day at the same time it fires again
	next := at(7, 0, 0).AddDate(0, 0, 1)
	if _, ok, _ := b.Due(next); !ok {
		t.Error("alarm should fire again the next day")
	}
}

func TestBookLoadClearsActive(t *testing.T) {
	repo := newMemRepo()
	repo.saved["a"] = Alarm{ID: "a", Time: "07:00", Enabled: true, Active: true}

	b := NewBook(repo)
	if err := b.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	a, err := b.Get("a")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if a.Active {
		t.Error("Load() should clear a stale ringing flag")
	}
}

func TestBookAmbiguousPrefix(t *testing.T) {
	b := NewBook(nil)
	b.alarms = []Alarm{{ID: "abc-1"}, {ID: "abd-2"}}

	if _, err := b.Get("ab"); !errors.Is(err, ErrAmbiguous) {
		t.Errorf("Get() error = %v, expected ErrAmbiguous", err)
	}
	if a, err := b.Get("abd"); err != nil || a.ID != "abd-2" {
		t.Errorf("Get(abd) = %v, %v", a.ID, err)
	}
}

func TestBookRepositoryErrors(t *testing.T) {
	repo := newMemRepo()
	b := NewBook(repo)
	a := mustAdd(t, b, Draft{Time: "07:00"})

	repo.failOn = "save"
	if _, err := b.Add(Draft{Time: "08:00"}); !errors.Is(err, errRepo) {
		t.Errorf("Add() error = %v, expected wrapped repo error", err)
	}
	if b.Len() != 1 {
		t.Error("failed Add() should not change the book")
	}
	if _, err := b.Toggle(a.ID); !errors.Is(err, errRepo) {
		t.Errorf("Toggle() error = %v", err)
	}
	if got, _ := b.Get(a.ID); !got.Enabled {
		t.Error("failed Toggle() should not change the alarm")
	}

	repo.failOn = "delete"
	if err := b.Delete(a.ID); !errors.Is(err, errRepo) {
		t.Errorf("Delete() error = %v", err)
	}
}
