package alarm

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// Repository persists alarms. The SQLite store implements it.
type Repository interface {
	SaveAlarm(a Alarm) error
	DeleteAlarm(id string) error
	LoadAlarms() ([]Alarm, error)
}

// Book is the ordered set of alarms. Mutations are written through to the
// repository when one is attached.
type Book struct {
	mu     sync.Mutex
	alarms []Alarm
	repo   Repository
}

// NewBook creates an empty book. repo may be nil for an in-memory book.
func NewBook(repo Repository) *Book {
	return &Book{repo: repo}
}

// Load replaces the book's contents with the repository's alarms. A ringing
// flag left over from a previous run is cleared.
func (b *Book) Load() error {
	if b.repo == nil {
		return nil
	}
	alarms, err := b.repo.LoadAlarms()
	if err != nil {
		return fmt.Errorf("alarm: cannot load: %w", err)
	}
	for i := range alarms {
		alarms[i].Active = false
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.alarms = alarms
	return nil
}

// Add validates the draft and appends the new alarm.
func (b *Book) Add(d Draft) (Alarm, error) {
	a, err := d.Validate()
	if err != nil {
		return Alarm{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.save(a); err != nil {
		return Alarm{}, err
	}
	b.alarms = append(b.alarms, a)
	return a, nil
}

// List returns a copy of all alarms in insertion order.
func (b *Book) List() []Alarm {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.alarms)
}

// Len returns the number of alarms.
func (b *Book) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.alarms)
}

// Get returns the alarm with the given ID or unique ID prefix.
func (b *Book) Get(ref string) (Alarm, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i, err := b.index(ref)
	if err != nil {
		return Alarm{}, err
	}
	return b.alarms[i], nil
}

// Toggle flips the enabled flag.
func (b *Book) Toggle(ref string) (Alarm, error) {
	return b.update(ref, func(a *Alarm) { a.Enabled = !a.Enabled })
}

// Dismiss clears the ringing flag once the challenge is done.
func (b *Book) Dismiss(ref string) (Alarm, error) {
	return b.update(ref, func(a *Alarm) { a.Active = false })
}

// Delete removes the alarm.
func (b *Book) Delete(ref string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	i, err := b.index(ref)
	if err != nil {
		return err
	}
	if b.repo != nil {
		if err := b.repo.DeleteAlarm(b.alarms[i].ID); err != nil {
			return fmt.Errorf("alarm: cannot delete: %w", err)
		}
	}
	b.alarms = slices.Delete(b.alarms, i, i+1)
	return nil
}

// Due returns the first enabled, idle alarm set for now's HH:MM that has not
// already fired during this minute. The alarm is marked active and stamped
// before it is returned.
func (b *Book) Due(now time.Time) (Alarm, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	hhmm := now.Format(TimeLayout)
	for i := range b.alarms {
		a := b.alarms[i]
		if !a.Enabled || a.Active || a.Time != hhmm || a.firedIn(now) {
			continue
		}
		a.Active = true
		a.LastFired = now
		if err := b.save(a); err != nil {
			return Alarm{}, false, err
		}
		b.alarms[i] = a
		return a, true, nil
	}
	return Alarm{}, false, nil
}

func (b *Book) update(ref string, fn func(*Alarm)) (Alarm, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i, err := b.index(ref)
	if err != nil {
		return Alarm{}, err
	}
	a := b.alarms[i]
	fn(&a)
	if err := b.save(a); err != nil {
		return Alarm{}, err
	}
	b.alarms[i] = a
	return a, nil
}

func (b *Book) save(a Alarm) error {
	if b.repo == nil {
		return nil
	}
	if err := b.repo.SaveAlarm(a); err != nil {
		return fmt.Errorf("alarm: cannot save: %w", err)
	}
	return nil
}

// index resolves an exact ID or a unique prefix. Caller holds mu.
func (b *Book) index(ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return -1, ErrNotFound
	}
	found := -1
	for i, a := range b.alarms {
		if a.ID == ref {
			return i, nil
		}
		if strings.HasPrefix(a.ID, ref) {
			if found >= 0 {
				return -1, fmt.Errorf("%w: %q", ErrAmbiguous, ref)
			}
			found = i
		}
	}
	if found < 0 {
		return -1, fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	return found, nil
}
