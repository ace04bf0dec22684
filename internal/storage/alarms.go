package storage

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-alarm/internal/alarm"
)

// SaveAlarm inserts or updates an alarm by ID.
func (s *Store) SaveAlarm(a alarm.Alarm) error {
	var lastFired string
	if !a.LastFired.IsZero() {
		lastFired = a.LastFired.Format(time.RFC3339Nano)
	}

	_, err := s.db.Exec(
		`INSERT INTO alarms (id, time, label, challenge, shake_count, enabled, active, last_fired)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			time = excluded.time,
			label = excluded.label,
			challenge = excluded.challenge,
			shake_count = excluded.shake_count,
			enabled = excluded.enabled,
			active = excluded.active,
			last_fired = excluded.last_fired`,
		a.ID, a.Time, a.Label, string(a.Challenge), a.ShakeCount, a.Enabled, a.Active, lastFired,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save alarm: %w", err)
	}
	return nil
}

// DeleteAlarm removes an alarm. Deleting a missing ID is not an error.
func (s *Store) DeleteAlarm(id string) error {
	if _, err := s.db.Exec("DELETE FROM alarms WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete alarm: %w", err)
	}
	return nil
}

// LoadAlarms returns every alarm in insertion order.
func (s *Store) LoadAlarms() ([]alarm.Alarm, error) {
	rows, err := s.db.Query(
		`SELECT id, time, label, challenge, shake_count, enabled, active, last_fired
		 FROM alarms
		 ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query alarms: %w", err)
	}
	defer rows.Close()

	var alarms []alarm.Alarm
	for rows.Next() {
		var a alarm.Alarm
		var challenge, lastFired string
		if err := rows.Scan(&a.ID, &a.Time, &a.Label, &challenge, &a.ShakeCount, &a.Enabled, &a.Active, &lastFired); err != nil {
			return nil, fmt.Errorf("storage: cannot scan alarm: %w", err)
		}
		a.Challenge = alarm.ChallengeType(challenge)
		if lastFired != "" {
			if t, err := time.Parse(time.RFC3339Nano, lastFired); err == nil {
				a.LastFired = t
			}
		}
		alarms = append(alarms, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return alarms, nil
}

// Ensure Store implements alarm.Repository
var _ alarm.Repository = (*Store)(nil)
