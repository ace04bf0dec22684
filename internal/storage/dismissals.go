package storage

import (
	"fmt"
	"time"
)

// Outcomes recorded in the dismissal log.
const (
	OutcomeDismissed = "dismissed"
	OutcomeAbandoned = "abandoned"
)

// Dismissal records how a ringing alarm ended.
type Dismissal struct {
	ID        int64
	AlarmID   string
	Label     string
	Challenge string
	Score     int
	Outcome   string
	Attempts  int // runs played, including restarts after a loss
	Duration  time.Duration
	CreatedAt time.Time
}

// RecordDismissal appends an entry to the dismissal log.
// Returns the ID of the inserted record.
func (s *Store) RecordDismissal(d Dismissal) (int64, error) {
	if d.Attempts <= 0 {
		d.Attempts = 1
	}
	result, err := s.db.Exec(
		`INSERT INTO dismissals (alarm_id, label, challenge, score, outcome, attempts, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.AlarmID, d.Label, d.Challenge, d.Score, d.Outcome, d.Attempts, d.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record dismissal: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentDismissals returns the newest log entries first.
func (s *Store) RecentDismissals(limit int) ([]Dismissal, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, alarm_id, label, challenge, score, outcome, attempts, duration_ms, created_at
		 FROM dismissals
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query dismissals: %w", err)
	}
	defer rows.Close()

	var out []Dismissal
	for rows.Next() {
		var d Dismissal
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&d.ID, &d.AlarmID, &d.Label, &d.Challenge, &d.Score, &d.Outcome, &d.Attempts, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan dismissal: %w", err)
		}
		d.Duration = time.Duration(durationMS) * time.Millisecond
		d.CreatedAt = parseTimestamp(createdAt)
		out = append(out, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// ChallengeStats contains aggregated dismissal statistics for a challenge.
type ChallengeStats struct {
	Challenge   string
	Dismissals  int
	AvgAttempts float64
	AvgDuration time.Duration
	LastAt      time.Time
}

// DismissalStats aggregates the log per challenge.
func (s *Store) DismissalStats() (map[string]*ChallengeStats, error) {
	rows, err := s.db.Query(
		`SELECT challenge, COUNT(*), AVG(attempts), AVG(duration_ms), MAX(created_at)
		 FROM dismissals
		 WHERE outcome = ?
		 GROUP BY challenge`,
		OutcomeDismissed,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get dismissal stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ChallengeStats)
	for rows.Next() {
		var cs ChallengeStats
		var avgMS float64
		var lastAt any
		if err := rows.Scan(&cs.Challenge, &cs.Dismissals, &cs.AvgAttempts, &avgMS, &lastAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		cs.AvgDuration = time.Duration(avgMS * float64(time.Millisecond))
		cs.LastAt = parseTimestamp(lastAt)
		stats[cs.Challenge] = &cs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
