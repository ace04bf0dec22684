package storage

import (
	"fmt"
	"time"
)

// ScoreEntry is one finished challenge run.
type ScoreEntry struct {
	ID        int64
	Challenge string
	Score     int
	CreatedAt time.Time
}

// SaveScore records a run's score and returns its row ID.
func (s *Store) SaveScore(challenge string, score int) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO scores (challenge, score) VALUES (?, ?)`, challenge, score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns up to limit scores for the challenge, best first. Ties
// keep the earlier run first.
func (s *Store) TopScores(challenge string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, challenge, score, created_at
		 FROM scores
		 WHERE challenge = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		challenge, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var (
			e         ScoreEntry
			createdAt any
		)
		if err := rows.Scan(&e.ID, &e.Challenge, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan score: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// HighScore returns the best score for the challenge, or 0.
func (s *Store) HighScore(challenge string) (int, error) {
	var high int
	err := s.db.QueryRow(
		`SELECT COALESCE(MAX(score), 0) FROM scores WHERE challenge = ?`,
		challenge,
	).Scan(&high)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return high, nil
}

// ClearScores deletes every score for the challenge.
func (s *Store) ClearScores(challenge string) error {
	if _, err := s.db.Exec(`DELETE FROM scores WHERE challenge = ?`, challenge); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
