// Package storage provides SQLite-based persistence for alarms, challenge
// scores and the dismissal log.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SSH sessions share one store, so writers wait on the lock instead of
// failing with SQLITE_BUSY.
const pragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// migrations are applied in order; PRAGMA user_version records how many ran.
var migrations = []string{
	`CREATE TABLE scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		challenge TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX idx_scores_top ON scores(challenge, score DESC);`,

	`CREATE TABLE alarms (
		id TEXT PRIMARY KEY,
		time TEXT NOT NULL,
		label TEXT NOT NULL,
		challenge TEXT NOT NULL,
		shake_count INTEGER NOT NULL DEFAULT 20,
		enabled INTEGER NOT NULL DEFAULT 1,
		active INTEGER NOT NULL DEFAULT 0,
		last_fired TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`,

	`CREATE TABLE dismissals (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		alarm_id TEXT NOT NULL,
		label TEXT NOT NULL,
		challenge TEXT NOT NULL,
		score INTEGER NOT NULL DEFAULT 0,
		outcome TEXT NOT NULL,
		attempts INTEGER NOT NULL DEFAULT 1,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX idx_dismissals_alarm_id ON dismissals(alarm_id);`,
}

// Store is the application database. It is safe for concurrent use.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens the database at dbPath, creating parent
// directories and applying pending migrations. A leading ~ is expanded.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", "file:"+dbPath+pragmas)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return s, nil
}

// Path returns the expanded database path.
func (s *Store) Path() string {
	return s.path
}

// ExpandPath replaces a leading ~ with the home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// schemaVersion reports how many migrations have been applied.
func (s *Store) schemaVersion() (int, error) {
	var v int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&v)
	return v, err
}

// migrate runs every migration newer than the stored version, each in its
// own transaction.
func (s *Store) migrate() error {
	version, err := s.schemaVersion()
	if err != nil {
		return err
	}

	for i := version; i < len(migrations); i++ {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(migrations[i]); err != nil {
			tx.Rollback()
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		// PRAGMA does not take bind parameters
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			tx.Rollback()
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// parseTimestamp handles DATETIME columns, which the driver may return as
// either time.Time or string. CURRENT_TIMESTAMP is UTC.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.ParseInLocation(time.DateTime, v, time.UTC); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
