// Package storage keeps the run history in SQLite through the pure-Go
// modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store manages the history database connection.
type Store struct {
	db *sql.DB
}

// LevelResult is one finished level of a run.
type LevelResult struct {
	ID         int64
	RunID      string
	Level      int
	Score      int
	TimeLeft   time.Duration
	FinishedAt time.Time
}

// RunTotal is the summed score of a run.
type RunTotal struct {
	RunID    string
	Levels   int
	Score    int
	LastPlay time.Time
}

// DefaultPath is where the CLI keeps the history unless told otherwise.
const DefaultPath = "~/.nightfall/history.db"

// Open creates or opens the database at dbPath, creating parent
// directories and running migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS level_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			level INTEGER NOT NULL,
			score INTEGER NOT NULL,
			time_left_ms INTEGER NOT NULL DEFAULT 0,
			finished_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_level_results_run ON level_results(run_id);
		CREATE INDEX IF NOT EXISTS idx_level_results_top ON level_results(level, score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordLevel stores a finished level and returns its row id.
func (s *Store) RecordLevel(r LevelResult) (int64, error) {
	if r.RunID == "" {
		return 0, fmt.Errorf("storage: level result has no run id")
	}
	res, err := s.db.Exec(
		"INSERT INTO level_results (run_id, level, score, time_left_ms) VALUES (?, ?, ?, ?)",
		r.RunID, r.Level, r.Score, r.TimeLeft.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record level: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopLevelScores returns the best results for one level, highest first.
// A negative level returns the best results across all levels.
func (s *Store) TopLevelScores(level, limit int) ([]LevelResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, level, score, time_left_ms, finished_at
		 FROM level_results
		 WHERE ? < 0 OR level = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		level, level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level results: %w", err)
	}
	defer rows.Close()

	var results []LevelResult
	for rows.Next() {
		var r LevelResult
		var timeLeftMS int64
		var finishedAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.Level, &r.Score, &timeLeftMS, &finishedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.TimeLeft = time.Duration(timeLeftMS) * time.Millisecond
		r.FinishedAt = parseTime(finishedAt)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// TopRuns returns runs ordered by their summed level scores.
func (s *Store) TopRuns(limit int) ([]RunTotal, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT run_id, COUNT(*), SUM(score), MAX(finished_at)
		 FROM level_results
		 GROUP BY run_id
		 ORDER BY SUM(score) DESC, MIN(id) ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunTotal
	for rows.Next() {
		var r RunTotal
		var last any
		if err := rows.Scan(&r.RunID, &r.Levels, &r.Score, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.LastPlay = parseTime(last)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTime handles the driver returning either time.Time or text for
// DATETIME columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
