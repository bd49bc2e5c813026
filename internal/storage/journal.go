// Package storage keeps a journal of finished runs for the lifetime of the
// process. It uses an in-memory database from the pure-Go modernc.org/sqlite
// driver; nothing is written to disk.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Journal records finished runs in an in-memory SQLite database.
type Journal struct {
	db *sql.DB
}

// Run is one finished snake run.
type Run struct {
	ID      int64
	Length  int    // body length at the end
	Ticks   uint64 // ticks survived
	Outcome string // "collision" or "full"
	EndedAt time.Time
}

// Stats aggregates all recorded runs.
type Stats struct {
	Runs      int
	Best      int
	AvgLength float64
	Fulls     int
}

// Open creates an empty journal.
func Open() (*Journal, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every pooled connection to :memory: would get its own empty database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return j, nil
}

// migrate creates the schema.
func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			ended_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_length ON runs(length DESC);
	`

	_, err := j.db.Exec(schema)
	return err
}

// Close closes the database; the journal is gone afterwards.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Record stores a finished run and returns its ID.
func (j *Journal) Record(length int, ticks uint64, outcome string) (int64, error) {
	result, err := j.db.Exec(
		"INSERT INTO runs (length, ticks, outcome) VALUES (?, ?, ?)",
		length, int64(ticks), outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Top returns up to limit runs ordered by length, longest first.
func (j *Journal) Top(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := j.db.Query(
		`SELECT id, length, ticks, outcome, ended_at
		 FROM runs
		 ORDER BY length DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ticks int64
		var endedAt any
		if err := rows.Scan(&r.ID, &r.Length, &ticks, &r.Outcome, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.EndedAt = parseTime(endedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Stats returns aggregate figures over all runs.
func (j *Journal) Stats() (Stats, error) {
	var s Stats
	err := j.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(length), 0), COALESCE(AVG(length), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'full' THEN 1 ELSE 0 END), 0)
		 FROM runs`,
	).Scan(&s.Runs, &s.Best, &s.AvgLength, &s.Fulls)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return s, nil
}

// parseTime handles both time.Time and string DATETIME values.
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
