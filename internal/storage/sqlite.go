// Package storage keeps the per-session run log in an in-memory SQLite
// database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing is written to disk; the log is discarded on Close.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-twinblade/internal/core"
)

// Store manages the SQLite connection for the run log.
type Store struct {
	db      *sql.DB
	session string
}

// Outcome values stored with a run.
const (
	OutcomeVictory   = "victory"
	OutcomeDefeat    = "defeat"
	OutcomeAbandoned = "abandoned"
)

// Run is one attempt at a level.
type Run struct {
	ID          int64
	Attempt     int
	LevelID     string
	LevelIndex  int
	Seed        int64
	Outcome     string
	Score       int
	Ticks       uint64
	Kills       int
	DamageTaken int
	Gems        int
	CreatedAt   time.Time
}

// SessionStats aggregates every run in the log.
type SessionStats struct {
	Runs        int
	Victories   int
	Defeats     int
	Kills       int
	DamageTaken int
	BestScore   int
}

// OpenMemory creates an empty in-memory run log.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, session: uuid.NewString()}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// Session returns the random ID of this log, used to correlate log lines.
func (s *Store) Session() string {
	return s.session
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			attempt INTEGER NOT NULL DEFAULT 0,
			level_id TEXT NOT NULL,
			level_index INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			kills INTEGER NOT NULL DEFAULT 0,
			damage_taken INTEGER NOT NULL DEFAULT 0,
			gems INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level_id, score DESC);

		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			attempt INTEGER NOT NULL,
			tick INTEGER NOT NULL,
			kind TEXT NOT NULL,
			subject TEXT NOT NULL DEFAULT '',
			value INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_events_attempt ON events(attempt, kind);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection and drops the log.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished or abandoned run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	switch r.Outcome {
	case OutcomeVictory, OutcomeDefeat, OutcomeAbandoned:
	default:
		return 0, fmt.Errorf("storage: unknown outcome %q", r.Outcome)
	}

	ticks := int64(r.Ticks) //#nosec G115 -- tick counts fit in int64
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (attempt, level_id, level_index, seed, outcome, score, ticks, kills, damage_taken, gems)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Attempt, r.LevelID, r.LevelIndex, r.Seed, r.Outcome, r.Score,
		ticks, r.Kills, r.DamageTaken, r.Gems,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRuns returns the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, attempt, level_id, level_index, seed, outcome, score, ticks, kills, damage_taken, gems, created_at
		 FROM runs
		 ORDER BY id DESC
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
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Attempt, &r.LevelID, &r.LevelIndex, &r.Seed, &r.Outcome, &r.Score,
			&ticks, &r.Kills, &r.DamageTaken, &r.Gems, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks) //#nosec G115 -- stored from a uint64
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Journal appends one tick's events to the log under the given attempt.
// Pure text events are skipped.
func (s *Store) Journal(attempt int, events []core.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin journal: %w", err)
	}
	stmt, err := tx.Prepare(
		`INSERT INTO events (attempt, tick, kind, subject, value) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("storage: cannot prepare journal: %w", err)
	}
	defer stmt.Close()

	for _, e := range events {
		if e.Kind == core.EventText {
			continue
		}
		tick := int64(e.Tick) //#nosec G115 -- tick counts fit in int64
		if _, err := stmt.Exec(attempt, tick, e.Kind.String(), e.Subject, e.Value); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: cannot journal event: %w", err)
		}
	}
	return tx.Commit()
}

// KillsByKind counts enemy kills per enemy kind for one attempt.
func (s *Store) KillsByKind(attempt int) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT subject, COUNT(*) FROM events
		 WHERE attempt = ? AND kind = ?
		 GROUP BY subject`,
		attempt, core.EventEnemyKilled.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query kills: %w", err)
	}
	defer rows.Close()

	kills := make(map[string]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		kills[kind] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return kills, nil
}

// BestScore returns the highest score recorded on a level.
// Returns 0 if the level has no runs.
func (s *Store) BestScore(levelID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE level_id = ?",
		levelID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats aggregates the whole log.
func (s *Store) Stats() (*SessionStats, error) {
	stats := &SessionStats{}
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'victory'), 0),
		        COALESCE(SUM(outcome = 'defeat'), 0),
		        COALESCE(SUM(kills), 0),
		        COALESCE(SUM(damage_taken), 0),
		        COALESCE(MAX(score), 0)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.Victories, &stats.Defeats, &stats.Kills, &stats.DamageTaken, &stats.BestScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get session stats: %w", err)
	}
	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
