// Package storage provides SQLite-based persistence for snake high scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Record is one finished game as reported by the platform.
type Record struct {
	RunID   string // unique per game, guards against double saves
	Variant string
	Score   int
	Outcome string
	Length  int
	Ticks   uint64
}

// ScoreEntry represents a single stored score.
type ScoreEntry struct {
	ID        int64
	RunID     string
	Variant   string
	Score     int
	Outcome   string
	Length    int
	Ticks     uint64
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			variant TEXT NOT NULL,
			score INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_variant ON scores(variant);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(variant, score DESC);
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

// SaveScore records a finished game. Saving the same RunID twice keeps the
// first row and reports saved=false.
func (s *Store) SaveScore(r Record) (id int64, saved bool, err error) {
	if r.RunID == "" || r.Variant == "" {
		return 0, false, errors.New("storage: run id and variant are required")
	}

	result, err := s.db.Exec(
		`INSERT INTO scores (run_id, variant, score, outcome, length, ticks)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(run_id) DO NOTHING`,
		r.RunID, r.Variant, r.Score, r.Outcome, r.Length, int64(r.Ticks),
	)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot save score: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot count inserted rows: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}

	id, err = result.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, true, nil
}

// TopScores retrieves the top N scores for a variant, best first.
// Ties keep the earlier game first.
func (s *Store) TopScores(variant string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, variant, score, outcome, length, ticks, created_at
		 FROM scores
		 WHERE variant = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var ticks int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.Variant, &e.Score, &e.Outcome, &e.Length, &ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Ticks = uint64(ticks)
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for a variant, or 0 if none exist.
func (s *Store) HighScore(variant string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE variant = ?",
		variant,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all scores for a variant and returns how many were removed.
func (s *Store) ClearScores(variant string) (int64, error) {
	result, err := s.db.Exec("DELETE FROM scores WHERE variant = ?", variant)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n, nil
}

// VariantStats contains aggregated statistics for a variant.
type VariantStats struct {
	Variant    string
	GamesCount int
	Wins       int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetVariantStats retrieves aggregated statistics for one variant.
// winOutcome is the outcome string counted as a win.
func (s *Store) GetVariantStats(variant, winOutcome string) (*VariantStats, error) {
	stats := &VariantStats{Variant: variant}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0),
		        MAX(created_at)
		 FROM scores WHERE variant = ?`,
		winOutcome, variant,
	).Scan(&stats.GamesCount, &stats.Wins, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}
	stats.LastPlayed = parseTimestamp(lastPlayed)

	return stats, nil
}

// GetAllVariantStats retrieves statistics for every variant that has been played.
func (s *Store) GetAllVariantStats(winOutcome string) (map[string]*VariantStats, error) {
	rows, err := s.db.Query(
		`SELECT variant, COUNT(*),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        MAX(score), AVG(score), SUM(score), MAX(created_at)
		 FROM scores
		 GROUP BY variant`,
		winOutcome,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all variant stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*VariantStats)
	for rows.Next() {
		var vs VariantStats
		var lastPlayed any
		if err := rows.Scan(&vs.Variant, &vs.GamesCount, &vs.Wins, &vs.HighScore, &vs.AvgScore, &vs.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		vs.LastPlayed = parseTimestamp(lastPlayed)
		stats[vs.Variant] = &vs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTimestamp handles the driver returning either time.Time or text.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
