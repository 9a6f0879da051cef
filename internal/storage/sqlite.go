// Package storage persists snake progress: the best score ever reached and
// the set of unlocked levels.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/dungeon-snake/internal/games/snake"
)

const keyHighScore = "high_score"

// Store manages the SQLite database connection for progress persistence.
type Store struct {
	db   *sql.DB
	path string
}

// Ensure both stores implement snake.ProgressStore
var (
	_ snake.ProgressStore = (*Store)(nil)
	_ snake.ProgressStore = (*Memory)(nil)
)

// Progress is a summary of everything the store holds.
type Progress struct {
	HighScore      int
	UnlockedLevels []int
	UpdatedAt      time.Time // Zero if nothing was ever saved
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

	store := &Store{db: db, path: dbPath}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS progress (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS unlocked_levels (
			level_id INTEGER PRIMARY KEY,
			unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Path returns the resolved database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadHighScore returns the stored best score, or 0 if none was saved.
func (s *Store) LoadHighScore() (int, error) {
	var score int
	err := s.db.QueryRow("SELECT value FROM progress WHERE key = ?", keyHighScore).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// SaveHighScore overwrites the stored best score.
func (s *Store) SaveHighScore(score int) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		keyHighScore, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// LoadUnlockedLevels returns the stored unlocked level ids in ascending
// order. An empty store returns nil.
func (s *Store) LoadUnlockedLevels() ([]int, error) {
	rows, err := s.db.Query("SELECT level_id FROM unlocked_levels ORDER BY level_id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query unlocked levels: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return ids, nil
}

// SaveUnlockedLevels replaces the stored unlocked set with ids.
// Ids already present keep their original unlock time.
func (s *Store) SaveUnlockedLevels(ids []int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	keep := slices.Clone(ids)
	slices.Sort(keep)
	keep = slices.Compact(keep)

	if _, err := tx.Exec("DELETE FROM unlocked_levels"+notInClause(len(keep)), toArgs(keep)...); err != nil {
		return fmt.Errorf("storage: cannot prune unlocked levels: %w", err)
	}
	for _, id := range keep {
		if _, err := tx.Exec("INSERT OR IGNORE INTO unlocked_levels (level_id) VALUES (?)", id); err != nil {
			return fmt.Errorf("storage: cannot save unlocked level %d: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit unlocked levels: %w", err)
	}
	return nil
}

// Progress returns a summary of the stored progress.
func (s *Store) Progress() (*Progress, error) {
	p := &Progress{}

	var err error
	if p.HighScore, err = s.LoadHighScore(); err != nil {
		return nil, err
	}
	if p.UnlockedLevels, err = s.LoadUnlockedLevels(); err != nil {
		return nil, err
	}

	var updated any
	err = s.db.QueryRow(
		`SELECT MAX(ts) FROM (
			SELECT updated_at AS ts FROM progress
			UNION ALL
			SELECT unlocked_at AS ts FROM unlocked_levels
		)`,
	).Scan(&updated)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get last update: %w", err)
	}
	p.UpdatedAt = parseTime(updated)

	return p, nil
}

// ResetProgress deletes the high score and every unlocked level.
func (s *Store) ResetProgress() error {
	_, err := s.db.Exec("DELETE FROM progress; DELETE FROM unlocked_levels;")
	if err != nil {
		return fmt.Errorf("storage: cannot reset progress: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or text.
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

func notInClause(n int) string {
	if n == 0 {
		return ""
	}
	q := " WHERE level_id NOT IN (?"
	for i := 0; i < n-1; i++ {
		q += ", ?"
	}
	return q + ")"
}

func toArgs(ids []int) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
