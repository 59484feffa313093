// Package storage provides SQLite-based persistence for the high score.
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

// ErrNegativeScore is returned when saving a score below zero.
var ErrNegativeScore = errors.New("storage: negative score")

// Store manages the SQLite database connection for high score persistence.
type Store struct {
	db *sql.DB
}

// HighScoreEntry is the stored high score of one key.
type HighScoreEntry struct {
	Key       string
	Score     int
	UpdatedAt time.Time
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

	// Create parent directories
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			key TEXT PRIMARY KEY,
			score INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// HighScore returns the stored high score for key.
// Returns 0 if nothing has been saved.
func (s *Store) HighScore(key string) (int, error) {
	entry, err := s.Entry(key)
	if err != nil {
		return 0, err
	}
	return entry.Score, nil
}

// Entry returns the stored high score and its timestamp for key. A missing
// key yields a zero entry.
func (s *Store) Entry(key string) (HighScoreEntry, error) {
	entry := HighScoreEntry{Key: key}
	var updatedAt any

	err := s.db.QueryRow(
		"SELECT score, updated_at FROM high_scores WHERE key = ?",
		key,
	).Scan(&entry.Score, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entry, nil
	}
	if err != nil {
		return entry, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := updatedAt.(type) {
	case time.Time:
		entry.UpdatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			entry.UpdatedAt = parsed
		}
	}
	return entry, nil
}

// SaveHighScore stores score as the high score for key, replacing any
// previous value.
func (s *Store) SaveHighScore(key string, score int) error {
	if score < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeScore, score)
	}
	_, err := s.db.Exec(
		`INSERT INTO high_scores (key, score, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET
		   score = excluded.score,
		   updated_at = excluded.updated_at`,
		key, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// ClearHighScore deletes the high score for key.
func (s *Store) ClearHighScore(key string) error {
	_, err := s.db.Exec("DELETE FROM high_scores WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	return nil
}

// Keeper binds a Store to one key, giving the Load/Save pair the game
// controller persists its high score through.
type Keeper struct {
	store *Store
	key   string
}

// Keeper returns a high score keeper for key.
func (s *Store) Keeper(key string) *Keeper {
	return &Keeper{store: s, key: key}
}

// Load returns the stored high score, 0 when absent.
func (k *Keeper) Load() (int, error) {
	return k.store.HighScore(k.key)
}

// Save stores the high score.
func (k *Keeper) Save(score int) error {
	return k.store.SaveHighScore(k.key, score)
}
