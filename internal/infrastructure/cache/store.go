// Package cache provides a SQLite-backed implementation of the ResponseCache
// port. Each store lives in its own temporary directory under the cache root
// and is fully removed when the store is closed.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store implements ports.ResponseCache.
type Store struct {
	db  *sql.DB
	dir string
}

// NewStore creates a cache store in a fresh session directory under root.
// The directory is acquired here and released in Close, on every exit path of
// the owning session.
func NewStore(root string) (*Store, error) {
	if root == "" {
		return nil, errors.New("cache root is required")
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating cache root: %w", err)
	}

	dir, err := os.MkdirTemp(root, "session-")
	if err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "responses.db"))
	if err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		os.RemoveAll(dir)
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		os.RemoveAll(dir)
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS responses (
		key TEXT PRIMARY KEY,
		body BLOB NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		os.RemoveAll(dir)
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &Store{db: db, dir: dir}, nil
}

// Get returns the cached body for key.
func (s *Store) Get(key string) ([]byte, bool) {
	var body []byte
	err := s.db.QueryRow("SELECT body FROM responses WHERE key = ?", key).Scan(&body)
	if err != nil {
		return nil, false
	}
	return body, true
}

// Set stores the body for key, replacing any previous entry.
func (s *Store) Set(key string, body []byte) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO responses (key, body) VALUES (?, ?)", key, body)
	if err != nil {
		return fmt.Errorf("storing cached response: %w", err)
	}
	return nil
}

// Close closes the database and removes the session directory.
func (s *Store) Close() error {
	dbErr := s.db.Close()
	rmErr := os.RemoveAll(s.dir)
	return errors.Join(dbErr, rmErr)
}

// Dir returns the session directory path.
func (s *Store) Dir() string {
	return s.dir
}
