// Package tokenstore persists the bearer token between runs, playing the
// role the browser's localStorage plays for the web client.
package tokenstore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// TokenKey is the single key the session keeps its bearer token under.
const TokenKey = "jwttoken"

// Store is a SQLite-backed string key-value store.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the state database at dir/state.db.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "state.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating kv table: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the value under key. The second return is false when the key
// is absent.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set writes value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)`,
		key, value,
	)
	return err
}

// Delete removes key. Deleting an absent key succeeds.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

// Token returns the stored bearer token, satisfying the API client's
// TokenSource. Reading fresh on every call means a logout in one place is
// immediately visible to in-flight consumers.
func (s *Store) Token() (string, error) {
	tok, ok, err := s.Get(TokenKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.New("no token found")
	}
	return tok, nil
}

// Close closes the state database.
func (s *Store) Close() error {
	return s.db.Close()
}
