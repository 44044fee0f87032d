// Package sqlitestore implements the Store backend over a SQLite database
// with a single key-value table. The contract is identical to the json
// backend; SQLite only changes where the bytes live.
package sqlitestore

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/courierworks/glovoadmin/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// DBFileName is the database file created under the data directory.
const DBFileName = "glovoadmin.db"

// Store is the SQLite backend.
type Store struct {
	mu     sync.RWMutex
	db     *sql.DB
	closed bool
}

// Open creates the data directory and database file if needed, applies the
// schema, and returns a ready store.
func Open(cfg types.Config) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DBFileName))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Read returns the raw value stored under key, or nil if the key has never
// been written.
func (s *Store) Read(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, types.ErrStoreClosed
	}
	if key == "" {
		return nil, types.ErrCollectionEmpty
	}
	var data []byte
	err := s.db.QueryRow("SELECT data FROM kv WHERE collection = ?", key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	return data, nil
}

// Write persists the value under key, replacing any previous value.
func (s *Store) Write(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return types.ErrStoreClosed
	}
	if key == "" {
		return types.ErrCollectionEmpty
	}
	_, err := s.db.Exec(`
		INSERT INTO kv (collection, data) VALUES (?, ?)
		ON CONFLICT(collection) DO UPDATE SET data = excluded.data`,
		key, value)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return types.ErrStoreClosed
	}
	if key == "" {
		return types.ErrCollectionEmpty
	}
	if _, err := s.db.Exec("DELETE FROM kv WHERE collection = ?", key); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// Close closes the database. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		s.db = nil
	}
	return nil
}
