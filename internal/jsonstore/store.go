// Package jsonstore implements the default Store backend: one JSON document
// per collection key, stored as <key>.json under the data directory. Writes
// use the temp-file, fsync, rename pattern so a crash never leaves a
// half-written collection behind.
package jsonstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/courierworks/glovoadmin/pkg/types"
)

// Store is the JSON-file backend.
type Store struct {
	mu      sync.RWMutex
	dataDir string
	closed  bool
}

// Open creates the data directory if needed and returns a ready store.
func Open(cfg types.Config) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &Store{dataDir: dataDir}, nil
}

// Read returns the raw value stored under key, or nil if the key has never
// been written. A value that is not valid JSON fails the read.
func (s *Store) Read(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, types.ErrStoreClosed
	}
	path, err := s.keyPath(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	return data, nil
}

// Write persists the value under key atomically, replacing any previous
// value. There is no concurrency check; the last writer wins.
func (s *Store) Write(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return types.ErrStoreClosed
	}
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	return writeAtomic(path, value)
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return types.ErrStoreClosed
	}
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// Close marks the store closed. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// keyPath maps a collection key to its file path. Keys never contain path
// separators; anything else is rejected rather than resolved.
func (s *Store) keyPath(key string) (string, error) {
	if key == "" {
		return "", types.ErrCollectionEmpty
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid collection key %q", key)
	}
	return filepath.Join(s.dataDir, key+".json"), nil
}

// writeAtomic writes value to path via a temp file in the same directory,
// syncing before the rename.
func writeAtomic(path string, value []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".json-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing value: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
