// Package filestore implements kv.Medium on top of a single JSON file.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/colonyops/tasklet/internal/core/kv"
)

// Store keeps every entry in one JSON object on disk. Each write rewrites the
// whole file atomically (temp file + rename).
type Store struct {
	path string
	mu   sync.RWMutex
}

var _ kv.Medium = (*Store)(nil)

// New creates a store backed by the file at path. The file and its parent
// directory are created on first write.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the raw value for key. A missing file behaves like an empty store.
func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := s.load()
	if err != nil {
		return "", fmt.Errorf("filestore get %q: %w", key, err)
	}

	val, ok := entries[key]
	if !ok {
		return "", fmt.Errorf("filestore get %q: %w", key, kv.ErrNotFound)
	}
	return val, nil
}

// Set stores value under key.
func (s *Store) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadForWrite()
	if err != nil {
		return fmt.Errorf("filestore set %q: %w", key, err)
	}

	entries[key] = value
	if err := s.save(entries); err != nil {
		return fmt.Errorf("filestore set %q: %w", key, err)
	}
	return nil
}

// Delete removes key. A missing key or file is not an error.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadForWrite()
	if err != nil {
		return fmt.Errorf("filestore delete %q: %w", key, err)
	}

	if _, ok := entries[key]; !ok {
		return nil
	}

	delete(entries, key)
	if err := s.save(entries); err != nil {
		return fmt.Errorf("filestore delete %q: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error { return nil }

// load reads the file from disk.
// Returns an empty map if the file doesn't exist or is empty.
func (s *Store) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	if len(data) == 0 {
		return map[string]string{}, nil
	}

	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &CorruptError{Path: s.path, Err: err}
	}

	return entries, nil
}

// loadForWrite is load, except that a corrupt file is moved aside so the
// write can start from an empty store.
func (s *Store) loadForWrite() (map[string]string, error) {
	entries, err := s.load()
	if err == nil {
		return entries, nil
	}

	var corrupt *CorruptError
	if !errors.As(err, &corrupt) {
		return nil, err
	}

	if err := s.backupCorrupt(); err != nil {
		return nil, err
	}
	return map[string]string{}, nil
}

// backupCorrupt renames the unreadable file to <path>.corrupt.<timestamp>.
func (s *Store) backupCorrupt() error {
	timestamp := time.Now().Format("20060102-150405")
	backupPath := fmt.Sprintf("%s.corrupt.%s", s.path, timestamp)

	if err := os.Rename(s.path, backupPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("backup corrupt file: %w", err)
	}
	return nil
}

// save writes the file to disk atomically.
func (s *Store) save(entries map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}

// CorruptError reports a store file that exists but is not a JSON object of
// strings.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt store file %s: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }
