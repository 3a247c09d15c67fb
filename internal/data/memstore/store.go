// Package memstore provides an in-memory kv.Medium. Nothing survives the
// process; it backs the "memory" storage driver and tests.
package memstore

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/colonyops/tasklet/internal/core/kv"
)

// Store is a thread-safe in-memory medium.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ kv.Medium = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		data: make(map[string]string),
	}
}

// Get returns the raw value for key.
func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	if !ok {
		return "", fmt.Errorf("memstore get %q: %w", key, kv.ErrNotFound)
	}
	return val, nil
}

// Set stores value under key.
func (s *Store) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Delete removes key from the store.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Snapshot returns a copy of every entry.
func (s *Store) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.data)
}

func (s *Store) Close() error { return nil }
