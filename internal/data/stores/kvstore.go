// Package stores holds the SQLite-backed storage medium.
package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/colonyops/tasklet/internal/core/kv"
	"github.com/colonyops/tasklet/internal/data/db"
)

// KVStore implements kv.Medium using SQLite.
type KVStore struct {
	db *db.DB
}

var _ kv.Medium = (*KVStore)(nil)

// NewKVStore creates a new SQLite-backed medium. The store takes ownership of
// the connection and closes it on Close.
func NewKVStore(db *db.DB) *KVStore {
	return &KVStore{db: db}
}

// Get returns the raw value for key.
// Returns an error wrapping kv.ErrNotFound if the key does not exist.
func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	row, err := s.db.Queries().KVGet(ctx, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("kv get %q: %w", key, kv.ErrNotFound)
		}
		return "", fmt.Errorf("kv get %q: %w", key, err)
	}
	return row.Value, nil
}

// Set stores value under key, replacing any existing entry.
func (s *KVStore) Set(ctx context.Context, key string, value string) error {
	if err := s.db.Queries().KVSet(ctx, db.KVSetParams{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UnixNano(),
	}); err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

// Delete removes a key.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if err := s.db.Queries().KVDelete(ctx, key); err != nil {
		return fmt.Errorf("kv delete %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *KVStore) Close() error {
	return s.db.Close()
}
