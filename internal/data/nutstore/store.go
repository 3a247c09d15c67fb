// Package nutstore implements kv.Medium on an embedded NutsDB database.
package nutstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/nutsdb/nutsdb"

	"github.com/colonyops/tasklet/internal/core/kv"
)

const bucket = "tasklet"

// Store keeps every entry in a single BTree bucket.
type Store struct {
	db *nutsdb.DB
}

var _ kv.Medium = (*Store)(nil)

// Open opens (or creates) a NutsDB database in dir.
func Open(dir string) (*Store, error) {
	opts := nutsdb.DefaultOptions
	opts.Dir = dir
	db, err := nutsdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open nutsdb: %w", err)
	}

	if err := db.Update(func(tx *nutsdb.Tx) error {
		return tx.NewBucket(nutsdb.DataStructureBTree, bucket)
	}); err != nil && !errors.Is(err, nutsdb.ErrBucketAlreadyExist) {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the raw value for key.
func (s *Store) Get(_ context.Context, key string) (string, error) {
	var value []byte
	err := s.db.View(func(tx *nutsdb.Tx) error {
		v, err := tx.Get(bucket, []byte(key))
		if err != nil {
			return err
		}
		value = v
		return nil
	})
	if err != nil {
		if isMissing(err) {
			return "", fmt.Errorf("nutsdb get %q: %w", key, kv.ErrNotFound)
		}
		return "", fmt.Errorf("nutsdb get %q: %w", key, err)
	}
	return string(value), nil
}

// Set stores value under key with no TTL.
func (s *Store) Set(_ context.Context, key string, value string) error {
	err := s.db.Update(func(tx *nutsdb.Tx) error {
		return tx.Put(bucket, []byte(key), []byte(value), nutsdb.Persistent)
	})
	if err != nil {
		return fmt.Errorf("nutsdb set %q: %w", key, err)
	}
	return nil
}

// Delete removes key; a missing key is not an error.
func (s *Store) Delete(_ context.Context, key string) error {
	err := s.db.Update(func(tx *nutsdb.Tx) error {
		return tx.Delete(bucket, []byte(key))
	})
	if err != nil && !isMissing(err) {
		return fmt.Errorf("nutsdb delete %q: %w", key, err)
	}
	return nil
}

// isMissing reports whether err means the key is absent. A bucket that held
// no records when the database was opened has no index, so lookups in it
// fail with a bucket error rather than a key error.
func isMissing(err error) bool {
	return errors.Is(err, nutsdb.ErrKeyNotFound) ||
		errors.Is(err, nutsdb.ErrNotFoundKey) ||
		errors.Is(err, nutsdb.ErrNotFoundBucket) ||
		errors.Is(err, nutsdb.ErrBucketNotFound)
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
