// Package kv defines the string-keyed storage medium that persisted slots
// read from and write through to.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned (wrapped) by Get when a key has no entry.
var ErrNotFound = errors.New("kv: key not found")

// Medium is a synchronous string-keyed key/value store. Values are opaque
// encoded strings; a Medium never interprets them.
//
// Get on a missing key returns an error wrapping ErrNotFound.
// Delete on a missing key is not an error.
type Medium interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// IsNotFound reports whether err marks an absent key.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
