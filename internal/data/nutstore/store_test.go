package nutstore

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/nutsdb/nutsdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tasklet/internal/core/kv"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nuts"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_SetAndGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, "counter", "4"))

	got, err := store.Get(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, "4", got)
}

func TestStore_GetNotFound(t *testing.T) {
	_, err := newTestStore(t).Get(context.Background(), "missing")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, "key", "value"))
	require.NoError(t, store.Delete(ctx, "key"))

	_, err := store.Get(ctx, "key")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestStore_Reopen(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nuts")

	store, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "theme", "true"))
	require.NoError(t, store.Close())

	store, err = Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	got, err := store.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "true", got)
}

func TestStore_ReopenEmpty(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nuts")

	store, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, err = store.Get(ctx, "tasklet.tasks.v1")
	assert.ErrorIs(t, err, kv.ErrNotFound)
	assert.True(t, kv.IsNotFound(err))

	require.NoError(t, store.Delete(ctx, "tasklet.counter"))

	require.NoError(t, store.Set(ctx, "tasklet.counter", "2"))
	got, err := store.Get(ctx, "tasklet.counter")
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestIsMissing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"key not found", nutsdb.ErrKeyNotFound, true},
		{"key not found in bucket", nutsdb.ErrNotFoundKey, true},
		{"bucket without index", nutsdb.ErrNotFoundBucket, true},
		{"bucket missing", nutsdb.ErrBucketNotFound, true},
		{"wrapped", fmt.Errorf("get: %w", nutsdb.ErrNotFoundBucket), true},
		{"closed database", nutsdb.ErrDBClosed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isMissing(tt.err))
		})
	}
}
