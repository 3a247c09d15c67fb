package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/colonyops/tasklet/internal/core/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "nested", "tasklet.json"))
}

func TestStore_SetAndGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, "theme", "true"))

	got, err := store.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "true", got)
}

func TestStore_GetMissingFile(t *testing.T) {
	_, err := newTestStore(t).Get(context.Background(), "theme")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasklet.json")

	require.NoError(t, New(path).Set(ctx, "tasks", `[{"id":"1","text":"abc","done":false}]`))

	got, err := New(path).Get(ctx, "tasks")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","text":"abc","done":false}]`, got)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Delete(ctx, "missing"), "missing file is not an error")

	require.NoError(t, store.Set(ctx, "a", "1"))
	require.NoError(t, store.Set(ctx, "b", "2"))
	require.NoError(t, store.Delete(ctx, "a"))

	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	got, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestStore_CorruptFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "tasklet.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := New(path)

	_, err := store.Get(ctx, "theme")
	require.Error(t, err)
	assert.False(t, kv.IsNotFound(err))

	var corrupt *CorruptError
	assert.ErrorAs(t, err, &corrupt)

	// A write recovers by moving the corrupt file aside.
	require.NoError(t, store.Set(ctx, "theme", "false"))

	got, err := store.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "false", got)

	backups, err := filepath.Glob(path + ".corrupt.*")
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}
