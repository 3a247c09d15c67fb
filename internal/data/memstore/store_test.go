package memstore

import (
	"context"
	"testing"

	"github.com/colonyops/tasklet/internal/core/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetAndGet(t *testing.T) {
	ctx := context.Background()
	store := New()

	require.NoError(t, store.Set(ctx, "key", `"value"`))

	got, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, `"value"`, got)
	assert.Equal(t, 1, store.Len())
}

func TestStore_GetNotFound(t *testing.T) {
	_, err := New().Get(context.Background(), "missing")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := New()

	require.NoError(t, store.Set(ctx, "key", "1"))
	require.NoError(t, store.Delete(ctx, "key"))
	require.NoError(t, store.Delete(ctx, "key"), "deleting a missing key is not an error")

	_, err := store.Get(ctx, "key")
	assert.True(t, kv.IsNotFound(err))
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	ctx := context.Background()
	store := New()
	require.NoError(t, store.Set(ctx, "a", "1"))

	snap := store.Snapshot()
	snap["a"] = "2"

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", got)
}
