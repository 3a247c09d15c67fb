package tasklet

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tasklet/internal/data/memstore"
)

func TestCounter(t *testing.T) {
	ctx := context.Background()
	medium := memstore.New()
	c := NewCounter(ctx, medium, zerolog.Nop())

	assert.Equal(t, 0, c.Value())
	assert.Equal(t, 1, c.Increment(ctx))
	assert.Equal(t, 2, c.Increment(ctx))
	assert.Equal(t, 1, c.Decrement(ctx))

	reopened := NewCounter(ctx, medium, zerolog.Nop())
	assert.Equal(t, 1, reopened.Value())

	reopened.Reset(ctx)
	assert.Equal(t, 0, reopened.Value())
}

func TestCounter_NeverNegative(t *testing.T) {
	ctx := context.Background()
	c := NewCounter(ctx, memstore.New(), zerolog.Nop())

	for range 3 {
		assert.Equal(t, 0, c.Decrement(ctx))
	}
}

func TestCounter_ClampsNegativeStoredValue(t *testing.T) {
	ctx := context.Background()
	medium := memstore.New()
	require.NoError(t, medium.Set(ctx, CounterKey, "-4"))

	c := NewCounter(ctx, medium, zerolog.Nop())
	assert.Equal(t, 0, c.Value())

	raw, err := medium.Get(ctx, CounterKey)
	require.NoError(t, err)
	assert.Equal(t, "0", raw)
}
