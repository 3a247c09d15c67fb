package tasklet

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/colonyops/tasklet/internal/core/kv"
	"github.com/colonyops/tasklet/internal/core/slot"
)

// CounterKey is the medium key holding the counter.
const CounterKey = "counter"

// Counter is a persisted non-negative integer.
type Counter struct {
	slot *slot.Slot[int]
}

// NewCounter loads the counter from medium. A negative stored value is
// clamped to 0.
func NewCounter(ctx context.Context, medium kv.Medium, log zerolog.Logger, opts ...slot.Option) *Counter {
	log = log.With().Str("cmp", "counter").Logger()
	opts = append([]slot.Option{slot.WithLogger(log)}, opts...)
	c := &Counter{slot: slot.New(ctx, medium, CounterKey, 0, opts...)}
	if c.slot.Value() < 0 {
		c.slot.Set(ctx, 0)
	}
	return c
}

func (c *Counter) Value() int {
	return c.slot.Value()
}

func (c *Counter) Increment(ctx context.Context) int {
	c.slot.Update(ctx, func(n int) int { return n + 1 })
	return c.Value()
}

// Decrement lowers the counter by one, never below zero.
func (c *Counter) Decrement(ctx context.Context) int {
	c.slot.Update(ctx, func(n int) int { return max(0, n-1) })
	return c.Value()
}

func (c *Counter) Reset(ctx context.Context) {
	c.slot.Clear(ctx)
}
