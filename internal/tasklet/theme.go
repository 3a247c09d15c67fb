package tasklet

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/colonyops/tasklet/internal/core/kv"
	"github.com/colonyops/tasklet/internal/core/slot"
)

// ThemeKey is the medium key holding the dark-mode flag.
const ThemeKey = "theme.dark"

// Theme is the persisted dark/light preference. Dark is the default.
type Theme struct {
	slot *slot.Slot[bool]
}

// NewTheme loads the theme flag from medium.
func NewTheme(ctx context.Context, medium kv.Medium, log zerolog.Logger, opts ...slot.Option) *Theme {
	log = log.With().Str("cmp", "theme").Logger()
	opts = append([]slot.Option{slot.WithLogger(log)}, opts...)
	return &Theme{slot: slot.New(ctx, medium, ThemeKey, true, opts...)}
}

// Dark reports whether the dark theme is active.
func (t *Theme) Dark() bool {
	return t.slot.Value()
}

// Name returns "dark" or "light".
func (t *Theme) Name() string {
	if t.Dark() {
		return "dark"
	}
	return "light"
}

func (t *Theme) Set(ctx context.Context, dark bool) {
	t.slot.Set(ctx, dark)
}

func (t *Theme) Toggle(ctx context.Context) {
	t.slot.Update(ctx, func(dark bool) bool { return !dark })
}

func (t *Theme) Reset(ctx context.Context) {
	t.slot.Clear(ctx)
}

// Subscribe calls fn with the new flag after every change.
func (t *Theme) Subscribe(fn func(dark bool)) (unsubscribe func()) {
	return t.slot.Subscribe(fn)
}
