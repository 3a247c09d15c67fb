// Package tasklet wires the persisted task list, theme flag and counter onto
// a storage medium chosen by configuration.
package tasklet

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/tasklet/internal/core/config"
	"github.com/colonyops/tasklet/internal/core/kv"
	"github.com/colonyops/tasklet/internal/core/slot"
	"github.com/colonyops/tasklet/internal/core/styles"
	"github.com/colonyops/tasklet/internal/data/db"
	"github.com/colonyops/tasklet/internal/data/filestore"
	"github.com/colonyops/tasklet/internal/data/memstore"
	"github.com/colonyops/tasklet/internal/data/nutstore"
	"github.com/colonyops/tasklet/internal/data/stores"
)

// Namespace prefixes every key the app stores in its medium.
const Namespace = "tasklet"

// App bundles the persisted state of a tasklet session.
type App struct {
	Tasks   *TaskStore
	Theme   *Theme
	Counter *Counter

	cfg         *config.Config
	medium      kv.Medium
	unsubscribe func()
}

// Open opens the medium selected by cfg and loads every slot from it.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger, opts ...slot.Option) (*App, error) {
	medium, err := OpenMedium(cfg, log)
	if err != nil {
		return nil, err
	}

	return New(ctx, cfg, medium, log, opts...), nil
}

// New builds an App on an already opened medium. The App takes ownership of
// medium and closes it on Close.
func New(ctx context.Context, cfg *config.Config, medium kv.Medium, log zerolog.Logger, opts ...slot.Option) *App {
	scoped := kv.Scoped(medium, Namespace)

	app := &App{
		Tasks:   NewTaskStore(ctx, scoped, log, opts...),
		Theme:   NewTheme(ctx, scoped, log, opts...),
		Counter: NewCounter(ctx, scoped, log, opts...),
		cfg:     cfg,
		medium:  medium,
	}

	app.applyTheme(app.Theme.Dark())
	app.unsubscribe = app.Theme.Subscribe(app.applyTheme)

	log.Debug().
		Str("driver", cfg.Storage.Driver).
		Str("path", cfg.StoragePath()).
		Msg("tasklet opened")

	return app
}

// Config returns the configuration the app was opened with.
func (a *App) Config() *config.Config {
	return a.cfg
}

// ResetAll clears tasks, theme and counter.
func (a *App) ResetAll(ctx context.Context) {
	a.Tasks.Reset(ctx)
	a.Theme.Reset(ctx)
	a.Counter.Reset(ctx)
}

// Close releases the storage medium.
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	return a.medium.Close()
}

// PaletteName returns the configured palette for the active theme.
func (a *App) PaletteName() string {
	if a.Theme.Dark() {
		return a.cfg.TUI.DarkPalette
	}
	return a.cfg.TUI.LightPalette
}

func (a *App) applyTheme(dark bool) {
	name := a.cfg.TUI.LightPalette
	if dark {
		name = a.cfg.TUI.DarkPalette
	}
	styles.SetThemeByName(name)
}

// OpenMedium opens the storage driver named in cfg.
func OpenMedium(cfg *config.Config, log zerolog.Logger) (kv.Medium, error) {
	path := cfg.StoragePath()

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return memstore.New(), nil
	case config.DriverFile:
		return filestore.New(path), nil
	case config.DriverSQLite:
		store, err := stores.OpenKVStore(path, db.OpenOptions{
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
			BusyTimeout:  cfg.Database.BusyTimeout,
		}, log)
		if err != nil {
			return nil, fmt.Errorf("open sqlite storage: %w", err)
		}
		return store, nil
	case config.DriverNutsDB:
		store, err := nutstore.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open nutsdb storage: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
