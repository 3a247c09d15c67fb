package tasklet

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tasklet/internal/core/config"
	"github.com/colonyops/tasklet/internal/core/styles"
	"github.com/colonyops/tasklet/internal/data/memstore"
)

func testConfig(t *testing.T, driver string) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Storage.Driver = driver
	return &cfg
}

func TestOpen_Drivers(t *testing.T) {
	for _, driver := range config.Drivers {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			cfg := testConfig(t, driver)

			app, err := Open(ctx, cfg, zerolog.Nop())
			require.NoError(t, err)

			created, err := app.Tasks.Create(ctx, "persist me", false)
			require.NoError(t, err)
			app.Theme.Toggle(ctx)
			app.Counter.Increment(ctx)
			require.NoError(t, app.Close())

			if driver == config.DriverMemory {
				return
			}

			reopened, err := Open(ctx, cfg, zerolog.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = reopened.Close() })

			got, ok := reopened.Tasks.Get(created.ID)
			require.True(t, ok)
			assert.Equal(t, created, got)
			assert.False(t, reopened.Theme.Dark())
			assert.Equal(t, 1, reopened.Counter.Value())
		})
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := testConfig(t, "carrier-pigeon")
	_, err := Open(context.Background(), cfg, zerolog.Nop())
	require.Error(t, err)
}

func TestNew_NamespacesKeys(t *testing.T) {
	ctx := context.Background()
	medium := memstore.New()
	app := New(ctx, testConfig(t, config.DriverMemory), medium, zerolog.Nop())

	_, err := app.Tasks.Create(ctx, "namespaced", false)
	require.NoError(t, err)
	app.Theme.Toggle(ctx)
	app.Counter.Increment(ctx)

	snapshot := medium.Snapshot()
	assert.Contains(t, snapshot, "tasklet.tasks.v1")
	assert.Equal(t, "false", snapshot["tasklet.theme.dark"])
	assert.Equal(t, "1", snapshot["tasklet.counter"])
}

func TestApp_ThemeDrivesPalette(t *testing.T) {
	t.Cleanup(func() { styles.SetThemeByName(styles.DefaultDarkPalette) })

	ctx := context.Background()
	cfg := testConfig(t, config.DriverMemory)
	cfg.TUI.LightPalette = "gruvbox-light"
	app := New(ctx, cfg, memstore.New(), zerolog.Nop())

	dark, _ := styles.GetPalette(cfg.TUI.DarkPalette)
	assert.Equal(t, dark, styles.CurrentPalette())
	assert.Equal(t, cfg.TUI.DarkPalette, app.PaletteName())

	app.Theme.Toggle(ctx)

	light, _ := styles.GetPalette("gruvbox-light")
	assert.Equal(t, light, styles.CurrentPalette())
	assert.Equal(t, "gruvbox-light", app.PaletteName())
}

func TestApp_ResetAll(t *testing.T) {
	ctx := context.Background()
	app := New(ctx, testConfig(t, config.DriverMemory), memstore.New(), zerolog.Nop())

	_, err := app.Tasks.Create(ctx, "to be cleared", true)
	require.NoError(t, err)
	app.Theme.Set(ctx, false)
	app.Counter.Increment(ctx)

	app.ResetAll(ctx)

	assert.Empty(t, app.Tasks.Tasks())
	assert.True(t, app.Theme.Dark())
	assert.Equal(t, 0, app.Counter.Value())
}

func TestOpenMedium_FileDriverPath(t *testing.T) {
	cfg := testConfig(t, config.DriverFile)
	cfg.Storage.Path = filepath.Join(cfg.DataDir, "custom", "state.json")

	medium, err := OpenMedium(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = medium.Close() })

	require.NoError(t, medium.Set(context.Background(), "k", "v"))
	assert.FileExists(t, cfg.Storage.Path)
}
