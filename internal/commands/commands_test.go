package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasklet/internal/core/config"
	"github.com/colonyops/tasklet/internal/core/styles"
	"github.com/colonyops/tasklet/internal/data/memstore"
	"github.com/colonyops/tasklet/internal/tasklet"
)

type testEnv struct {
	flags  *Flags
	app    *tasklet.App
	medium *memstore.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Cleanup(func() { styles.SetThemeByName(styles.DefaultDarkPalette) })

	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Storage.Driver = config.DriverMemory

	medium := memstore.New()
	app := tasklet.New(context.Background(), &cfg, medium, zerolog.Nop())
	t.Cleanup(func() { _ = app.Close() })

	return &testEnv{
		flags:  &Flags{Config: &cfg, DataDir: cfg.DataDir},
		app:    app,
		medium: medium,
	}
}

// run executes args against a root command with every command registered
// and returns stdout and stderr.
func (e *testEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := &cli.Command{
		Name:      "tasklet",
		Writer:    &out,
		ErrWriter: &errOut,
	}
	root = NewTaskCmd(e.flags, e.app).Register(root)
	root = NewThemeCmd(e.flags, e.app).Register(root)
	root = NewCounterCmd(e.flags, e.app).Register(root)
	root = NewResetCmd(e.flags, e.app).Register(root)
	root = NewConfigValidateCmd(e.flags).Register(root)

	err := root.Run(context.Background(), append([]string{"tasklet"}, args...))
	return out.String(), errOut.String(), err
}

func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, _, err := e.run(t, args...)
	require.NoError(t, err)
	return out
}
