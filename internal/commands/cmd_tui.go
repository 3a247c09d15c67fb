package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasklet/internal/core/logging"
	"github.com/colonyops/tasklet/internal/core/task"
	"github.com/colonyops/tasklet/internal/tasklet"
	"github.com/colonyops/tasklet/internal/tui"
	"github.com/colonyops/tasklet/pkg/profiler"
)

type TuiCmd struct {
	flags   *Flags
	app     *tasklet.App
	version string
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *tasklet.App, version string) *TuiCmd {
	return &TuiCmd{
		flags:   flags,
		app:     app,
		version: version,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on specified port (e.g., 6060)",
			Sources:     cli.EnvVars("TASKLET_PROFILER_PORT"),
			Destination: &cmd.flags.ProfilerPort,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	ctx = logging.WithCommand(ctx, "tui")

	if cmd.flags.ProfilerPort > 0 {
		profServer := profiler.New(cmd.flags.ProfilerPort, logging.Component("profiler"))
		profServer.Handle("/debug/tasklet", cmd.statsHandler())
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s/debug/pprof/", profServer.Addr())).
			Msg("profiler endpoint available")
	}

	return tui.Run(ctx, cmd.app, tui.BuildInfo{Version: cmd.version})
}

// statsHandler serves the live task summary next to the pprof endpoints.
func (cmd *TuiCmd) statsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		out := struct {
			task.Stats
			Theme   string `json:"theme"`
			Counter int    `json:"counter"`
			Driver  string `json:"driver"`
		}{
			Stats:   task.Summarize(cmd.app.Tasks.Tasks()),
			Theme:   cmd.app.Theme.Name(),
			Counter: cmd.app.Counter.Value(),
			Driver:  cmd.app.Config().Storage.Driver,
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	})
}
