package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasklet/internal/commands"
	"github.com/colonyops/tasklet/internal/core/config"
	"github.com/colonyops/tasklet/internal/core/logging"
	"github.com/colonyops/tasklet/internal/core/slot"
	"github.com/colonyops/tasklet/internal/tasklet"
	"github.com/colonyops/tasklet/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser  func()
		taskletApp = &tasklet.App{}
		opened     bool
		warnings   = &commands.Warnings{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "tasklet",
		Usage:     "A small persistent task list",
		UsageText: "tasklet [global options] command [command options]",
		Description: `Tasklet keeps a checklist, a light/dark theme preference and a counter
on disk so they survive restarts.

Run 'tasklet' with no arguments to open the interactive task view.
Run 'tasklet task add <text>' to add a task from the shell.`,
		Version:               build(),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TASKLET_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/tasklet.log, '-' for stderr)",
				Sources:     cli.EnvVars("TASKLET_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TASKLET_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("TASKLET_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "driver",
				Usage:       "storage driver, overrides the config file (memory, file, sqlite, nutsdb)",
				Sources:     cli.EnvVars("TASKLET_DRIVER"),
				Destination: &flags.Driver,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Log to a file by default so the TUI screen stays clean
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "tasklet.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			if flags.Driver != "" {
				cfg.Storage.Driver = flags.Driver
				if err := cfg.Validate(); err != nil {
					return ctx, fmt.Errorf("invalid --driver: %w", err)
				}
			}
			flags.Config = cfg

			name := c.Args().First()
			if name != "" {
				ctx = logging.WithCommand(ctx, name)
			}

			if !commands.NeedsStorage(name) {
				return ctx, nil
			}

			// Populate the pre-allocated App (commands already hold a pointer to it)
			a, err := tasklet.Open(ctx, cfg, logging.Component("tasklet"), slot.WithErrorHandler(warnings.Handle))
			if err != nil {
				return ctx, fmt.Errorf("open storage: %w", err)
			}
			*taskletApp = *a
			opened = true

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			_ = warnings.Flush(os.Stderr)

			if opened {
				if err := taskletApp.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close storage")
					return err
				}
			}

			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, taskletApp, version)

	app = commands.NewTaskCmd(flags, taskletApp).Register(app)
	app = commands.NewThemeCmd(flags, taskletApp).Register(app)
	app = commands.NewCounterCmd(flags, taskletApp).Register(app)
	app = commands.NewResetCmd(flags, taskletApp).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)

	// Register TUI flags on root command
	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'tasklet --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
