package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasklet/internal/tasklet"
)

type ResetCmd struct {
	flags *Flags
	app   *tasklet.App

	all bool
}

// NewResetCmd creates a new reset command.
func NewResetCmd(flags *Flags, app *tasklet.App) *ResetCmd {
	return &ResetCmd{flags: flags, app: app}
}

// Register adds the reset command to the application.
func (cmd *ResetCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "reset",
		Usage:     "Delete all tasks",
		UsageText: "tasklet reset [--all]",
		Description: `Clears the stored task list. With --all the theme and counter are
reset to their defaults as well.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "all",
				Usage:       "also reset theme and counter",
				Destination: &cmd.all,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ResetCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.all {
		cmd.app.ResetAll(ctx)
		_, _ = fmt.Fprintln(c.Root().Writer, "reset tasks, theme and counter")
		return nil
	}

	cmd.app.Tasks.Reset(ctx)
	_, _ = fmt.Fprintln(c.Root().Writer, "reset tasks")
	return nil
}
