package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasklet/internal/tasklet"
)

type CounterCmd struct {
	flags *Flags
	app   *tasklet.App
}

// NewCounterCmd creates a new counter command.
func NewCounterCmd(flags *Flags, app *tasklet.App) *CounterCmd {
	return &CounterCmd{flags: flags, app: app}
}

// Register adds the counter command to the application.
func (cmd *CounterCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "counter",
		Usage:       "Show or change the counter",
		UsageText:   "tasklet counter [inc|dec|reset]",
		Description: "Prints the counter after applying the optional action. The counter never goes below zero.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *CounterCmd) run(ctx context.Context, c *cli.Command) error {
	switch arg := c.Args().First(); arg {
	case "":
	case "inc":
		cmd.app.Counter.Increment(ctx)
	case "dec":
		cmd.app.Counter.Decrement(ctx)
	case "reset":
		cmd.app.Counter.Reset(ctx)
	default:
		return fmt.Errorf("unknown counter action %q: must be one of inc, dec, reset", arg)
	}

	_, _ = fmt.Fprintln(c.Root().Writer, cmd.app.Counter.Value())
	return nil
}
