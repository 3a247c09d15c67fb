package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasklet/internal/tasklet"
)

type ThemeCmd struct {
	flags *Flags
	app   *tasklet.App
}

// NewThemeCmd creates a new theme command.
func NewThemeCmd(flags *Flags, app *tasklet.App) *ThemeCmd {
	return &ThemeCmd{flags: flags, app: app}
}

// Register adds the theme command to the application.
func (cmd *ThemeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "theme",
		Usage:     "Show or change the color theme",
		UsageText: "tasklet theme [dark|light|toggle]",
		Description: `Prints the active theme, or changes it when an argument is given.

The palette used for each theme is set in the config file under
tui.dark_palette and tui.light_palette.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *ThemeCmd) run(ctx context.Context, c *cli.Command) error {
	switch arg := c.Args().First(); arg {
	case "":
	case "dark":
		cmd.app.Theme.Set(ctx, true)
	case "light":
		cmd.app.Theme.Set(ctx, false)
	case "toggle":
		cmd.app.Theme.Toggle(ctx)
	default:
		return fmt.Errorf("unknown theme %q: must be one of dark, light, toggle", arg)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "%s (%s)\n", cmd.app.Theme.Name(), cmd.app.PaletteName())
	return nil
}
