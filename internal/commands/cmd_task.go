package commands

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasklet/internal/core/logging"
	"github.com/colonyops/tasklet/internal/core/task"
	"github.com/colonyops/tasklet/internal/tasklet"
	"github.com/colonyops/tasklet/pkg/iojson"
	"github.com/colonyops/tasklet/pkg/tmpl"
)

// TaskCmd implements the tasklet task command group.
type TaskCmd struct {
	flags *Flags
	app   *tasklet.App

	// add flags
	addDone bool

	// ls flags
	lsFilter string
	lsJSON   bool
	lsFormat string

	// stats flags
	statsJSON bool

	// import flags
	importReader iojson.FileReader[[]importItem]
}

// importItem is one entry of the import document.
type importItem struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// NewTaskCmd creates a new task command.
func NewTaskCmd(flags *Flags, app *tasklet.App) *TaskCmd {
	return &TaskCmd{flags: flags, app: app}
}

// Register adds the task command to the application.
func (cmd *TaskCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "task",
		Usage: "Manage tasks",
		Description: `Task commands operate on the same list the TUI shows.

Tasks are listed newest first. Commands taking an <id> accept any unique
prefix of the id, as shown by "tasklet task ls".

Examples:
  tasklet task add "write the release notes"
  tasklet task add --done "already shipped"
  tasklet task ls --filter active
  tasklet task toggle 3f2a
  tasklet task clear-done`,
		Commands: []*cli.Command{
			cmd.addCmd(),
			cmd.lsCmd(),
			cmd.toggleCmd(),
			cmd.rmCmd(),
			cmd.toggleAllCmd(),
			cmd.clearDoneCmd(),
			cmd.statsCmd(),
			cmd.importCmd(),
		},
	})

	return app
}

func (cmd *TaskCmd) addCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a task",
		UsageText: "tasklet task add [--done] <text...>",
		Description: `Adds a task to the top of the list and prints it as JSON.

All arguments are joined with spaces. The trimmed text must be at least
3 characters long.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "done",
				Aliases:     []string{"d"},
				Usage:       "add the task already completed",
				Destination: &cmd.addDone,
			},
		},
		Action: cmd.runAdd,
	}
}

func (cmd *TaskCmd) lsCmd() *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Aliases:   []string{"list"},
		Usage:     "List tasks",
		UsageText: "tasklet task ls [--filter all|active|done] [--json | --format <template>]",
		Description: `Displays a table of tasks, newest first.

Use --json for one JSON object per line, or --format to render each task
with a Go template. Templates see .ID, .Text, .Done and .Status and may use
the shq, join, upper, lower and check functions.

Examples:
  tasklet task ls --format '{{ check .Done }} {{ .Text }}'`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "filter",
				Aliases:     []string{"f"},
				Usage:       "show only tasks matching the filter (all, active, done)",
				Value:       string(task.FilterAll),
				Destination: &cmd.lsFilter,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.lsJSON,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "render each task with a Go template",
				Destination: &cmd.lsFormat,
			},
		},
		Action: cmd.runLs,
	}
}

func (cmd *TaskCmd) toggleCmd() *cli.Command {
	return &cli.Command{
		Name:          "toggle",
		Usage:         "Flip a task between done and active",
		UsageText:     "tasklet task toggle <id>",
		ShellComplete: TaskIDCompleter(cmd.app),
		Action:        cmd.runToggle,
	}
}

func (cmd *TaskCmd) rmCmd() *cli.Command {
	return &cli.Command{
		Name:          "rm",
		Aliases:       []string{"remove"},
		Usage:         "Remove a task",
		UsageText:     "tasklet task rm <id>",
		ShellComplete: TaskIDCompleter(cmd.app),
		Action:        cmd.runRm,
	}
}

func (cmd *TaskCmd) toggleAllCmd() *cli.Command {
	return &cli.Command{
		Name:      "toggle-all",
		Usage:     "Complete every task, or reopen all if all are done",
		UsageText: "tasklet task toggle-all",
		Action:    cmd.runToggleAll,
	}
}

func (cmd *TaskCmd) clearDoneCmd() *cli.Command {
	return &cli.Command{
		Name:      "clear-done",
		Usage:     "Remove every completed task",
		UsageText: "tasklet task clear-done",
		Action:    cmd.runClearDone,
	}
}

func (cmd *TaskCmd) statsCmd() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Show task counts and completion percentage",
		UsageText: "tasklet task stats [--json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.statsJSON,
			},
		},
		Action: cmd.runStats,
	}
}

func (cmd *TaskCmd) importCmd() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Add tasks from a JSON array",
		UsageText: "tasklet task import [-f file.json]",
		Description: `Reads a JSON array of {"text": string, "done": bool} objects from a file
or stdin and adds them so that the first entry ends up at the top.

Every entry is validated before anything is added.`,
		Flags:  []cli.Flag{cmd.importReader.Flag()},
		Action: cmd.runImport,
	}
}

func (cmd *TaskCmd) runAdd(ctx context.Context, c *cli.Command) error {
	text := strings.Join(c.Args().Slice(), " ")

	created, err := cmd.app.Tasks.Create(ctx, text, cmd.addDone)
	if err != nil {
		return err
	}

	return iojson.WriteLine(c.Root().Writer, created)
}

func (cmd *TaskCmd) runLs(_ context.Context, c *cli.Command) error {
	filter, err := task.ParseFilter(cmd.lsFilter)
	if err != nil {
		return err
	}

	if cmd.lsJSON && cmd.lsFormat != "" {
		return fmt.Errorf("--json and --format cannot be used together")
	}

	tasks := task.DeriveFiltered(cmd.app.Tasks.Tasks(), filter)
	out := c.Root().Writer

	switch {
	case cmd.lsJSON:
		for _, t := range tasks {
			if err := iojson.WriteLine(out, t); err != nil {
				return fmt.Errorf("encode task: %w", err)
			}
		}
		return nil

	case cmd.lsFormat != "":
		tpl, err := tmpl.Parse(cmd.lsFormat)
		if err != nil {
			return err
		}
		for _, t := range tasks {
			line, err := tpl.Execute(taskView{Task: t, Status: t.Status()})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out, line)
		}
		return nil
	}

	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(c.Root().ErrWriter, "No tasks found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tSTATUS\tTEXT")
	for _, t := range tasks {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", shortID(t.ID), t.Status(), t.Text)
	}
	return w.Flush()
}

// taskView is the data passed to --format templates.
type taskView struct {
	task.Task
	Status string
}

func (cmd *TaskCmd) runToggle(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: tasklet task toggle <id>")
	}

	t, err := resolveTask(cmd.app.Tasks, c.Args().First())
	if err != nil {
		return err
	}

	cmd.app.Tasks.Toggle(logging.WithTaskID(ctx, t.ID), t.ID)

	updated, _ := cmd.app.Tasks.Get(t.ID)
	_, _ = fmt.Fprintf(c.Root().Writer, "%s %s\n", shortID(updated.ID), updated.Status())
	return nil
}

func (cmd *TaskCmd) runRm(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: tasklet task rm <id>")
	}

	t, err := resolveTask(cmd.app.Tasks, c.Args().First())
	if err != nil {
		return err
	}

	cmd.app.Tasks.Remove(logging.WithTaskID(ctx, t.ID), t.ID)

	_, _ = fmt.Fprintln(c.Root().Writer, "removed")
	return nil
}

func (cmd *TaskCmd) runToggleAll(ctx context.Context, c *cli.Command) error {
	cmd.app.Tasks.ToggleAll(ctx)

	counts := task.DeriveCounts(cmd.app.Tasks.Tasks())
	_, _ = fmt.Fprintf(c.Root().Writer, "%d done, %d active\n", counts.Done, counts.Active)
	return nil
}

func (cmd *TaskCmd) runClearDone(ctx context.Context, c *cli.Command) error {
	removed := cmd.app.Tasks.ClearCompleted(ctx)

	_, _ = fmt.Fprintf(c.Root().Writer, "cleared %d\n", removed)
	return nil
}

func (cmd *TaskCmd) runStats(_ context.Context, c *cli.Command) error {
	stats := task.Summarize(cmd.app.Tasks.Tasks())

	if cmd.statsJSON {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, stats)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "Total: %d • Done: %d • Active: %d • %d%% complete\n",
		stats.Total, stats.Done, stats.Active, stats.Percent)
	return nil
}

func (cmd *TaskCmd) runImport(ctx context.Context, c *cli.Command) error {
	items, err := cmd.importReader.Read()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	for i, item := range items {
		if _, err := task.NormalizeText(item.Text); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	// Create prepends, so add in reverse to keep the document order.
	for _, item := range slices.Backward(items) {
		if _, err := cmd.app.Tasks.Create(ctx, item.Text, item.Done); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "imported %d\n", len(items))
	return nil
}
