// Package tui implements the interactive task view.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/tasklet/internal/core/logging"
	"github.com/colonyops/tasklet/internal/core/styles"
	"github.com/colonyops/tasklet/internal/core/task"
	"github.com/colonyops/tasklet/internal/tasklet"
)

const (
	defaultWidth = 72
	inputLimit   = 256
)

// BuildInfo holds build-time metadata for display in the TUI.
type BuildInfo struct {
	Version string
}

// Model is the bubbletea model for the task view. The input is always
// focused; list actions are bound to control keys.
type Model struct {
	ctx   context.Context
	app   *tasklet.App
	build BuildInfo
	log   zerolog.Logger

	keys     keyMap
	input    textinput.Model
	help     help.Model
	progress progress.Model

	tasks  []task.Task // current snapshot, newest first
	filter task.Filter
	cursor int // index into the filtered view
	err    string
	width  int
}

// New creates a Model over app.
func New(ctx context.Context, app *tasklet.App, build BuildInfo) Model {
	input := textinput.New()
	input.Placeholder = "Add a task (at least 3 characters)"
	input.Prompt = "+ "
	input.CharLimit = inputLimit
	input.Focus()

	m := Model{
		ctx:      ctx,
		app:      app,
		build:    build,
		log:      logging.Component("tui"),
		keys:     defaultKeyMap(),
		input:    input,
		help:     help.New(),
		progress: progress.New(progress.WithoutPercentage()),
		filter:   task.FilterAll,
		width:    defaultWidth,
	}
	m.applyStyles()
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = max(10, msg.Width-len(m.input.Prompt)-4)
		m.progress.Width = max(10, msg.Width-4)
		return m, nil

	case tea.KeyMsg:
		if handled, cmd := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.err = ""
	}
	return m, cmd
}

// handleKey runs the action bound to msg, if any.
func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return true, tea.Quit
	case key.Matches(msg, m.keys.AddDone):
		m.submit(true)
	case key.Matches(msg, m.keys.Add):
		m.submit(false)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			m.app.Tasks.Toggle(logging.WithTaskID(m.ctx, t.ID), t.ID)
			m.refresh()
		}
	case key.Matches(msg, m.keys.Remove):
		if t, ok := m.selected(); ok {
			m.app.Tasks.Remove(logging.WithTaskID(m.ctx, t.ID), t.ID)
			m.refresh()
		}
	case key.Matches(msg, m.keys.ToggleAll):
		m.app.Tasks.ToggleAll(m.ctx)
		m.refresh()
	case key.Matches(msg, m.keys.ClearDone):
		m.app.Tasks.ClearCompleted(m.ctx)
		m.refresh()
	case key.Matches(msg, m.keys.Filter):
		m.filter = m.filter.Next()
		m.cursor = 0
		m.refresh()
	case key.Matches(msg, m.keys.Theme):
		m.app.Theme.Toggle(m.ctx)
		m.applyStyles()
	case key.Matches(msg, m.keys.CounterInc):
		m.app.Counter.Increment(m.ctx)
	case key.Matches(msg, m.keys.CounterDec):
		m.app.Counter.Decrement(m.ctx)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		return false, nil
	}
	return true, nil
}

// submit creates a task from the input. On a validation error the input is
// kept so the user can fix it.
func (m *Model) submit(done bool) {
	created, err := m.app.Tasks.Create(m.ctx, m.input.Value(), done)
	if err != nil {
		var verr *task.ValidationError
		if errors.As(err, &verr) {
			m.err = fmt.Sprintf("Task must be at least %d characters", task.MinTextLength)
		} else {
			m.err = err.Error()
		}
		return
	}

	m.log.Debug().Str("id", created.ID).Msg("task added from tui")
	m.input.Reset()
	m.err = ""
	m.cursor = 0
	m.refresh()
}

// refresh reloads the snapshot and clamps the cursor to the filtered view.
func (m *Model) refresh() {
	m.tasks = m.app.Tasks.Tasks()
	visible := len(m.visible())
	switch {
	case visible == 0:
		m.cursor = 0
	case m.cursor >= visible:
		m.cursor = visible - 1
	}
}

func (m *Model) moveCursor(delta int) {
	visible := len(m.visible())
	if visible == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), visible-1)
}

func (m Model) visible() []task.Task {
	return task.DeriveFiltered(m.tasks, m.filter)
}

func (m Model) selected() (task.Task, bool) {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return task.Task{}, false
	}
	return visible[m.cursor], true
}

// applyStyles pushes the active palette into the bubbles components.
func (m *Model) applyStyles() {
	m.input.PromptStyle = styles.CursorStyle
	m.input.TextStyle = styles.TaskStyle
	m.input.PlaceholderStyle = styles.MutedStyle
	m.input.Cursor.Style = styles.CursorStyle

	m.help.Styles.ShortKey = styles.MutedStyle.Bold(true)
	m.help.Styles.ShortDesc = styles.MutedStyle
	m.help.Styles.ShortSeparator = styles.MutedStyle
	m.help.Styles.FullKey = styles.MutedStyle.Bold(true)
	m.help.Styles.FullDesc = styles.MutedStyle
	m.help.Styles.FullSeparator = styles.MutedStyle
	m.help.ShortSeparator = " • "

	m.progress.FullColor = string(styles.ColorSuccess)
	m.progress.EmptyColor = string(styles.ColorSurface)
}

// Run starts the TUI and blocks until the user quits.
func Run(ctx context.Context, app *tasklet.App, build BuildInfo) error {
	p := tea.NewProgram(New(ctx, app, build), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
