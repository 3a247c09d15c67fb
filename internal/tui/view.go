package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tasklet/internal/core/styles"
	"github.com/colonyops/tasklet/internal/core/task"
)

const emptyMessage = "No tasks yet. Add the first one above."

// View implements tea.Model.
func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderStats(),
		m.renderFilters(),
		styles.InputStyle.Render(m.input.View()),
	}

	if m.err != "" {
		sections = append(sections, styles.ErrorStyle.Render(m.err))
	}

	sections = append(sections, "", m.renderList(), styles.HelpStyle.Render(m.help.View(m.keys)))

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n"))
}

func (m Model) renderHeader() string {
	icon := styles.IconDark
	if !m.app.Theme.Dark() {
		icon = styles.IconLight
	}

	title := styles.TitleStyle.Render("tasklet")
	if m.build.Version != "" {
		title += styles.MutedStyle.Render(" " + m.build.Version)
	}

	right := fmt.Sprintf("%s %s  %s",
		icon,
		m.app.Theme.Name(),
		styles.CounterStyle.Render(fmt.Sprintf("count %d", m.app.Counter.Value())),
	)

	gap := max(1, m.contentWidth()-lipgloss.Width(title)-lipgloss.Width(right))
	return styles.HeaderStyle.Render(title + strings.Repeat(" ", gap) + right)
}

func (m Model) renderStats() string {
	stats := task.Summarize(m.tasks)
	line := styles.MutedStyle.Render(fmt.Sprintf("Total: %d • Done: %d • Active: %d",
		stats.Total, stats.Done, stats.Active))
	pct := styles.MutedStyle.Render(fmt.Sprintf("%d%% complete", stats.Percent))

	gap := max(1, m.contentWidth()-lipgloss.Width(line)-lipgloss.Width(pct))
	bar := m.progress.ViewAs(float64(stats.Percent) / 100)
	return line + strings.Repeat(" ", gap) + pct + "\n" + bar
}

func (m Model) renderFilters() string {
	tabs := make([]string, 0, len(task.Filters))
	for _, f := range task.Filters {
		if f == m.filter {
			tabs = append(tabs, styles.FilterActiveStyle.Render(string(f)))
		} else {
			tabs = append(tabs, styles.FilterStyle.Render(string(f)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderList() string {
	visible := m.visible()
	if len(m.tasks) == 0 {
		return styles.MutedStyle.Render(emptyMessage)
	}
	if len(visible) == 0 {
		return styles.MutedStyle.Render(fmt.Sprintf("No %s tasks.", m.filter))
	}

	lines := make([]string, 0, len(visible))
	for i, t := range visible {
		lines = append(lines, m.renderTask(t, i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTask(t task.Task, selected bool) string {
	cursor := " "
	if selected {
		cursor = styles.CursorStyle.Render(styles.IconCursor)
	}

	box := styles.IconUnchecked
	text := styles.TaskStyle.Render(t.Text)
	if t.Done {
		box = styles.IconChecked
		text = styles.TaskDoneStyle.Render(t.Text)
	}

	line := fmt.Sprintf("%s %s %s", cursor, box, text)
	if selected {
		return styles.SelectedStyle.Render(line)
	}
	return line
}

func (m Model) contentWidth() int {
	return max(20, m.width-4)
}
