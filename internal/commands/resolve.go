package commands

import (
	"fmt"
	"strings"

	"github.com/colonyops/tasklet/internal/core/task"
	"github.com/colonyops/tasklet/internal/tasklet"
)

// shortIDLen is how many id characters the table output shows.
const shortIDLen = 8

// resolveTask finds a task by exact id, or by a unique id prefix.
func resolveTask(store *tasklet.TaskStore, ref string) (task.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return task.Task{}, fmt.Errorf("task id is required")
	}

	if t, ok := store.Get(ref); ok {
		return t, nil
	}

	var matches []task.Task
	for _, t := range store.Tasks() {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return task.Task{}, fmt.Errorf("no task matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return task.Task{}, fmt.Errorf("%q matches %d tasks, use a longer prefix", ref, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}
