package tasklet

import (
	"context"
	"slices"

	"github.com/rs/zerolog"

	"github.com/colonyops/tasklet/internal/core/kv"
	"github.com/colonyops/tasklet/internal/core/slot"
	"github.com/colonyops/tasklet/internal/core/task"
)

// TasksKey is the medium key (within the app namespace) holding the task list.
const TasksKey = "tasks.v1"

// TaskStore owns the task collection. Every mutation replaces the whole
// collection and persists it with a single write; reads return copies.
type TaskStore struct {
	slot  *slot.Slot[[]task.Task]
	newID task.IDGenerator
	log   zerolog.Logger
}

// NewTaskStore loads the collection from medium. A missing or unreadable entry
// yields an empty collection.
func NewTaskStore(ctx context.Context, medium kv.Medium, log zerolog.Logger, opts ...slot.Option) *TaskStore {
	log = log.With().Str("cmp", "task-store").Logger()
	opts = append([]slot.Option{slot.WithLogger(log)}, opts...)

	return &TaskStore{
		slot:  slot.NewFunc(ctx, medium, TasksKey, func() []task.Task { return []task.Task{} }, opts...),
		newID: task.NewID,
		log:   log,
	}
}

// Tasks returns a copy of the collection, newest first.
func (s *TaskStore) Tasks() []task.Task {
	return slices.Clone(s.slot.Value())
}

// Get returns the task with the given id.
func (s *TaskStore) Get(id string) (task.Task, bool) {
	tasks := s.slot.Value()
	if i := indexOf(tasks, id); i >= 0 {
		return tasks[i], true
	}
	return task.Task{}, false
}

// Create validates rawText and prepends a new task. A *task.ValidationError is
// returned (and nothing changes) when the trimmed text is too short.
func (s *TaskStore) Create(ctx context.Context, rawText string, done bool) (task.Task, error) {
	text, err := task.NormalizeText(rawText)
	if err != nil {
		return task.Task{}, err
	}

	var created task.Task
	s.slot.Update(ctx, func(tasks []task.Task) []task.Task {
		created = task.Task{ID: s.uniqueID(tasks), Text: text, Done: done}
		next := make([]task.Task, 0, len(tasks)+1)
		next = append(next, created)
		return append(next, tasks...)
	})

	s.log.Debug().Ctx(ctx).Str("id", created.ID).Bool("done", done).Msg("task created")
	return created, nil
}

// Toggle flips the done flag of the task with id. An unknown id is a no-op
// and reports false.
func (s *TaskStore) Toggle(ctx context.Context, id string) bool {
	if indexOf(s.slot.Value(), id) < 0 {
		return false
	}

	s.slot.Update(ctx, func(tasks []task.Task) []task.Task {
		next := slices.Clone(tasks)
		if i := indexOf(next, id); i >= 0 {
			next[i].Done = !next[i].Done
		}
		return next
	})
	return true
}

// Remove deletes the task with id. An unknown id is a no-op and reports false.
func (s *TaskStore) Remove(ctx context.Context, id string) bool {
	if indexOf(s.slot.Value(), id) < 0 {
		return false
	}

	s.slot.Update(ctx, func(tasks []task.Task) []task.Task {
		return slices.DeleteFunc(slices.Clone(tasks), func(t task.Task) bool { return t.ID == id })
	})
	return true
}

// ClearCompleted removes every done task in one write and returns how many
// were removed. Nothing is written when no task is done.
func (s *TaskStore) ClearCompleted(ctx context.Context) int {
	removed := task.DeriveCounts(s.slot.Value()).Done
	if removed == 0 {
		return 0
	}

	s.slot.Update(ctx, func(tasks []task.Task) []task.Task {
		return task.DeriveFiltered(tasks, task.FilterActive)
	})

	s.log.Debug().Ctx(ctx).Int("removed", removed).Msg("cleared completed tasks")
	return removed
}

// ToggleAll marks every task done, unless all already are, in which case it
// marks every task pending. A mixed collection therefore becomes all done.
// An empty collection is left untouched.
func (s *TaskStore) ToggleAll(ctx context.Context) {
	if len(s.slot.Value()) == 0 {
		return
	}

	s.slot.Update(ctx, func(tasks []task.Task) []task.Task {
		allDone := len(tasks) > 0 && task.DeriveCounts(tasks).Active == 0
		next := slices.Clone(tasks)
		for i := range next {
			next[i].Done = !allDone
		}
		return next
	})
}

// Reset clears the stored collection.
func (s *TaskStore) Reset(ctx context.Context) {
	s.slot.Clear(ctx)
}

// Subscribe calls fn with a copy of the collection after every change.
func (s *TaskStore) Subscribe(fn func([]task.Task)) (unsubscribe func()) {
	return s.slot.Subscribe(func(tasks []task.Task) {
		fn(slices.Clone(tasks))
	})
}

// uniqueID generates ids until one is not already in tasks.
func (s *TaskStore) uniqueID(tasks []task.Task) string {
	for range 8 {
		id := s.newID()
		if id != "" && indexOf(tasks, id) < 0 {
			return id
		}
	}

	for {
		id := task.FallbackID()
		if indexOf(tasks, id) < 0 {
			return id
		}
	}
}

func indexOf(tasks []task.Task, id string) int {
	return slices.IndexFunc(tasks, func(t task.Task) bool { return t.ID == id })
}
