package commands

import (
	"fmt"
	"io"
	"sync"

	"github.com/colonyops/tasklet/internal/core/slot"
)

// Warnings buffers persistence failures while a command runs so they can be
// printed once it finishes, after the TUI has released the terminal.
// Repeated failures of the same operation on the same key collapse into one
// line with a count. Safe for concurrent use.
type Warnings struct {
	mu     sync.Mutex
	order  []string
	counts map[string]int
}

// Handle records err. It matches the signature slot.WithErrorHandler expects.
func (w *Warnings) Handle(err *slot.PersistenceError) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.counts == nil {
		w.counts = make(map[string]int)
	}

	msg := err.Error()
	if _, ok := w.counts[msg]; !ok {
		w.order = append(w.order, msg)
	}
	w.counts[msg]++
}

// Len returns the number of distinct warnings buffered.
func (w *Warnings) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.order)
}

// Flush writes all buffered warnings to out and clears the buffer.
func (w *Warnings) Flush(out io.Writer) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, msg := range w.order {
		line := "warning: " + msg
		if n := w.counts[msg]; n > 1 {
			line = fmt.Sprintf("%s (x%d)", line, n)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	w.order = nil
	w.counts = nil
	return nil
}
