package commands

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tasklet/internal/core/slot"
)

func TestWarnings_CollapsesRepeats(t *testing.T) {
	var w Warnings
	diskFull := errors.New("disk full")

	w.Handle(&slot.PersistenceError{Op: slot.OpWrite, Key: "tasks.v1", Err: diskFull})
	w.Handle(&slot.PersistenceError{Op: slot.OpWrite, Key: "tasks.v1", Err: diskFull})
	w.Handle(&slot.PersistenceError{Op: slot.OpDecode, Key: "counter", Err: errors.New("bad int")})

	assert.Equal(t, 2, w.Len())

	var out bytes.Buffer
	require.NoError(t, w.Flush(&out))
	assert.Equal(t,
		"warning: slot write \"tasks.v1\": disk full (x2)\n"+
			"warning: slot decode \"counter\": bad int\n",
		out.String())

	out.Reset()
	require.NoError(t, w.Flush(&out))
	assert.Empty(t, out.String(), "flush clears the buffer")
	assert.Zero(t, w.Len())
}

func TestWarnings_ConcurrentHandle(t *testing.T) {
	var w Warnings
	var wg sync.WaitGroup

	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Handle(&slot.PersistenceError{Op: slot.OpWrite, Key: "k", Err: errors.New("boom")})
		}()
	}
	wg.Wait()

	var out bytes.Buffer
	require.NoError(t, w.Flush(&out))
	assert.Equal(t, "warning: slot write \"k\": boom (x20)\n", out.String())
}
