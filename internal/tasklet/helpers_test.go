package tasklet

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/colonyops/tasklet/internal/data/memstore"
)

// countingMedium counts Set calls on top of a memstore.
type countingMedium struct {
	*memstore.Store
	sets atomic.Int32
}

func newCountingMedium() *countingMedium {
	return &countingMedium{Store: memstore.New()}
}

func (m *countingMedium) Set(ctx context.Context, key, value string) error {
	m.sets.Add(1)
	return m.Store.Set(ctx, key, value)
}

func (m *countingMedium) Writes() int {
	return int(m.sets.Load())
}

var errUnwritable = errors.New("medium is read-only")

// unwritableMedium rejects every Set.
type unwritableMedium struct {
	*memstore.Store
}

func (m *unwritableMedium) Set(context.Context, string, string) error {
	return errUnwritable
}
