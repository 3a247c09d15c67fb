package task

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces task identifiers.
type IDGenerator func() string

var fallbackSeq atomic.Uint64

// NewID returns a random UUID. If the random source fails it falls back to a
// value derived from the clock and a process-wide sequence, which is still
// distinct within a session.
func NewID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return FallbackID()
	}
	return id.String()
}

// FallbackID returns "<unix nanos>-<sequence>".
func FallbackID() string {
	seq := fallbackSeq.Add(1)
	return strconv.FormatInt(time.Now().UnixNano(), 10) + "-" + strconv.FormatUint(seq, 10)
}
