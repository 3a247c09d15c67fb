package slot

import "fmt"

// Op names the medium interaction that failed.
type Op string

const (
	OpRead   Op = "read"
	OpDecode Op = "decode"
	OpEncode Op = "encode"
	OpWrite  Op = "write"
	OpDelete Op = "delete"
)

// PersistenceError describes a failed medium interaction. Slots never return
// it; it is logged and handed to the slot's error handler, if any.
type PersistenceError struct {
	Op  Op
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("slot %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
