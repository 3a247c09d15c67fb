package task

import (
	"errors"
	"fmt"
)

// ErrTooShort matches (via errors.Is) a ValidationError of kind KindTooShort.
var ErrTooShort = errors.New("task text too short")

// ValidationKind classifies a rejected task input.
type ValidationKind string

const KindTooShort ValidationKind = "too-short"

// ValidationError is returned when task input is rejected at creation.
type ValidationError struct {
	Kind   ValidationKind
	Length int // rune count of the trimmed input
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindTooShort:
		return fmt.Sprintf("task text must be at least %d characters (got %d)", MinTextLength, e.Length)
	default:
		return fmt.Sprintf("invalid task: %s", e.Kind)
	}
}

// Is lets errors.Is(err, ErrTooShort) match a too-short ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrTooShort && e.Kind == KindTooShort
}
