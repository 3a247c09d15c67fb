// Package task defines the checklist task model and the pure derivations
// (counts, filtered views, completion percentage) computed from a snapshot.
package task

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MinTextLength is the minimum number of characters (runes) in a task's text.
const MinTextLength = 3

// Task is a single checklist entry.
type Task struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Status returns the task state as a word, for display.
func (t Task) Status() string {
	if t.Done {
		return "done"
	}
	return "pending"
}

// NormalizeText trims raw input and checks the minimum length.
// Validation happens only here, at creation; it is never reapplied to stored tasks.
func NormalizeText(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if n := utf8.RuneCountInString(text); n < MinTextLength {
		return "", &ValidationError{Kind: KindTooShort, Length: n}
	}
	return text, nil
}

// Filter selects a subset of tasks for display.
type Filter string

const (
	FilterAll    Filter = "all"
	FilterActive Filter = "active"
	FilterDone   Filter = "done"
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterDone}

// IsValid reports whether f is a known filter.
func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterDone:
		return true
	default:
		return false
	}
}

// Next returns the filter after f, wrapping around.
func (f Filter) Next() Filter {
	for i, candidate := range Filters {
		if candidate == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// Matches reports whether t belongs in the view selected by f.
func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Done
	case FilterDone:
		return t.Done
	default:
		return true
	}
}

// ParseFilter converts user input into a Filter. An empty string means all.
func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterAll, nil
	}
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid filter %q: must be one of all, active, done", s)
	}
	return f, nil
}
