package task

import "math"

// Counts summarizes a collection.
type Counts struct {
	Total  int `json:"total"`
	Done   int `json:"done"`
	Active int `json:"active"`
}

// Stats is Counts plus the completion percentage.
type Stats struct {
	Counts
	Percent int `json:"percent"`
}

// DeriveCounts counts total, done and active tasks.
func DeriveCounts(tasks []Task) Counts {
	c := Counts{Total: len(tasks)}
	for _, t := range tasks {
		if t.Done {
			c.Done++
		}
	}
	c.Active = c.Total - c.Done
	return c
}

// DeriveFiltered returns the tasks matching f in their original order.
// The result is a new slice; tasks is not modified.
func DeriveFiltered(tasks []Task, f Filter) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// DerivePercent returns round(100 * done / total), or 0 when total is not
// positive. Halves round away from zero.
func DerivePercent(total, done int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}

// Summarize computes counts and percentage in one pass.
func Summarize(tasks []Task) Stats {
	c := DeriveCounts(tasks)
	return Stats{Counts: c, Percent: DerivePercent(c.Total, c.Done)}
}
