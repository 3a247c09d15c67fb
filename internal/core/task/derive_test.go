package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sample() []Task {
	return []Task{
		{ID: "1", Text: "first", Done: false},
		{ID: "2", Text: "second", Done: true},
		{ID: "3", Text: "third", Done: false},
		{ID: "4", Text: "fourth", Done: true},
	}
}

func TestDeriveCounts(t *testing.T) {
	assert.Equal(t, Counts{Total: 4, Done: 2, Active: 2}, DeriveCounts(sample()))
	assert.Equal(t, Counts{}, DeriveCounts(nil))
}

func TestDeriveFiltered(t *testing.T) {
	tasks := sample()

	tests := []struct {
		filter Filter
		want   []string
	}{
		{FilterAll, []string{"1", "2", "3", "4"}},
		{FilterActive, []string{"1", "3"}},
		{FilterDone, []string{"2", "4"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			got := DeriveFiltered(tasks, tt.filter)
			ids := make([]string, len(got))
			for i, task := range got {
				ids[i] = task.ID
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	assert.Equal(t, sample(), tasks, "input must not be modified")
	assert.Empty(t, DeriveFiltered(nil, FilterDone))
}

func TestDeriveFiltered_ReturnsNewSlice(t *testing.T) {
	tasks := sample()
	all := DeriveFiltered(tasks, FilterAll)
	all[0].Text = "changed"
	assert.Equal(t, "first", tasks[0].Text)
}

func TestDerivePercent(t *testing.T) {
	tests := []struct {
		total, done, want int
	}{
		{0, 0, 0},
		{3, 1, 33},
		{4, 3, 75},
		{3, 2, 67},
		{8, 1, 13}, // 12.5 rounds up
		{2, 2, 100},
		{-1, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DerivePercent(tt.total, tt.done), "DerivePercent(%d, %d)", tt.total, tt.done)
	}
}

func TestSummarize(t *testing.T) {
	stats := Summarize(sample())
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Done)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 50, stats.Percent)
}
