package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletionPercentage(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		completed int64
		want      float64
	}{
		{"empty list", 0, 0, 0},
		{"half done", 2, 1, 50},
		{"all done", 3, 3, 100},
		{"one third", 3, 1, 100.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := TaskCounts{Total: tt.total, Completed: tt.completed}
			assert.InDelta(t, tt.want, counts.CompletionPercentage(), 1e-9)
		})
	}
}

func TestTaskCountsPending(t *testing.T) {
	counts := TaskCounts{Total: 5, Completed: 2}
	assert.Equal(t, int64(3), counts.Pending())
	assert.Equal(t, counts.Total, counts.Completed+counts.Pending())
}
