package entities

// TaskCounts holds the task totals for one list at the moment of the read.
// Derived values are recomputed on every read and never stored.
type TaskCounts struct {
	Total     int64
	Completed int64
}

func (c TaskCounts) Pending() int64 {
	return c.Total - c.Completed
}

// CompletionPercentage returns 0 for an empty list, otherwise the ratio of
// completed to total tasks scaled to 0..100.
func (c TaskCounts) CompletionPercentage() float64 {
	if c.Total == 0 {
		return 0
	}
	return 100 * float64(c.Completed) / float64(c.Total)
}
