package pipeline

// RunStats tracks aggregate counters and byte totals across a batch run.
// Processed counts files actually transformed; Skipped counts files that
// needed no work (already converted, already at target rate, …); Failed
// counts per-file errors that were logged and passed over.
type RunStats struct {
	Total            int
	Current          int
	Processed        int
	Skipped          int
	Failed           int
	TotalInputBytes  int64
	TotalOutputBytes int64
}

// SpaceDelta returns the aggregate byte difference between inputs and outputs.
// Positive means outputs are smaller; negative means they grew.
func (s *RunStats) SpaceDelta() int64 {
	return s.TotalInputBytes - s.TotalOutputBytes
}
