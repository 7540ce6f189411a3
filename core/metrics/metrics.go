package metrics

import "time"

// SolutionEvent is emitted once per discovered solution.
type SolutionEvent struct {
	RunID       string
	Index       int
	Assignments int
	Time        time.Time
}

// SolveResult summarizes one finished solve run.
type SolveResult struct {
	RunID     string
	Status    string
	Solutions int
	Conflicts int
	Branches  int
	WallTime  time.Duration
	Time      time.Time
}

// SolutionRecorder records per-solution events.
type SolutionRecorder interface {
	RecordSolution(ev SolutionEvent) error
}

// SolveRecorder records solve run summaries.
type SolveRecorder interface {
	RecordSolveResult(res SolveResult) error
}

// Sink records solver events for observability purposes.
type Sink interface {
	SolutionRecorder
	SolveRecorder
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordSolution(SolutionEvent) error  { return nil }
func (NopSink) RecordSolveResult(SolveResult) error { return nil }

// Config selects the metrics backends to enable.
type Config struct {
	PrometheusEnabled bool `json:"prometheus_enabled"`
}
