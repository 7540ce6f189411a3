package metrics

import (
	"errors"

	coremetrics "github.com/theptrk/ortools-scheduling/core/metrics"
)

// MultiSink fans events out to several sinks. Errors are collected, not
// short-circuited, so one failing backend does not starve the others.
type MultiSink struct {
	sinks []coremetrics.Sink
}

// NewMultiSink builds a sink writing to all the given sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) RecordSolution(ev coremetrics.SolutionEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordSolution(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordSolveResult(res coremetrics.SolveResult) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordSolveResult(res); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
