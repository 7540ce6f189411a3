package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/theptrk/ortools-scheduling/core/metrics"
)

func TestPromSinkRecordsEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	for i := 1; i <= 3; i++ {
		if err := sink.RecordSolution(coremetrics.SolutionEvent{RunID: "run-1", Index: i}); err != nil {
			t.Fatalf("record solution: %v", err)
		}
	}
	if err := sink.RecordSolveResult(coremetrics.SolveResult{
		RunID:     "run-1",
		Status:    "FEASIBLE",
		Solutions: 3,
		Conflicts: 7,
		Branches:  21,
		WallTime:  2 * time.Second,
	}); err != nil {
		t.Fatalf("record solve result: %v", err)
	}

	ps := sink.(*PromSink)
	if got := testutil.ToFloat64(ps.solutions.WithLabelValues("run-1")); got != 3 {
		t.Fatalf("solutions counter %v, want 3", got)
	}
	if got := testutil.ToFloat64(ps.solves.WithLabelValues("FEASIBLE")); got != 1 {
		t.Fatalf("solves counter %v, want 1", got)
	}
	if got := testutil.ToFloat64(ps.conflicts); got != 7 {
		t.Fatalf("conflicts gauge %v, want 7", got)
	}
	if got := testutil.ToFloat64(ps.wallTime); got != 2 {
		t.Fatalf("wall time gauge %v, want 2", got)
	}
}

func TestPromSinkSurvivesDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("first register: %v", err)
	}
	sink, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("second register: %v", err)
	}
	if err := sink.RecordSolution(coremetrics.SolutionEvent{RunID: "run-1"}); err != nil {
		t.Fatalf("record solution: %v", err)
	}
}

// failSink always errors, for fan-out testing.
type failSink struct{}

func (failSink) RecordSolution(coremetrics.SolutionEvent) error { return errors.New("backend down") }
func (failSink) RecordSolveResult(coremetrics.SolveResult) error {
	return errors.New("backend down")
}

// countSink counts calls.
type countSink struct{ solutions, solves int }

func (s *countSink) RecordSolution(coremetrics.SolutionEvent) error { s.solutions++; return nil }
func (s *countSink) RecordSolveResult(coremetrics.SolveResult) error {
	s.solves++
	return nil
}

func TestMultiSinkFansOutPastFailures(t *testing.T) {
	counter := &countSink{}
	multi := NewMultiSink(failSink{}, counter)

	if err := multi.RecordSolution(coremetrics.SolutionEvent{}); err == nil {
		t.Fatalf("failing backend error swallowed")
	}
	if err := multi.RecordSolveResult(coremetrics.SolveResult{}); err == nil {
		t.Fatalf("failing backend error swallowed")
	}
	if counter.solutions != 1 || counter.solves != 1 {
		t.Fatalf("later sink starved: %+v", counter)
	}
}
