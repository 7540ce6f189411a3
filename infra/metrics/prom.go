package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/theptrk/ortools-scheduling/core/metrics"
)

// PromSink records solver events in Prometheus metrics.
type PromSink struct {
	solutions *prometheus.CounterVec
	solves    *prometheus.CounterVec
	conflicts prometheus.Gauge
	branches  prometheus.Gauge
	wallTime  prometheus.Gauge
}

// NewPromSink registers solver metrics on the default Prometheus registerer.
func NewPromSink() (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	solutions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roster_solutions_total",
		Help: "Total number of solutions reported during enumeration",
	}, []string{"run_id"})
	solves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roster_solves_total",
		Help: "Total number of solve runs by terminal status",
	}, []string{"status"})
	conflicts := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "roster_solver_conflicts",
		Help: "Conflicts encountered during the last solve run",
	})
	branches := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "roster_solver_branches",
		Help: "Branching decisions taken during the last solve run",
	})
	wallTime := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "roster_solver_wall_time_seconds",
		Help: "Wall time of the last solve run",
	})

	if err := reg.Register(solutions); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			solutions = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(solves); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			solves = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	for _, g := range []*prometheus.Gauge{&conflicts, &branches, &wallTime} {
		if err := reg.Register(*g); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				*g = are.ExistingCollector.(prometheus.Gauge)
			} else {
				return nil, err
			}
		}
	}

	return &PromSink{
		solutions: solutions,
		solves:    solves,
		conflicts: conflicts,
		branches:  branches,
		wallTime:  wallTime,
	}, nil
}

// RecordSolution increments the solution counter for the run.
func (s *PromSink) RecordSolution(ev coremetrics.SolutionEvent) error {
	s.solutions.WithLabelValues(ev.RunID).Inc()
	return nil
}

// RecordSolveResult counts the run by status and captures solver effort.
func (s *PromSink) RecordSolveResult(res coremetrics.SolveResult) error {
	s.solves.WithLabelValues(res.Status).Inc()
	s.conflicts.Set(float64(res.Conflicts))
	s.branches.Set(float64(res.Branches))
	s.wallTime.Set(res.WallTime.Seconds())
	return nil
}
