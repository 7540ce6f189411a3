package app

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/theptrk/ortools-scheduling/config"
	"github.com/theptrk/ortools-scheduling/core/engine"
	coremetrics "github.com/theptrk/ortools-scheduling/core/metrics"
	"github.com/theptrk/ortools-scheduling/core/schedule"
	"github.com/theptrk/ortools-scheduling/infra/logger"
	"github.com/theptrk/ortools-scheduling/infra/metrics"
	"github.com/theptrk/ortools-scheduling/infra/sat"
	"github.com/theptrk/ortools-scheduling/internal/eventbus"
)

// Service wires configuration, engine, reporter and metrics for solve runs.
type Service struct {
	cfg  *config.Config
	out  io.Writer
	log  logger.Logger
	sink coremetrics.Sink
	bus  *eventbus.Bus
}

// New creates a Service from the configuration, writing reports to out.
func New(cfg *config.Config, out io.Writer) (*Service, error) {
	logg := logger.New("service")
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if cfg.Metrics.PrometheusEnabled {
		s, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sink = s
	}
	return &Service{cfg: cfg, out: out, log: logg, sink: sink, bus: eventbus.New()}, nil
}

// Run builds the model, solves it once and writes the schedule report
// plus statistics. Configuration defects abort before any output is
// written.
func (s *Service) Run() (engine.Status, error) {
	runID := uuid.NewString()
	s.log.Debugw("starting solve run", map[string]any{"run_id": runID})

	model := sat.New(logger.New("sat"))
	vars, err := schedule.Build(&s.cfg.Roster, model, logger.New("encoder"))
	if err != nil {
		return engine.StatusModelInvalid, err
	}

	// drain solution events off the solver callback path
	events := s.bus.Subscribe()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for ev := range events {
			se, ok := ev.(coremetrics.SolutionEvent)
			if !ok {
				continue
			}
			if err := s.sink.RecordSolution(se); err != nil {
				s.log.Warnf("record solution: %v", err)
			}
		}
	}()

	rep := schedule.NewReporter(&s.cfg.Roster, vars, s.out, s.cfg.Solve.Limit(), s.bus, runID, logger.New("reporter"))
	drv := schedule.NewDriver(model, logger.New("driver"))

	var st engine.Status
	if s.cfg.Solve.Objective == config.ObjectiveMaxAssignments {
		st = drv.Run(schedule.Options{Objective: &schedule.Objective{
			Direction: engine.Maximize,
			Expr:      totalAssignments(vars),
		}}, nil)
		if st == engine.StatusOptimal {
			rep.ReportBest(model)
		}
	} else {
		st = drv.Run(schedule.Options{}, rep)
	}

	if rep.SolutionCount() == 0 {
		fmt.Fprintln(s.out, "No solution found.")
	}
	rep.WriteSummary(st, model.Stats())

	s.bus.Close()
	wg.Wait()

	stats := model.Stats()
	if err := s.sink.RecordSolveResult(coremetrics.SolveResult{
		RunID:     runID,
		Status:    st.String(),
		Solutions: rep.SolutionCount(),
		Conflicts: stats.Conflicts,
		Branches:  stats.Branches,
		WallTime:  stats.WallTime,
		Time:      time.Now(),
	}); err != nil {
		s.log.Warnf("record solve result: %v", err)
	}
	s.log.Infof("run %s finished: %s, %d solutions", runID, st, rep.SolutionCount())
	return st, nil
}

func totalAssignments(vars *schedule.VarSpace) engine.LinearExpr {
	expr := engine.LinearExpr{}
	for _, k := range vars.Keys() {
		if v, ok := vars.Lookup(k.Nurse, k.Day, k.Shift); ok {
			expr = expr.Add(v, 1)
		}
	}
	return expr
}
