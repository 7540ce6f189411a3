package schedule

import (
	"fmt"
	"io"
	"time"

	"github.com/theptrk/ortools-scheduling/core/engine"
	"github.com/theptrk/ortools-scheduling/core/logger"
	"github.com/theptrk/ortools-scheduling/core/metrics"
	"github.com/theptrk/ortools-scheduling/core/roster"
	"github.com/theptrk/ortools-scheduling/internal/eventbus"
)

// ReporterState tracks the reporter through a search.
type ReporterState int

const (
	StateWaiting ReporterState = iota
	StateReporting
	StateStopped
)

// valuer reads decision variable values from either a live solution
// callback or a finished model.
type valuer interface {
	Value(v engine.Var) int
}

// Reporter receives every solution found during enumeration and writes
// a per-day per-nurse schedule for it. When the solution count reaches
// the configured limit it requests a cooperative stop; callbacks
// arriving after that are ignored. The callback runs on the engine's
// search stack, so it only formats text and publishes non-blocking
// events.
type Reporter struct {
	cfg   *roster.Config
	vars  *VarSpace
	w     io.Writer
	limit int
	bus   eventbus.EventBus
	runID string
	log   logger.Logger

	state    ReporterState
	count    int
	workload map[string][]float64
}

// NewReporter builds a reporter writing schedules to w. A limit of zero
// reports every solution the engine finds. The bus may be nil.
func NewReporter(cfg *roster.Config, vars *VarSpace, w io.Writer, limit int, bus eventbus.EventBus, runID string, log logger.Logger) *Reporter {
	return &Reporter{
		cfg:      cfg,
		vars:     vars,
		w:        w,
		limit:    limit,
		bus:      bus,
		runID:    runID,
		log:      log,
		state:    StateWaiting,
		workload: make(map[string][]float64),
	}
}

// OnSolution implements engine.Observer.
func (r *Reporter) OnSolution(sol engine.Solution) {
	if r.state == StateStopped {
		// a late callback after the stop request is not an error
		return
	}
	r.state = StateReporting
	r.count++
	fmt.Fprintf(r.w, "Solution %d\n", r.count)
	assignments := r.writeSchedule(sol)

	if r.bus != nil {
		r.bus.Publish(metrics.SolutionEvent{
			RunID:       r.runID,
			Index:       r.count,
			Assignments: assignments,
			Time:        time.Now(),
		})
	}

	if r.limit > 0 && r.count >= r.limit {
		fmt.Fprintf(r.w, "Stop search after %d solutions\n", r.limit)
		r.log.Infof("solution limit %d reached, stopping search", r.limit)
		sol.RequestStop()
		r.state = StateStopped
	}
}

// ReportBest writes the single solution held by the model after an
// optimizing search.
func (r *Reporter) ReportBest(m engine.Model) {
	r.count++
	fmt.Fprintf(r.w, "Optimal solution (objective %d)\n", m.ObjectiveValue())
	r.writeSchedule(m)
}

// writeSchedule dumps one assignment grouped by day then nurse and
// returns the number of worked shifts. Whether a nurse is "not
// available" is recomputed from the validity predicate per nurse and
// day rather than inferred from loop leftovers.
func (r *Reporter) writeSchedule(val valuer) int {
	assignments := 0
	for d := 0; d < r.cfg.Days; d++ {
		fmt.Fprintf(r.w, "Day %d\n", d)
		for _, n := range r.cfg.Nurses {
			working := false
			assignable := false
			for _, st := range r.cfg.ShiftTypes {
				if !r.cfg.Valid(n, d, st) {
					continue
				}
				assignable = true
				v, ok := r.vars.Lookup(n.ID, d, st.Name)
				if !ok {
					continue
				}
				if val.Value(v) == 1 {
					working = true
					assignments++
					fmt.Fprintf(r.w, "  Nurse %s works shift %s\n", n.ID, st.Name)
				}
			}
			if !working {
				if assignable {
					fmt.Fprintf(r.w, "  Nurse %s does not work\n", n.ID)
				} else {
					fmt.Fprintf(r.w, "  Nurse %s not available\n", n.ID)
				}
			}
		}
	}
	r.recordWorkload(val)
	return assignments
}

func (r *Reporter) recordWorkload(val valuer) {
	for _, n := range r.cfg.Nurses {
		worked := 0
		for d := 0; d < r.cfg.Days; d++ {
			for _, st := range r.cfg.ShiftTypes {
				if !r.cfg.Valid(n, d, st) {
					continue
				}
				if v, ok := r.vars.Lookup(n.ID, d, st.Name); ok && val.Value(v) == 1 {
					worked++
				}
			}
		}
		r.workload[n.ID] = append(r.workload[n.ID], float64(worked))
	}
}

// SolutionCount is the number of solutions reported so far.
func (r *Reporter) SolutionCount() int { return r.count }

// State returns the reporter's current state.
func (r *Reporter) State() ReporterState { return r.state }
