package sat

import (
	"time"

	"github.com/crillab/gophersat/solver"

	"github.com/theptrk/ortools-scheduling/core/engine"
)

// solution exposes one enumerated model to the observer. It is only
// valid for the duration of the callback.
type solution struct {
	model solver.ModelMap
	stop  bool
}

func (s *solution) Value(v engine.Var) int { return valueIn(s.model, v) }

func (s *solution) RequestStop() { s.stop = true }

// Solve runs the search. Model construction errors short-circuit to
// StatusModelInvalid before the engine is invoked.
func (m *Model) Solve(obs engine.Observer) engine.Status {
	if len(m.errs) > 0 {
		m.log.Errorf("model invalid: %d construction errors, search skipped", len(m.errs))
		return engine.StatusModelInvalid
	}
	pb := solver.ParsePBConstrs(m.constrs)
	start := time.Now()
	var st engine.Status
	if m.objSet {
		st = m.solveOptimal(pb)
	} else {
		st = m.enumerate(pb, obs)
	}
	m.stats.WallTime = time.Since(start)
	m.log.Debugw("solve finished", map[string]any{
		"status":    st.String(),
		"conflicts": m.stats.Conflicts,
		"branches":  m.stats.Branches,
	})
	return st
}

// solveOptimal performs a single optimizing search. Maximization is
// turned into minimization over negated literals: maximizing the sum of
// w*x is minimizing the sum of w*(1-x).
func (m *Model) solveOptimal(pb *solver.Problem) engine.Status {
	lits, weights, constant := m.expand(m.objExpr)
	total := 0
	for _, w := range weights {
		total += w
	}
	costLits := make([]solver.Lit, len(lits))
	for i, l := range lits {
		if m.objDir == engine.Maximize {
			l = -l
		}
		costLits[i] = solver.IntToLit(int32(l))
	}
	pb.SetCostFunc(costLits, weights)

	s := solver.New(pb)
	res := s.Optimal(nil, nil)
	m.captureStats(s)
	switch res.Status {
	case solver.Sat:
		m.lastModel = res.Model
		if m.objDir == engine.Maximize {
			m.objVal = total - res.Weight + constant
		} else {
			m.objVal = res.Weight + constant
		}
		return engine.StatusOptimal
	case solver.Unsat:
		return engine.StatusInfeasible
	default:
		return engine.StatusUnknown
	}
}

// enumerate walks all models, invoking the observer synchronously for
// each one. A stop request is honored between solutions; models the
// engine had already produced by then are dropped, not reported.
func (m *Model) enumerate(pb *solver.Problem, obs engine.Observer) engine.Status {
	s := solver.New(pb)
	models := make(chan solver.ModelMap)
	stop := make(chan struct{})
	done := make(chan int, 1)
	go func() {
		done <- s.Enumerate(models, stop)
	}()

	found := 0
	stopped := false
	for mm := range models {
		if stopped {
			continue
		}
		found++
		m.lastModel = mm
		if obs == nil {
			// feasibility check only: first model settles it
			stopped = true
			close(stop)
			continue
		}
		sol := &solution{model: mm}
		obs.OnSolution(sol)
		if sol.stop {
			stopped = true
			close(stop)
		}
	}
	<-done
	m.captureStats(s)
	if found == 0 {
		return engine.StatusInfeasible
	}
	return engine.StatusFeasible
}

func (m *Model) captureStats(s *solver.Solver) {
	m.stats.Conflicts = s.Stats.NbConflicts
	m.stats.Branches = s.Stats.NbDecisions
	m.stats.Restarts = s.Stats.NbRestarts
}
