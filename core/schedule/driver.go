package schedule

import (
	"github.com/theptrk/ortools-scheduling/core/engine"
	"github.com/theptrk/ortools-scheduling/core/logger"
)

// Objective switches the search from enumeration to optimization.
type Objective struct {
	Direction engine.Direction
	Expr      engine.LinearExpr
}

// Options configure one search invocation.
type Options struct {
	// Objective, when set, asks for the single best solution instead
	// of enumerating. The observer is not used in that mode.
	Objective *Objective
}

// Driver configures the engine mode and invokes it exactly once. The
// terminal status is surfaced verbatim; the driver never retries on
// INFEASIBLE or UNKNOWN.
type Driver struct {
	model engine.Model
	log   logger.Logger
}

// NewDriver wraps an encoded model.
func NewDriver(model engine.Model, log logger.Logger) *Driver {
	return &Driver{model: model, log: log}
}

// Run performs the search. In enumeration mode the observer receives
// every solution the engine finds until exhaustion or a stop request;
// the solution cap is the observer's concern, not the driver's.
func (d *Driver) Run(opts Options, obs engine.Observer) engine.Status {
	if opts.Objective != nil {
		d.model.SetObjective(opts.Objective.Direction, opts.Objective.Expr)
		st := d.model.Solve(nil)
		if st == engine.StatusOptimal {
			d.log.Infof("objective value: %d", d.model.ObjectiveValue())
		}
		return st
	}
	return d.model.Solve(obs)
}
