package sat

import (
	"fmt"

	"github.com/crillab/gophersat/solver"

	"github.com/theptrk/ortools-scheduling/core/engine"
	"github.com/theptrk/ortools-scheduling/infra/logger"
)

// boolVar is a single solver literal.
type boolVar struct {
	lit   int
	label string
}

func (v *boolVar) Label() string { return v.label }

// intVar is a bounded integer in order encoding: steps[j] means the
// value exceeds lb+j. Ladder clauses keep the steps monotone, so the
// value is lb plus the number of true steps.
type intVar struct {
	lb, ub int
	steps  []int
	label  string
}

func (v *intVar) Label() string { return v.label }

// Model implements engine.Model on top of the gophersat pseudo-boolean
// solver. Exactly-one, at-most-one, linear and conditional constraints
// are translated to PB constraints; the search itself stays inside
// gophersat.
type Model struct {
	log     logger.Logger
	nbLits  int
	constrs []solver.PBConstr

	objSet  bool
	objDir  engine.Direction
	objExpr engine.LinearExpr
	objVal  int

	lastModel solver.ModelMap
	stats     engine.Stats
	errs      []error
}

// New returns an empty model. A nil logger disables diagnostics.
func New(log logger.Logger) *Model {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Model{log: log}
}

func (m *Model) newLit() int {
	m.nbLits++
	return m.nbLits
}

func (m *Model) fail(format string, args ...any) {
	err := fmt.Errorf(format, args...)
	m.errs = append(m.errs, err)
	m.log.Errorf("model: %v", err)
}

// NewBoolVar creates a fresh boolean decision variable.
func (m *Model) NewBoolVar(label string) engine.Var {
	return &boolVar{lit: m.newLit(), label: label}
}

// NewIntVar creates a bounded integer variable. Inverted bounds make
// the model invalid and are reported before any search.
func (m *Model) NewIntVar(lb, ub int, label string) engine.Var {
	if lb > ub {
		m.fail("int variable %q: lower bound %d exceeds upper bound %d", label, lb, ub)
		return &intVar{lb: lb, ub: lb, label: label}
	}
	v := &intVar{lb: lb, ub: ub, label: label, steps: make([]int, 0, ub-lb)}
	for j := 0; j < ub-lb; j++ {
		v.steps = append(v.steps, m.newLit())
	}
	// steps[j] implies steps[j-1]
	for j := 1; j < len(v.steps); j++ {
		m.constrs = append(m.constrs, solver.AtLeast([]int{-v.steps[j], v.steps[j-1]}, 1))
	}
	return v
}

// expand flattens an expression to positive-weight literals plus a
// constant. Negative coefficients are moved onto negated literals
// (c*x == -c*(1-x) + c for c < 0), integer variables contribute their
// step literals plus the lower bound.
func (m *Model) expand(e engine.LinearExpr) (lits []int, weights []int, constant int) {
	constant = e.Constant
	add := func(lit, w int) {
		if w == 0 {
			return
		}
		if w < 0 {
			constant += w
			lit, w = -lit, -w
		}
		lits = append(lits, lit)
		weights = append(weights, w)
	}
	for _, t := range e.Terms {
		switch v := t.Var.(type) {
		case *boolVar:
			add(v.lit, t.Coeff)
		case *intVar:
			constant += t.Coeff * v.lb
			for _, s := range v.steps {
				add(s, t.Coeff)
			}
		default:
			m.fail("foreign variable handle %q", t.Var.Label())
		}
	}
	return lits, weights, constant
}

func (m *Model) boolLits(vars []engine.Var) []int {
	lits := make([]int, 0, len(vars))
	for _, v := range vars {
		bv, ok := v.(*boolVar)
		if !ok {
			m.fail("foreign variable handle %q", v.Label())
			continue
		}
		lits = append(lits, bv.lit)
	}
	return lits
}

// forceUnsat makes the model trivially unsatisfiable. Used when a
// requested constraint can never hold.
func (m *Model) forceUnsat() {
	l := m.newLit()
	m.constrs = append(m.constrs,
		solver.AtLeast([]int{l}, 1),
		solver.AtLeast([]int{-l}, 1),
	)
}

// AddExactlyOne requires exactly one of vars to be true. An empty group
// is a modelling error, not an infeasibility.
func (m *Model) AddExactlyOne(vars ...engine.Var) {
	if len(vars) == 0 {
		m.fail("exactly-one over an empty group")
		return
	}
	lits := m.boolLits(vars)
	m.constrs = append(m.constrs,
		solver.AtLeast(lits, 1),
		solver.AtMost(lits, 1),
	)
}

// AddAtMostOne requires at most one of vars to be true.
func (m *Model) AddAtMostOne(vars ...engine.Var) {
	if len(vars) < 2 {
		return
	}
	m.constrs = append(m.constrs, solver.AtMost(m.boolLits(vars), 1))
}

// AddLinear constrains expr against bound.
func (m *Model) AddLinear(expr engine.LinearExpr, cmp engine.Comparator, bound int) {
	lits, weights, constant := m.expand(expr)
	b := bound - constant
	total := 0
	for _, w := range weights {
		total += w
	}
	switch cmp {
	case engine.GreaterOrEqual:
		m.addGtEq(lits, weights, total, b)
	case engine.LessOrEqual:
		m.addLtEq(lits, weights, total, b)
	case engine.Equal:
		m.addGtEq(lits, weights, total, b)
		m.addLtEq(lits, weights, total, b)
	}
}

func (m *Model) addGtEq(lits, weights []int, total, b int) {
	if b <= 0 {
		return // trivially satisfied
	}
	if b > total {
		m.forceUnsat()
		return
	}
	m.constrs = append(m.constrs, solver.GtEq(lits, weights, b))
}

func (m *Model) addLtEq(lits, weights []int, total, b int) {
	if b >= total {
		return // trivially satisfied
	}
	if b < 0 {
		m.forceUnsat()
		return
	}
	m.constrs = append(m.constrs, solver.LtEq(lits, weights, b))
}

// AddImplication enforces c only in solutions where cond is true. The
// guard is folded into the PB constraint: for Sum(w*x) <= b the emitted
// constraint is Sum(w*x) + (total-b)*cond <= total, which is vacuous
// when cond is false and collapses to the payload when cond is true.
func (m *Model) AddImplication(cond engine.Var, c engine.Constraint) {
	guard, ok := cond.(*boolVar)
	if !ok {
		m.fail("implication guard %q is not a boolean variable", cond.Label())
		return
	}
	lits, weights, constant := m.expand(c.Expr)
	b := c.Bound - constant
	total := 0
	for _, w := range weights {
		total += w
	}
	if c.Cmp == engine.LessOrEqual || c.Cmp == engine.Equal {
		switch {
		case b >= total:
			// vacuous
		case b < 0:
			// payload can never hold: the guard must be false
			m.constrs = append(m.constrs, solver.AtLeast([]int{-guard.lit}, 1))
		default:
			m.constrs = append(m.constrs, solver.LtEq(
				append(append([]int{}, lits...), guard.lit),
				append(append([]int{}, weights...), total-b),
				total,
			))
		}
	}
	if c.Cmp == engine.GreaterOrEqual || c.Cmp == engine.Equal {
		switch {
		case b <= 0:
			// vacuous
		case b > total:
			m.constrs = append(m.constrs, solver.AtLeast([]int{-guard.lit}, 1))
		default:
			m.constrs = append(m.constrs, solver.GtEq(
				append(append([]int{}, lits...), -guard.lit),
				append(append([]int{}, weights...), b),
				b,
			))
		}
	}
}

// SetObjective records the objective; Solve then looks for the single
// best solution instead of enumerating.
func (m *Model) SetObjective(dir engine.Direction, expr engine.LinearExpr) {
	m.objSet = true
	m.objDir = dir
	m.objExpr = expr
}

// ObjectiveValue is the objective of the best solution found.
func (m *Model) ObjectiveValue() int { return m.objVal }

// Value reads v in the last solution found, 0 if none.
func (m *Model) Value(v engine.Var) int {
	if m.lastModel == nil {
		return 0
	}
	return valueIn(m.lastModel, v)
}

// Stats reports search effort of the last Solve call.
func (m *Model) Stats() engine.Stats { return m.stats }

// ConstraintCount reports how many PB constraints were emitted.
func (m *Model) ConstraintCount() int { return len(m.constrs) }

func valueIn(mm solver.ModelMap, v engine.Var) int {
	switch v := v.(type) {
	case *boolVar:
		if mm[v.lit] {
			return 1
		}
		return 0
	case *intVar:
		val := v.lb
		for _, s := range v.steps {
			if mm[s] {
				val++
			}
		}
		return val
	}
	return 0
}
