package engine

import "time"

// Status is the terminal state reported by a solve call. It is
// surfaced verbatim; callers never retry on Infeasible or Unknown.
type Status int

const (
	StatusUnknown Status = iota
	StatusModelInvalid
	StatusInfeasible
	StatusFeasible
	StatusOptimal
)

func (s Status) String() string {
	switch s {
	case StatusModelInvalid:
		return "MODEL_INVALID"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusFeasible:
		return "FEASIBLE"
	case StatusOptimal:
		return "OPTIMAL"
	default:
		return "UNKNOWN"
	}
}

// Direction selects between minimization and maximization of an
// objective expression.
type Direction int

const (
	Minimize Direction = iota
	Maximize
)

// Comparator relates a linear expression to a bound.
type Comparator int

const (
	LessOrEqual Comparator = iota
	GreaterOrEqual
	Equal
)

// Var is an opaque handle on a decision variable owned by a Model.
// Handles from one Model must not be used with another.
type Var interface {
	Label() string
}

// Term is a variable with an integer coefficient.
type Term struct {
	Var   Var
	Coeff int
}

// LinearExpr is an integer linear expression over decision variables.
type LinearExpr struct {
	Terms    []Term
	Constant int
}

// Sum builds the unit-coefficient sum of the given variables.
func Sum(vars ...Var) LinearExpr {
	e := LinearExpr{Terms: make([]Term, 0, len(vars))}
	for _, v := range vars {
		e.Terms = append(e.Terms, Term{Var: v, Coeff: 1})
	}
	return e
}

// Add appends a weighted variable to the expression.
func (e LinearExpr) Add(v Var, coeff int) LinearExpr {
	e.Terms = append(e.Terms, Term{Var: v, Coeff: coeff})
	return e
}

// Offset adds a constant to the expression.
func (e LinearExpr) Offset(c int) LinearExpr {
	e.Constant += c
	return e
}

// Constraint relates a linear expression to a bound. It is a value so
// it can be carried as the payload of an implication.
type Constraint struct {
	Expr  LinearExpr
	Cmp   Comparator
	Bound int
}

// Solution gives an observer read access to the valuation of one
// discovered solution. It is only valid for the duration of the
// OnSolution call that received it.
type Solution interface {
	// Value returns the value of v in this solution.
	Value(v Var) int
	// RequestStop asks the engine to end the search. Cancellation is
	// cooperative: the engine honors it between solutions.
	RequestStop()
}

// Observer is invoked once per discovered solution, synchronously on
// the search call stack. Implementations must not block.
type Observer interface {
	OnSolution(sol Solution)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(sol Solution)

func (f ObserverFunc) OnSolution(sol Solution) { f(sol) }

// Stats reports search effort after a solve call.
type Stats struct {
	Conflicts int
	Branches  int
	Restarts  int
	WallTime  time.Duration
}

// Model is the declarative boundary to the external search engine.
// Construction is single threaded; Solve is one blocking call.
type Model interface {
	NewBoolVar(label string) Var
	// NewIntVar creates a bounded integer variable. Inverted bounds
	// make the model invalid.
	NewIntVar(lb, ub int, label string) Var

	AddExactlyOne(vars ...Var)
	AddAtMostOne(vars ...Var)
	AddLinear(expr LinearExpr, cmp Comparator, bound int)
	// AddImplication enforces c only in solutions where cond is true.
	AddImplication(cond Var, c Constraint)
	SetObjective(dir Direction, expr LinearExpr)

	// Solve runs the search. With an objective set the observer is
	// ignored and the single best solution is sought; otherwise all
	// solutions are enumerated through the observer until exhaustion
	// or a stop request. A nil observer checks feasibility only.
	Solve(obs Observer) Status

	// ObjectiveValue is the objective of the best solution found.
	// Meaningful only after Solve returned StatusOptimal.
	ObjectiveValue() int
	// Value reads v in the last solution found, 0 if none.
	Value(v Var) int
	Stats() Stats
	// ConstraintCount reports how many engine constraints were emitted.
	ConstraintCount() int
}
