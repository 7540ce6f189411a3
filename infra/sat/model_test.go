package sat

import (
	"testing"

	"github.com/theptrk/ortools-scheduling/core/engine"
)

func TestExactlyOneEnumeratesAllChoices(t *testing.T) {
	m := New(nil)
	vars := []engine.Var{
		m.NewBoolVar("a"),
		m.NewBoolVar("b"),
		m.NewBoolVar("c"),
	}
	m.AddExactlyOne(vars...)

	count := 0
	st := m.Solve(engine.ObserverFunc(func(sol engine.Solution) {
		count++
		trues := 0
		for _, v := range vars {
			trues += sol.Value(v)
		}
		if trues != 1 {
			t.Errorf("solution %d sets %d variables, want 1", count, trues)
		}
	}))
	if st != engine.StatusFeasible {
		t.Fatalf("status %v, want FEASIBLE", st)
	}
	if count != 3 {
		t.Fatalf("enumerated %d solutions, want 3", count)
	}
}

func TestAtMostOne(t *testing.T) {
	m := New(nil)
	a := m.NewBoolVar("a")
	b := m.NewBoolVar("b")
	m.AddAtMostOne(a, b)

	count := 0
	st := m.Solve(engine.ObserverFunc(func(sol engine.Solution) {
		count++
		if sol.Value(a)+sol.Value(b) > 1 {
			t.Errorf("both variables set in one solution")
		}
	}))
	if st != engine.StatusFeasible {
		t.Fatalf("status %v, want FEASIBLE", st)
	}
	if count != 3 {
		t.Fatalf("enumerated %d solutions, want 3", count)
	}
}

func TestImplicationGuardsPayload(t *testing.T) {
	m := New(nil)
	a := m.NewBoolVar("a")
	b := m.NewBoolVar("b")
	m.AddImplication(a, engine.Constraint{
		Expr:  engine.Sum(b),
		Cmp:   engine.Equal,
		Bound: 0,
	})

	count := 0
	st := m.Solve(engine.ObserverFunc(func(sol engine.Solution) {
		count++
		if sol.Value(a) == 1 && sol.Value(b) == 1 {
			t.Errorf("implication violated: guard and payload variable both set")
		}
	}))
	if st != engine.StatusFeasible {
		t.Fatalf("status %v, want FEASIBLE", st)
	}
	if count != 3 {
		t.Fatalf("enumerated %d solutions, want 3", count)
	}
}

func TestIntVarRange(t *testing.T) {
	m := New(nil)
	x := m.NewIntVar(1, 3, "x")
	m.AddLinear(engine.Sum(x), engine.GreaterOrEqual, 2)

	seen := map[int]int{}
	st := m.Solve(engine.ObserverFunc(func(sol engine.Solution) {
		seen[sol.Value(x)]++
	}))
	if st != engine.StatusFeasible {
		t.Fatalf("status %v, want FEASIBLE", st)
	}
	if len(seen) != 2 || seen[2] != 1 || seen[3] != 1 {
		t.Fatalf("expected values 2 and 3 once each, got %v", seen)
	}
}

func TestIntVarEquality(t *testing.T) {
	m := New(nil)
	x := m.NewIntVar(0, 5, "x")
	m.AddLinear(engine.Sum(x), engine.Equal, 3)

	count := 0
	st := m.Solve(engine.ObserverFunc(func(sol engine.Solution) {
		count++
		if got := sol.Value(x); got != 3 {
			t.Errorf("value %d, want 3", got)
		}
	}))
	if st != engine.StatusFeasible {
		t.Fatalf("status %v, want FEASIBLE", st)
	}
	if count != 1 {
		t.Fatalf("enumerated %d solutions, want 1", count)
	}
	if m.Value(x) != 3 {
		t.Fatalf("last solution value %d, want 3", m.Value(x))
	}
}

func TestInvertedBoundsInvalidateModel(t *testing.T) {
	m := New(nil)
	m.NewIntVar(3, 1, "x")
	st := m.Solve(engine.ObserverFunc(func(engine.Solution) {
		t.Errorf("observer called on an invalid model")
	}))
	if st != engine.StatusModelInvalid {
		t.Fatalf("status %v, want MODEL_INVALID", st)
	}
}

type foreignVar struct{}

func (foreignVar) Label() string { return "foreign" }

func TestForeignVariableInvalidatesModel(t *testing.T) {
	m := New(nil)
	m.AddExactlyOne(foreignVar{})
	if st := m.Solve(nil); st != engine.StatusModelInvalid {
		t.Fatalf("status %v, want MODEL_INVALID", st)
	}
}

func TestContradictionIsInfeasible(t *testing.T) {
	m := New(nil)
	a := m.NewBoolVar("a")
	m.AddLinear(engine.Sum(a), engine.Equal, 1)
	m.AddLinear(engine.Sum(a), engine.Equal, 0)
	if st := m.Solve(nil); st != engine.StatusInfeasible {
		t.Fatalf("status %v, want INFEASIBLE", st)
	}
}

func TestStopRequestEndsEnumeration(t *testing.T) {
	m := New(nil)
	a := m.NewBoolVar("a")
	b := m.NewBoolVar("b")
	c := m.NewBoolVar("c")
	m.AddAtMostOne(a, b, c)

	count := 0
	st := m.Solve(engine.ObserverFunc(func(sol engine.Solution) {
		count++
		sol.RequestStop()
	}))
	if st != engine.StatusFeasible {
		t.Fatalf("status %v, want FEASIBLE", st)
	}
	if count != 1 {
		t.Fatalf("observer ran %d times after a stop request, want 1", count)
	}
}

func TestNilObserverChecksFeasibility(t *testing.T) {
	m := New(nil)
	a := m.NewBoolVar("a")
	b := m.NewBoolVar("b")
	m.AddExactlyOne(a, b)
	if st := m.Solve(nil); st != engine.StatusFeasible {
		t.Fatalf("status %v, want FEASIBLE", st)
	}
	if m.Value(a)+m.Value(b) != 1 {
		t.Fatalf("last model violates the exactly-one constraint")
	}
}
