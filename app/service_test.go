package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/theptrk/ortools-scheduling/config"
	"github.com/theptrk/ortools-scheduling/core/engine"
	"github.com/theptrk/ortools-scheduling/core/roster"
)

func TestRunDemoRoster(t *testing.T) {
	var buf bytes.Buffer
	svc, err := New(config.Default(), &buf)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	st, err := svc.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if st != engine.StatusFeasible {
		t.Fatalf("status %v, want FEASIBLE", st)
	}

	out := buf.String()
	for _, want := range []string{
		"Solution 1",
		"Solution 5",
		"Stop search after 5 solutions",
		"Nurse Cindy works shift EVE-S1",
		"Statistics",
		"solutions found: 5",
		"Workload across solutions",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Solution 6") {
		t.Fatalf("solution reported past the limit:\n%s", out)
	}
	if strings.Contains(out, "No solution found.") {
		t.Fatalf("feasible run reported as empty:\n%s", out)
	}
}

func TestRunMaxAssignmentsObjective(t *testing.T) {
	cfg := config.Default()
	cfg.Solve.Objective = config.ObjectiveMaxAssignments

	var buf bytes.Buffer
	svc, err := New(cfg, &buf)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	st, err := svc.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if st != engine.StatusOptimal {
		t.Fatalf("status %v, want OPTIMAL", st)
	}
	if !strings.Contains(buf.String(), "Optimal solution (objective 10)") {
		t.Fatalf("missing optimal report:\n%s", buf.String())
	}
}

func TestRunInfeasibleRoster(t *testing.T) {
	cfg := config.Default()
	cfg.Roster.EveningQuotas["Cindy"] = roster.EveningQuota{Min: 0, Max: 1}

	var buf bytes.Buffer
	svc, err := New(cfg, &buf)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	st, err := svc.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if st != engine.StatusInfeasible {
		t.Fatalf("status %v, want INFEASIBLE", st)
	}
	out := buf.String()
	if !strings.Contains(out, "No solution found.") {
		t.Fatalf("missing infeasibility line:\n%s", out)
	}
	if !strings.Contains(out, "status         : INFEASIBLE") {
		t.Fatalf("missing status line:\n%s", out)
	}
}

func TestRunRejectsInvalidConfiguration(t *testing.T) {
	cfg := config.Default()
	cfg.Roster.EveningQuotas["Cindy"] = roster.EveningQuota{Min: 3, Max: 1}

	var buf bytes.Buffer
	svc, err := New(cfg, &buf)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	st, err := svc.Run()
	if err == nil {
		t.Fatalf("configuration defect not surfaced")
	}
	if st != engine.StatusModelInvalid {
		t.Fatalf("status %v, want MODEL_INVALID", st)
	}
	if buf.Len() != 0 {
		t.Fatalf("defective run wrote a report:\n%s", buf.String())
	}
}
