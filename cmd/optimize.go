package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theptrk/ortools-scheduling/core/engine"
	"github.com/theptrk/ortools-scheduling/infra/logger"
	"github.com/theptrk/ortools-scheduling/infra/sat"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Maximize a linear objective over bounded integer variables",
	Long:  "Small optimization demo exercising the engine's integer variables,\nlinear constraints and objective support.",
	RunE:  runOptimize,
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	m := sat.New(logger.New("optimize"))

	const upper = 50
	x := m.NewIntVar(0, upper, "x")
	y := m.NewIntVar(0, upper, "y")
	z := m.NewIntVar(0, upper, "z")

	m.AddLinear(engine.LinearExpr{}.Add(x, 2).Add(y, 7).Add(z, 3), engine.LessOrEqual, 50)
	m.AddLinear(engine.LinearExpr{}.Add(x, 3).Add(y, -5).Add(z, 7), engine.LessOrEqual, 45)
	m.AddLinear(engine.LinearExpr{}.Add(x, 5).Add(y, 2).Add(z, -6), engine.LessOrEqual, 37)
	m.SetObjective(engine.Maximize, engine.LinearExpr{}.Add(x, 2).Add(y, 2).Add(z, 3))

	st := m.Solve(nil)
	out := cmd.OutOrStdout()
	if st == engine.StatusOptimal {
		fmt.Fprintf(out, "Maximum of objective function: %d\n\n", m.ObjectiveValue())
		fmt.Fprintf(out, "x = %d\n", m.Value(x))
		fmt.Fprintf(out, "y = %d\n", m.Value(y))
		fmt.Fprintf(out, "z = %d\n", m.Value(z))
	} else {
		fmt.Fprintln(out, "No solution found.")
	}

	stats := m.Stats()
	fmt.Fprintf(out, "\nStatistics\n")
	fmt.Fprintf(out, "  status   : %s\n", st)
	fmt.Fprintf(out, "  conflicts: %d\n", stats.Conflicts)
	fmt.Fprintf(out, "  branches : %d\n", stats.Branches)
	fmt.Fprintf(out, "  wall time: %s\n", stats.WallTime)
	return nil
}
