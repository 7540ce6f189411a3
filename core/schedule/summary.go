package schedule

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/theptrk/ortools-scheduling/core/engine"
)

// WriteSummary prints the statistics block after a solve: terminal
// status, solver effort and, when solutions were enumerated, the
// workload spread per nurse across them.
func (r *Reporter) WriteSummary(st engine.Status, stats engine.Stats) {
	fmt.Fprintf(r.w, "\nStatistics\n")
	fmt.Fprintf(r.w, "  - status         : %s\n", st)
	fmt.Fprintf(r.w, "  - conflicts      : %d\n", stats.Conflicts)
	fmt.Fprintf(r.w, "  - branches       : %d\n", stats.Branches)
	fmt.Fprintf(r.w, "  - wall time      : %s\n", stats.WallTime)
	fmt.Fprintf(r.w, "  - solutions found: %d\n", r.count)

	if r.count == 0 {
		return
	}
	fmt.Fprintf(r.w, "\nWorkload across solutions\n")
	for _, n := range r.cfg.Nurses {
		samples := r.workload[n.ID]
		if len(samples) == 0 {
			continue
		}
		mean, std := stat.MeanStdDev(samples, nil)
		if len(samples) < 2 {
			std = 0
		}
		fmt.Fprintf(r.w, "  - nurse %s: %.2f shifts/solution (stddev %.2f)\n", n.ID, mean, std)
	}
}
