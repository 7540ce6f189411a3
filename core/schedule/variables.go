package schedule

import (
	"fmt"

	"github.com/theptrk/ortools-scheduling/core/engine"
	"github.com/theptrk/ortools-scheduling/core/roster"
)

// VarKey identifies one decision variable by its triple.
type VarKey struct {
	Nurse string
	Day   int
	Shift string
}

// VarSpace holds the decision variables of one solve invocation, keyed
// by triple. A variable exists iff the triple passed the validity
// predicate; absent means invalid. Callers branch on validity before
// looking up.
type VarSpace struct {
	vars map[VarKey]engine.Var
	keys []VarKey
}

// BuildVariables walks nurses x days x shift types and creates one
// boolean variable per valid triple.
func BuildVariables(cfg *roster.Config, m engine.Model) *VarSpace {
	s := &VarSpace{vars: make(map[VarKey]engine.Var)}
	for _, n := range cfg.Nurses {
		for d := 0; d < cfg.Days; d++ {
			for _, st := range cfg.ShiftTypes {
				if !cfg.Valid(n, d, st) {
					continue
				}
				k := VarKey{Nurse: n.ID, Day: d, Shift: st.Name}
				s.vars[k] = m.NewBoolVar(fmt.Sprintf("shift_n%s_d%d_s%s", n.ID, d, st.Name))
				s.keys = append(s.keys, k)
			}
		}
	}
	return s
}

// Lookup returns the variable for the triple, if one exists.
func (s *VarSpace) Lookup(nurse string, day int, shift string) (engine.Var, bool) {
	v, ok := s.vars[VarKey{Nurse: nurse, Day: day, Shift: shift}]
	return v, ok
}

// Size is the number of decision variables.
func (s *VarSpace) Size() int { return len(s.vars) }

// Keys returns the triples in creation order.
func (s *VarSpace) Keys() []VarKey { return s.keys }
