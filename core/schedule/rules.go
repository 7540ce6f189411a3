package schedule

import (
	"fmt"

	"github.com/theptrk/ortools-scheduling/core/engine"
	"github.com/theptrk/ortools-scheduling/core/roster"
)

// emitCoverage requires exactly one nurse on every (day, shift) needing
// coverage. Slots needing no coverage have no variables at all, so no
// constraint is emitted for them. A required slot no nurse can ever
// fill gets an unsatisfiable constraint so the engine reports
// INFEASIBLE instead of silently under-covering.
func emitCoverage(cfg *roster.Config, vars *VarSpace, m engine.Model) error {
	for d := 0; d < cfg.Days; d++ {
		for _, st := range cfg.ShiftTypes {
			if !cfg.CoverageRequired(d, st.Name) {
				continue
			}
			var group []engine.Var
			for _, n := range cfg.Nurses {
				if !cfg.Valid(n, d, st) {
					continue
				}
				if v, ok := vars.Lookup(n.ID, d, st.Name); ok {
					group = append(group, v)
				}
			}
			if len(group) == 0 {
				m.AddLinear(engine.LinearExpr{}, engine.GreaterOrEqual, 1)
				continue
			}
			m.AddExactlyOne(group...)
		}
	}
	return nil
}

// emitOneShiftPerDay limits every nurse to at most one shift per day.
func emitOneShiftPerDay(cfg *roster.Config, vars *VarSpace, m engine.Model) error {
	for _, n := range cfg.Nurses {
		for d := 0; d < cfg.Days; d++ {
			var group []engine.Var
			for _, st := range cfg.ShiftTypes {
				if !cfg.Valid(n, d, st) {
					continue
				}
				if v, ok := vars.Lookup(n.ID, d, st.Name); ok {
					group = append(group, v)
				}
			}
			m.AddAtMostOne(group...)
		}
	}
	return nil
}

// emitPredefined hard-fixes forced assignments. Configuration
// validation already rejected unassignable triples; the recheck here
// keeps the encoder safe when called with an unvalidated configuration.
func emitPredefined(cfg *roster.Config, vars *VarSpace, m engine.Model) error {
	for _, p := range cfg.Predefined {
		nurse, ok := cfg.Nurse(p.Nurse)
		if !ok {
			return fmt.Errorf("%w: %s", roster.ErrUnknownNurse, p.Nurse)
		}
		shift, ok := cfg.ShiftType(p.Shift)
		if !ok {
			return fmt.Errorf("%w: %s", roster.ErrUnknownShift, p.Shift)
		}
		if !cfg.Valid(nurse, p.Day, shift) {
			return fmt.Errorf("%w: nurse %s, day %d, shift %s", roster.ErrInvalidPredefined, p.Nurse, p.Day, p.Shift)
		}
		v, ok := vars.Lookup(p.Nurse, p.Day, p.Shift)
		if !ok {
			return fmt.Errorf("%w: nurse %s, day %d, shift %s", roster.ErrInvalidPredefined, p.Nurse, p.Day, p.Shift)
		}
		m.AddLinear(engine.Sum(v), engine.Equal, 1)
	}
	return nil
}

// emitFatigue forbids a day shift right after a worked evening shift:
// for every evening variable on day d, an implication forces the sum of
// the nurse's non-evening variables on day d+1 to zero. An implication
// rather than a plain inequality, since the rule only binds when the
// evening shift is actually worked.
func emitFatigue(cfg *roster.Config, vars *VarSpace, m engine.Model) error {
	for _, n := range cfg.Nurses {
		for d := 0; d < cfg.Days-1; d++ {
			for _, st := range cfg.ShiftTypes {
				if !st.IsEvening() || !cfg.Valid(n, d, st) {
					continue
				}
				guard, ok := vars.Lookup(n.ID, d, st.Name)
				if !ok {
					continue
				}
				var next []engine.Var
				for _, nst := range cfg.ShiftTypes {
					if nst.IsEvening() || !cfg.Valid(n, d+1, nst) {
						continue
					}
					if v, ok := vars.Lookup(n.ID, d+1, nst.Name); ok {
						next = append(next, v)
					}
				}
				if len(next) == 0 {
					continue
				}
				m.AddImplication(guard, engine.Constraint{
					Expr:  engine.Sum(next...),
					Cmp:   engine.Equal,
					Bound: 0,
				})
			}
		}
	}
	return nil
}

// emitEveningQuota bounds every nurse's evening shift count across the
// horizon. Inverted bounds abort encoding before the engine runs.
func emitEveningQuota(cfg *roster.Config, vars *VarSpace, m engine.Model) error {
	for _, n := range cfg.Nurses {
		q := cfg.Quota(n.ID)
		if q.Min > q.Max {
			return fmt.Errorf("%w: nurse %s has min %d, max %d", roster.ErrInvertedQuota, n.ID, q.Min, q.Max)
		}
		var evenings []engine.Var
		for d := 0; d < cfg.Days; d++ {
			for _, st := range cfg.ShiftTypes {
				if !st.IsEvening() || !cfg.Valid(n, d, st) {
					continue
				}
				if v, ok := vars.Lookup(n.ID, d, st.Name); ok {
					evenings = append(evenings, v)
				}
			}
		}
		expr := engine.Sum(evenings...)
		if q.Min > 0 {
			m.AddLinear(expr, engine.GreaterOrEqual, q.Min)
		}
		if q.Max < len(evenings) {
			m.AddLinear(expr, engine.LessOrEqual, q.Max)
		}
	}
	return nil
}
