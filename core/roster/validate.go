package roster

import (
	"errors"
	"fmt"
)

// Configuration defects are fatal and detected before any solve call.
var (
	ErrInvertedQuota      = errors.New("evening quota minimum exceeds maximum")
	ErrInvalidPredefined  = errors.New("predefined assignment is not assignable")
	ErrUnknownNurse       = errors.New("unknown nurse")
	ErrUnknownShift       = errors.New("unknown shift type")
	ErrDayOutOfHorizon    = errors.New("day outside planning horizon")
	ErrDuplicateNurse     = errors.New("duplicate nurse id")
	ErrDuplicateShiftType = errors.New("duplicate shift type")
)

// Validate checks the configuration for defects. It must pass before a
// model is built; a failure names the offending nurse, day or triple.
func (c *Config) Validate() error {
	if c.Days <= 0 {
		return fmt.Errorf("days must be positive, got %d", c.Days)
	}
	if len(c.Nurses) == 0 {
		return errors.New("at least one nurse is required")
	}
	if len(c.ShiftTypes) == 0 {
		return errors.New("at least one shift type is required")
	}

	seenNurses := make(map[string]bool, len(c.Nurses))
	for _, n := range c.Nurses {
		if n.ID == "" {
			return errors.New("nurse with empty id")
		}
		if seenNurses[n.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateNurse, n.ID)
		}
		seenNurses[n.ID] = true
		for _, d := range n.AvailableDays {
			if d < 0 || d >= c.Days {
				return fmt.Errorf("%w: nurse %s availability day %d", ErrDayOutOfHorizon, n.ID, d)
			}
		}
	}

	seenShifts := make(map[string]bool, len(c.ShiftTypes))
	for _, s := range c.ShiftTypes {
		if s.Name == "" {
			return errors.New("shift type with empty name")
		}
		if seenShifts[s.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateShiftType, s.Name)
		}
		seenShifts[s.Name] = true
	}

	for shift, days := range c.Coverage {
		if !seenShifts[shift] {
			return fmt.Errorf("%w: coverage for %s", ErrUnknownShift, shift)
		}
		for _, d := range days {
			if d < 0 || d >= c.Days {
				return fmt.Errorf("%w: coverage for %s on day %d", ErrDayOutOfHorizon, shift, d)
			}
		}
	}

	for id, q := range c.EveningQuotas {
		if !seenNurses[id] {
			return fmt.Errorf("%w: evening quota for %s", ErrUnknownNurse, id)
		}
		if q.Min < 0 {
			return fmt.Errorf("evening quota for %s: minimum %d is negative", id, q.Min)
		}
		if q.Min > q.Max {
			return fmt.Errorf("%w: nurse %s has min %d, max %d", ErrInvertedQuota, id, q.Min, q.Max)
		}
	}

	for _, p := range c.Predefined {
		nurse, ok := c.Nurse(p.Nurse)
		if !ok {
			return fmt.Errorf("%w: predefined assignment for %s", ErrUnknownNurse, p.Nurse)
		}
		shift, ok := c.ShiftType(p.Shift)
		if !ok {
			return fmt.Errorf("%w: predefined assignment for %s", ErrUnknownShift, p.Shift)
		}
		if p.Day < 0 || p.Day >= c.Days {
			return fmt.Errorf("%w: predefined assignment on day %d", ErrDayOutOfHorizon, p.Day)
		}
		if !c.Valid(nurse, p.Day, shift) {
			return fmt.Errorf("%w: nurse %s, day %d, shift %s", ErrInvalidPredefined, p.Nurse, p.Day, p.Shift)
		}
	}
	return nil
}
