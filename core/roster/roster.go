package roster

import "strings"

// EveningPrefix marks a shift type as an evening shift when its name
// carries it and no explicit tag is set.
const EveningPrefix = "EVE-"

// Nurse describes a staff member that can be rostered.
// Immutable after configuration load.
type Nurse struct {
	ID             string   `json:"id"`
	Certifications []string `json:"certifications"`
	AvailableDays  []int    `json:"available_days"`
}

// Certified reports whether the nurse holds the certification for the
// given shift type.
func (n Nurse) Certified(shift string) bool {
	for _, c := range n.Certifications {
		if c == shift {
			return true
		}
	}
	return false
}

// AvailableOn reports whether the nurse can work on the given day.
func (n Nurse) AvailableOn(day int) bool {
	for _, d := range n.AvailableDays {
		if d == day {
			return true
		}
	}
	return false
}

// ShiftType identifies a shift slot within a day.
type ShiftType struct {
	Name string `json:"name"`
	// Evening tags the shift explicitly; shifts named with the EVE-
	// prefix are evening shifts regardless.
	Evening bool `json:"evening"`
}

// IsEvening reports whether the shift counts against evening quotas and
// triggers the fatigue rule.
func (s ShiftType) IsEvening() bool {
	return s.Evening || strings.HasPrefix(s.Name, EveningPrefix)
}

// PredefinedAssignment forces a nurse onto a shift on a given day.
type PredefinedAssignment struct {
	Nurse string `json:"nurse"`
	Day   int    `json:"day"`
	Shift string `json:"shift"`
}

// EveningQuota bounds the number of evening shifts a nurse may work
// across the planning horizon.
type EveningQuota struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Config is the static description of one planning problem.
type Config struct {
	// Days is the horizon length; days are indexed 0..Days-1.
	Days       int         `json:"days"`
	Nurses     []Nurse     `json:"nurses"`
	ShiftTypes []ShiftType `json:"shift_types"`
	// Coverage maps a shift type name to the days on which exactly one
	// nurse must work it. Absent days need no coverage.
	Coverage map[string][]int `json:"coverage"`
	// Predefined lists assignments fixed before solving.
	Predefined []PredefinedAssignment `json:"predefined"`
	// EveningQuotas maps nurse IDs to their evening shift bounds.
	EveningQuotas map[string]EveningQuota `json:"evening_quotas"`
}

// CoverageRequired reports whether (day, shift) must be worked by
// exactly one nurse.
func (c *Config) CoverageRequired(day int, shift string) bool {
	for _, d := range c.Coverage[shift] {
		if d == day {
			return true
		}
	}
	return false
}

// Nurse returns the nurse with the given ID.
func (c *Config) Nurse(id string) (Nurse, bool) {
	for _, n := range c.Nurses {
		if n.ID == id {
			return n, true
		}
	}
	return Nurse{}, false
}

// ShiftType returns the shift type with the given name.
func (c *Config) ShiftType(name string) (ShiftType, bool) {
	for _, s := range c.ShiftTypes {
		if s.Name == name {
			return s, true
		}
	}
	return ShiftType{}, false
}

// Quota returns the evening quota for the nurse. Nurses without an
// explicit quota are unbounded up to the horizon length.
func (c *Config) Quota(nurse string) EveningQuota {
	if q, ok := c.EveningQuotas[nurse]; ok {
		return q
	}
	return EveningQuota{Min: 0, Max: c.Days}
}
