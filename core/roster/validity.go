package roster

// Valid decides whether a (nurse, day, shift) triple may ever be
// assigned: the slot requires coverage, the nurse is certified for the
// shift type and the nurse is available that day. It is recomputed on
// every call rather than cached; the check is cheap and a cache would
// be one more thing to keep consistent.
func (c *Config) Valid(n Nurse, day int, s ShiftType) bool {
	if !c.CoverageRequired(day, s.Name) {
		return false
	}
	if !n.Certified(s.Name) {
		return false
	}
	return n.AvailableOn(day)
}
