package config

import "fmt"

// Objective modes for the solve section.
const (
	ObjectiveNone           = ""
	ObjectiveMaxAssignments = "max-assignments"
)

// SolveConfig defines search parameters.
type SolveConfig struct {
	// SolutionLimit caps enumeration. Zero falls back to the default;
	// a negative value enumerates until the engine exhausts the space.
	SolutionLimit int `json:"solution_limit"`
	// Objective switches to an optimizing search: "" enumerates,
	// "max-assignments" maximizes the number of worked shifts.
	Objective string `json:"objective"`
}

// SetDefaults applies sane defaults.
func (c *SolveConfig) SetDefaults() {
	if c.SolutionLimit == 0 {
		c.SolutionLimit = 5
	}
}

// Validate checks the solve section.
func (c SolveConfig) Validate() error {
	switch c.Objective {
	case ObjectiveNone, ObjectiveMaxAssignments:
		return nil
	default:
		return fmt.Errorf("unknown objective %q", c.Objective)
	}
}

// Limit returns the effective enumeration cap, 0 meaning unlimited.
func (c SolveConfig) Limit() int {
	if c.SolutionLimit < 0 {
		return 0
	}
	return c.SolutionLimit
}
