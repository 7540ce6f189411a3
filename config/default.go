package config

import (
	"github.com/theptrk/ortools-scheduling/core/metrics"
	"github.com/theptrk/ortools-scheduling/core/roster"
)

// Default returns the built-in demo roster: three nurses over a five
// day horizon with three shift types, a forced evening shift and
// per-nurse evening quotas. Used when no configuration file is given.
func Default() *Config {
	return &Config{
		Roster: roster.Config{
			Days: 5,
			Nurses: []roster.Nurse{
				{
					ID:             "Alice",
					Certifications: []string{"S1", "EVE-S1", "S2"},
					AvailableDays:  []int{0, 1, 4},
				},
				{
					ID:             "Bobby",
					Certifications: []string{"S1", "EVE-S1", "S2"},
					AvailableDays:  []int{1, 2, 3, 4},
				},
				{
					ID:             "Cindy",
					Certifications: []string{"S1", "EVE-S1"},
					AvailableDays:  []int{0, 1, 2, 3, 4},
				},
			},
			ShiftTypes: []roster.ShiftType{
				{Name: "S1"},
				{Name: "EVE-S1"},
				{Name: "S2"},
			},
			Coverage: map[string][]int{
				"S1":     {0, 1, 3, 4},
				"EVE-S1": {1, 2, 3},
				"S2":     {0, 2, 4},
			},
			Predefined: []roster.PredefinedAssignment{
				{Nurse: "Cindy", Day: 2, Shift: "EVE-S1"},
			},
			EveningQuotas: map[string]roster.EveningQuota{
				"Alice": {Min: 0, Max: 1},
				"Bobby": {Min: 0, Max: 1},
				"Cindy": {Min: 1, Max: 3},
			},
		},
		Solve:   SolveConfig{SolutionLimit: 5},
		Metrics: metrics.Config{},
	}
}
