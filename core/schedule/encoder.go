package schedule

import (
	"fmt"

	"github.com/theptrk/ortools-scheduling/core/engine"
	"github.com/theptrk/ortools-scheduling/core/logger"
	"github.com/theptrk/ortools-scheduling/core/roster"
)

// Rule emits the engine constraints for one business rule. Rules are
// independent of each other so the set can grow without touching
// shared state.
type Rule struct {
	Name string
	Emit func(cfg *roster.Config, vars *VarSpace, m engine.Model) error
}

// DefaultRules is the rule set enforced on every roster.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "coverage", Emit: emitCoverage},
		{Name: "one_shift_per_day", Emit: emitOneShiftPerDay},
		{Name: "predefined", Emit: emitPredefined},
		{Name: "fatigue", Emit: emitFatigue},
		{Name: "evening_quota", Emit: emitEveningQuota},
	}
}

// Encoder translates business rules into declarative constraints.
type Encoder struct {
	rules []Rule
	log   logger.Logger
}

// NewEncoder builds an encoder for the given rules, defaulting to
// DefaultRules when none are passed.
func NewEncoder(log logger.Logger, rules ...Rule) *Encoder {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Encoder{rules: rules, log: log}
}

// Encode emits all rules into the model. It fails fast on the first
// rule error; nothing is sent to the engine afterwards.
func (e *Encoder) Encode(cfg *roster.Config, vars *VarSpace, m engine.Model) error {
	for _, r := range e.rules {
		before := m.ConstraintCount()
		if err := r.Emit(cfg, vars, m); err != nil {
			return fmt.Errorf("rule %s: %w", r.Name, err)
		}
		e.log.Debugw("rule encoded", map[string]any{
			"rule":        r.Name,
			"constraints": m.ConstraintCount() - before,
		})
	}
	return nil
}

// Build validates the configuration, creates the decision variables and
// encodes the default rules into m. This is the whole model
// construction path; it never invokes the engine.
func Build(cfg *roster.Config, m engine.Model, log logger.Logger) (*VarSpace, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}
	vars := BuildVariables(cfg, m)
	log.Infof("decision variables: %d", vars.Size())
	if err := NewEncoder(log).Encode(cfg, vars, m); err != nil {
		return nil, err
	}
	log.Infof("constraints: %d", m.ConstraintCount())
	return vars, nil
}
