package harness

import (
	"fmt"

	"github.com/roach88/gauge/internal/measure"
	"github.com/roach88/gauge/internal/scenario"
)

// Run executes a scenario: builds the quantities, applies the steps in
// order, and validates every check against the evaluated results.
//
// Evaluation errors (an undefined operand, for example) abort the run.
// Check failures do not: they accumulate in Result.Errors so a failing
// scenario reports every violated check at once.
func Run(s *Scenario) (*Result, error) {
	if err := validateScenario(s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	compiled := compile(s)
	evals, err := compiled.Evaluate()
	if err != nil {
		return nil, fmt.Errorf("evaluating scenario %s: %w", s.Name, err)
	}

	result := NewResult()
	env := make(map[string]measure.Quantity, len(evals))
	for _, e := range evals {
		env[e.Name] = e.Quantity
		result.Entries = append(result.Entries, Entry{
			Name:        e.Name,
			Value:       e.Quantity.Value(),
			Uncertainty: e.Quantity.Uncertainty(),
			Rendered:    e.Rendered,
		})
	}

	for i, check := range s.Checks {
		applyCheck(result, i, &check, env)
	}

	return result, nil
}

// compile translates the YAML declarations into a scenario for
// evaluation. Validation has already established that each quantity
// carries exactly one source.
func compile(s *Scenario) *scenario.Scenario {
	compiled := &scenario.Scenario{Name: s.Name, Description: s.Description}

	for _, q := range s.Quantities {
		def := scenario.QuantityDef{Name: q.Name, Unit: q.Unit}
		if q.Precision != nil {
			def.Precision, def.HasPrecision = *q.Precision, true
		}
		switch {
		case q.Value != nil:
			def.Source = scenario.Pair{Value: *q.Value, Uncertainty: q.Uncertainty}
		case len(q.Observations) > 0:
			def.Source = scenario.Observations{Values: q.Observations}
		default:
			dist := q.Distribution
			if dist == "" {
				dist = string(measure.Rectangular)
			}
			def.Source = scenario.Bounds{
				Lower:        *q.Lower,
				Upper:        *q.Upper,
				Distribution: measure.Distribution(dist),
			}
		}
		compiled.Quantities = append(compiled.Quantities, def)
	}

	for _, step := range s.Steps {
		def := scenario.ResultDef{
			Name:  step.Name,
			Op:    step.Op,
			Left:  step.Left,
			Right: step.Right,
			Unit:  step.Unit,
		}
		if step.Precision != nil {
			def.Precision, def.HasPrecision = *step.Precision, true
		}
		compiled.Results = append(compiled.Results, def)
	}

	return compiled
}
