package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario.
// Scenarios build quantities, apply operation steps with uncertainty
// propagation, and assert on the evaluated results.
type Scenario struct {
	// Name uniquely identifies this scenario. Also names the golden
	// file when the scenario runs under RunGolden.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Quantities declares the input quantities. Each declaration uses
	// exactly one source: a value (with optional uncertainty), an
	// observation series, or distribution bounds.
	Quantities []QuantityStep `yaml:"quantities"`

	// Steps applies binary operators to previously declared names.
	// Steps may reference earlier steps.
	Steps []OpStep `yaml:"steps,omitempty"`

	// Checks validate the evaluated quantities.
	// Supported types: equivalent, distinct, less, rendered, bounds.
	Checks []Check `yaml:"checks"`
}

// QuantityStep declares one named input quantity.
type QuantityStep struct {
	// Name is the quantity's identifier within the scenario.
	Name string `yaml:"name"`

	// Value with optional Uncertainty defines the quantity directly.
	Value       *float64 `yaml:"value,omitempty"`
	Uncertainty float64  `yaml:"uncertainty,omitempty"`

	// Observations defines the quantity as the mean of a series with
	// the standard error of the mean as its uncertainty.
	Observations []float64 `yaml:"observations,omitempty"`

	// Lower and Upper with optional Distribution define the quantity
	// from distribution bounds ("R", "N" or "U"; default "R").
	Lower        *float64 `yaml:"lower,omitempty"`
	Upper        *float64 `yaml:"upper,omitempty"`
	Distribution string   `yaml:"distribution,omitempty"`

	// Unit and Precision feed the rendered form in the trace.
	Unit      string `yaml:"unit,omitempty"`
	Precision *int   `yaml:"precision,omitempty"`
}

// OpStep applies a binary operator to two named operands.
type OpStep struct {
	// Name is the step's identifier within the scenario.
	Name string `yaml:"name"`

	// Op is one of "add", "sub", "mul" or "div".
	Op string `yaml:"op"`

	// Left and Right name the operands.
	Left  string `yaml:"left"`
	Right string `yaml:"right"`

	// Unit and Precision feed the rendered form in the trace.
	Unit      string `yaml:"unit,omitempty"`
	Precision *int   `yaml:"precision,omitempty"`
}

// Check validates an evaluated quantity or a relation between two.
type Check struct {
	// Type specifies the check type:
	// - "equivalent": Left and Right agree within expanded uncertainty
	// - "distinct": Left and Right do not agree
	// - "less": Left is strictly below Right (equivalence-aware)
	// - "rendered": Name renders exactly to Expect
	// - "bounds": Name's value lies inside [Lower, Upper]
	Type string `yaml:"type"`

	// Left and Right name the operands of relational checks.
	Left  string `yaml:"left,omitempty"`
	Right string `yaml:"right,omitempty"`

	// Coverage overrides the coverage factor for equivalent/distinct
	// checks. Zero means the default factor of 2.
	Coverage float64 `yaml:"coverage,omitempty"`

	// Name is the checked quantity (used by rendered and bounds).
	Name string `yaml:"name,omitempty"`

	// Expect is the exact rendered string (used by rendered).
	Expect string `yaml:"expect,omitempty"`

	// Lower and Upper bound the value (used by bounds).
	Lower *float64 `yaml:"lower,omitempty"`
	Upper *float64 `yaml:"upper,omitempty"`
}

// Check type constants.
const (
	CheckEquivalent = "equivalent"
	CheckDistinct   = "distinct"
	CheckLess       = "less"
	CheckRendered   = "rendered"
	CheckBounds     = "bounds"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "check:" vs "checks:".
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &s, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Quantities) == 0 {
		return fmt.Errorf("quantities list is required and must be non-empty")
	}

	for i, q := range s.Quantities {
		if q.Name == "" {
			return fmt.Errorf("quantities[%d]: name is required", i)
		}
		declared := 0
		if q.Value != nil {
			declared++
		}
		if len(q.Observations) > 0 {
			declared++
		}
		if q.Lower != nil {
			declared++
		}
		if declared != 1 {
			return fmt.Errorf("quantities[%d] (%s): exactly one of value, observations, or lower/upper is required", i, q.Name)
		}
		if q.Lower != nil && q.Upper == nil {
			return fmt.Errorf("quantities[%d] (%s): upper is required with lower", i, q.Name)
		}
		if q.Precision != nil && *q.Precision < 0 {
			return fmt.Errorf("quantities[%d] (%s): precision must be non-negative", i, q.Name)
		}
	}

	for i, step := range s.Steps {
		if step.Name == "" {
			return fmt.Errorf("steps[%d]: name is required", i)
		}
		switch step.Op {
		case "add", "sub", "mul", "div":
		default:
			return fmt.Errorf("steps[%d] (%s): unknown op %q", i, step.Name, step.Op)
		}
		if step.Left == "" || step.Right == "" {
			return fmt.Errorf("steps[%d] (%s): left and right are required", i, step.Name)
		}
		if step.Precision != nil && *step.Precision < 0 {
			return fmt.Errorf("steps[%d] (%s): precision must be non-negative", i, step.Name)
		}
	}

	for i, check := range s.Checks {
		if err := validateCheck(i, &check); err != nil {
			return err
		}
	}

	return nil
}

// validateCheck validates a single check based on its type.
func validateCheck(index int, c *Check) error {
	if c.Type == "" {
		return fmt.Errorf("checks[%d]: type is required", index)
	}

	switch c.Type {
	case CheckEquivalent, CheckDistinct, CheckLess:
		if c.Left == "" || c.Right == "" {
			return fmt.Errorf("checks[%d]: left and right are required for %s", index, c.Type)
		}
		if c.Coverage < 0 {
			return fmt.Errorf("checks[%d]: coverage must be non-negative", index)
		}
	case CheckRendered:
		if c.Name == "" {
			return fmt.Errorf("checks[%d]: name is required for rendered", index)
		}
		if c.Expect == "" {
			return fmt.Errorf("checks[%d]: expect is required for rendered", index)
		}
	case CheckBounds:
		if c.Name == "" {
			return fmt.Errorf("checks[%d]: name is required for bounds", index)
		}
		if c.Lower == nil || c.Upper == nil {
			return fmt.Errorf("checks[%d]: lower and upper are required for bounds", index)
		}
	default:
		return fmt.Errorf("checks[%d]: unknown check type %q", index, c.Type)
	}

	return nil
}
