package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestRun_PropagatesThroughSteps(t *testing.T) {
	s := &Scenario{
		Name:        "bar_area",
		Description: "area with propagated uncertainty",
		Quantities: []QuantityStep{
			{Name: "length", Value: floatPtr(3.0), Uncertainty: 0.1, Unit: "mm"},
			{Name: "width", Value: floatPtr(5.0), Uncertainty: 0.2, Unit: "mm"},
		},
		Steps: []OpStep{
			{Name: "area", Op: "mul", Left: "length", Right: "width", Unit: "mm", Precision: intPtr(2)},
		},
		Checks: []Check{
			{Type: CheckRendered, Name: "area", Expect: "(15.00 mm ± 0.78 mm)"},
			{Type: CheckBounds, Name: "area", Lower: floatPtr(14.0), Upper: floatPtr(16.0)},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)

	assert.True(t, result.Pass)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Entries, 3)
	assert.Equal(t, "area", result.Entries[2].Name)
	assert.Equal(t, 15.0, result.Entries[2].Value)
	assert.InDelta(t, 0.78102, result.Entries[2].Uncertainty, 1e-5)
}

func TestRun_EquivalenceChecks(t *testing.T) {
	s := &Scenario{
		Name:        "lab_comparison",
		Description: "two labs measuring the same artifact",
		Quantities: []QuantityStep{
			{Name: "lab_a", Value: floatPtr(10.0), Uncertainty: 3.0},
			{Name: "lab_b", Value: floatPtr(12.0), Uncertainty: 1.0},
			{Name: "lab_c", Value: floatPtr(30.0), Uncertainty: 1.0},
		},
		Checks: []Check{
			{Type: CheckEquivalent, Left: "lab_a", Right: "lab_b"},
			{Type: CheckDistinct, Left: "lab_a", Right: "lab_c"},
			{Type: CheckLess, Left: "lab_a", Right: "lab_c"},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass)
	assert.Empty(t, result.Errors)
}

func TestRun_CustomCoverage(t *testing.T) {
	// Values 2 apart with unit uncertainties: En is sqrt(2), so they
	// agree at k=2 but not at k=1.
	s := &Scenario{
		Name:        "coverage",
		Description: "coverage factor overrides the default",
		Quantities: []QuantityStep{
			{Name: "a", Value: floatPtr(0.0), Uncertainty: 1.0},
			{Name: "b", Value: floatPtr(2.0), Uncertainty: 1.0},
		},
		Checks: []Check{
			{Type: CheckEquivalent, Left: "a", Right: "b"},
			{Type: CheckDistinct, Left: "a", Right: "b", Coverage: 1.0},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass)
}

func TestRun_AccumulatesCheckFailures(t *testing.T) {
	s := &Scenario{
		Name:        "failing",
		Description: "every check fails and is reported",
		Quantities: []QuantityStep{
			{Name: "a", Value: floatPtr(0.0), Uncertainty: 1.0},
			{Name: "b", Value: floatPtr(10.0), Uncertainty: 1.0},
		},
		Checks: []Check{
			{Type: CheckEquivalent, Left: "a", Right: "b"},
			{Type: CheckLess, Left: "b", Right: "a"},
			{Type: CheckBounds, Name: "a", Lower: floatPtr(5.0), Upper: floatPtr(6.0)},
			{Type: CheckRendered, Name: "missing", Expect: "(0 ± 1)"},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 4)
	assert.Contains(t, result.Errors[0], "not equivalent")
	assert.Contains(t, result.Errors[1], "expected b < a")
	assert.Contains(t, result.Errors[2], "outside")
	assert.Contains(t, result.Errors[3], `unknown quantity "missing"`)
}

func TestRun_ObservationsAndBoundsSources(t *testing.T) {
	s := &Scenario{
		Name:        "sources",
		Description: "observation series and rectangular bounds",
		Quantities: []QuantityStep{
			{Name: "repeated", Observations: []float64{20.0, 21.0, 22.0}},
			{Name: "resolution", Lower: floatPtr(9.0), Upper: floatPtr(11.0)},
		},
		Checks: []Check{
			{Type: CheckBounds, Name: "repeated", Lower: floatPtr(20.0), Upper: floatPtr(22.0)},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass)

	require.Len(t, result.Entries, 2)
	assert.Equal(t, 21.0, result.Entries[0].Value)
	assert.InDelta(t, 0.57735, result.Entries[0].Uncertainty, 1e-5)
	assert.Equal(t, 10.0, result.Entries[1].Value)
	assert.InDelta(t, 0.57735, result.Entries[1].Uncertainty, 1e-5)
}

func TestRun_StepsMayChain(t *testing.T) {
	s := &Scenario{
		Name:        "chained",
		Description: "a step referencing an earlier step",
		Quantities: []QuantityStep{
			{Name: "a", Value: floatPtr(2.0), Uncertainty: 0.1},
			{Name: "b", Value: floatPtr(3.0), Uncertainty: 0.1},
		},
		Steps: []OpStep{
			{Name: "sum", Op: "add", Left: "a", Right: "b"},
			{Name: "total", Op: "add", Left: "sum", Right: "a"},
		},
		Checks: []Check{
			{Type: CheckBounds, Name: "total", Lower: floatPtr(6.9), Upper: floatPtr(7.1)},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass)
	assert.Equal(t, 7.0, result.Entries[3].Value)
}

func TestRun_UnknownOperandFails(t *testing.T) {
	s := &Scenario{
		Name:        "dangling",
		Description: "step references an undeclared quantity",
		Quantities: []QuantityStep{
			{Name: "a", Value: floatPtr(1.0)},
		},
		Steps: []OpStep{
			{Name: "c", Op: "add", Left: "a", Right: "ghost"},
		},
	}

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown operand "ghost"`)
}

func TestRun_InvalidScenarioRejected(t *testing.T) {
	s := &Scenario{
		Name:        "invalid",
		Description: "quantity without a source",
		Quantities: []QuantityStep{
			{Name: "x"},
		},
	}

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scenario")
}
