package scenario

import (
	"strconv"

	"github.com/roach88/gauge/internal/measure"
)

// Source is a sealed interface over the three ways a scenario may
// define a quantity. Only Pair, Observations and Bounds implement it,
// so consumers can type-switch exhaustively.
type Source interface {
	source()
}

// Pair defines a quantity directly as a (value, uncertainty) pair.
type Pair struct {
	Value       float64
	Uncertainty float64
}

func (Pair) source() {}

// Observations defines a quantity as a series of repeated observations
// (mean and standard error of the mean).
type Observations struct {
	Values []float64
}

func (Observations) source() {}

// Bounds defines a quantity by distribution bounds (Type B evaluation).
type Bounds struct {
	Lower        float64
	Upper        float64
	Distribution measure.Distribution
}

func (Bounds) source() {}

// QuantityDef is a named quantity declaration.
type QuantityDef struct {
	Name   string
	Source Source

	// Unit and Precision feed the measure format specifier when the
	// quantity is rendered. HasPrecision distinguishes an absent
	// precision from an explicit 0.
	Unit         string
	Precision    int
	HasPrecision bool
}

// ResultDef applies a binary operator to two named operands. Operands
// may reference quantities or results declared earlier in the file.
type ResultDef struct {
	Name  string
	Op    string // "add" | "sub" | "mul" | "div"
	Left  string
	Right string

	Unit         string
	Precision    int
	HasPrecision bool
}

// Scenario is a compiled measurement scenario.
type Scenario struct {
	Name        string
	Description string
	Quantities  []QuantityDef
	Results     []ResultDef
}

// Build constructs the quantity from its source definition.
func (d QuantityDef) Build() measure.Quantity {
	switch src := d.Source.(type) {
	case Pair:
		return measure.New(src.Value, src.Uncertainty)
	case Observations:
		return measure.FromObservations(src.Values)
	case Bounds:
		return measure.FromBounds(src.Lower, src.Upper, src.Distribution)
	default:
		// Impossible: Source is sealed.
		return measure.Quantity{}
	}
}

// formatSpec assembles a measure format specifier from a unit and an
// optional precision.
func formatSpec(unit string, precision int, hasPrecision bool) string {
	if unit == "" {
		unit = measure.NoUnit
	}
	if !hasPrecision {
		return unit
	}
	return unit + "." + strconv.Itoa(precision)
}

// FormatSpec returns the measure format specifier for this quantity.
func (d QuantityDef) FormatSpec() string {
	return formatSpec(d.Unit, d.Precision, d.HasPrecision)
}

// FormatSpec returns the measure format specifier for this result.
func (d ResultDef) FormatSpec() string {
	return formatSpec(d.Unit, d.Precision, d.HasPrecision)
}
