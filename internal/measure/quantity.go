package measure

import (
	"math"

	"github.com/roach88/gauge/internal/stats"
)

// Quantity is a measured value with an associated standard uncertainty.
//
// Quantities are immutable: every operator returns a new instance and
// no method mutates its receiver. The zero value is an exact zero.
type Quantity struct {
	value       float64
	uncertainty float64

	// samples is the observation count when the quantity was built by
	// FromObservations, otherwise 0. Informational only: no operator
	// reads it, and derived quantities do not carry it forward.
	samples int
}

// Distribution identifies the assumed distribution of a Type B
// uncertainty evaluation over an interval of bounds.
type Distribution string

const (
	// Rectangular assumes any value in the bounds is equally likely.
	Rectangular Distribution = "R"
	// Normal assumes the bounds cover 95% of a normal distribution.
	Normal Distribution = "N"
	// UShaped assumes values cluster at the bounds (e.g. sinusoidal
	// variation between limits).
	UShaped Distribution = "U"
)

// New creates a quantity with the given value and standard uncertainty.
// A negative uncertainty is silently clamped to zero.
func New(value, uncertainty float64) Quantity {
	if uncertainty < 0 {
		uncertainty = 0
	}
	return Quantity{value: value, uncertainty: uncertainty}
}

// Exact creates a quantity with zero uncertainty. This is the widening
// conversion from a plain number; it is total and loses nothing.
func Exact(value float64) Quantity {
	return Quantity{value: value}
}

// FromObservations creates a quantity from a series of repeated
// observations: the value is the sample mean and the uncertainty is the
// standard error of the mean (sample standard deviation / sqrt(n)).
//
// With fewer than two observations the dispersion is undefined and the
// uncertainty is zero. The observation count is retained and readable
// via SampleCount.
func FromObservations(observations []float64) Quantity {
	n := len(observations)
	mean, sd := stats.MeanStdDev(observations)
	u := 0.0
	if !math.IsNaN(sd) {
		u = sd / math.Sqrt(float64(n))
	}
	q := New(mean, u)
	q.samples = n
	return q
}

// FromBounds creates a quantity from an interval of bounds [a, b] and an
// assumed distribution (a Type B evaluation): the value is the midpoint
// and the uncertainty is the half-width scaled by the distribution's
// divisor (sqrt(3) rectangular, 2 normal at 95% bounds, sqrt(2)
// U-shaped). An unrecognized distribution yields the exact zero
// quantity.
func FromBounds(a, b float64, dist Distribution) Quantity {
	mid := (a + b) / 2
	half := (b - a) / 2
	switch dist {
	case Rectangular:
		return New(mid, half/math.Sqrt(3))
	case Normal:
		return New(mid, half/2)
	case UShaped:
		return New(mid, half/math.Sqrt(2))
	default:
		return Quantity{}
	}
}

// Value returns the central value. This is the explicit narrowing
// conversion to a plain number: the uncertainty is discarded, which is
// why there is no implicit path in the other direction.
func (q Quantity) Value() float64 {
	return q.value
}

// Uncertainty returns the standard uncertainty. Never negative.
func (q Quantity) Uncertainty() float64 {
	return q.uncertainty
}

// SampleCount returns the number of observations the quantity was built
// from and whether it was built from observations at all.
func (q Quantity) SampleCount() (int, bool) {
	return q.samples, q.samples > 0
}

// Add returns q + o. The result uncertainty is sqrt(u1²+u2²).
func (q Quantity) Add(o Quantity) Quantity {
	return New(q.value+o.value, math.Hypot(q.uncertainty, o.uncertainty))
}

// Sub returns q − o. The result uncertainty is sqrt(u1²+u2²), identical
// to addition: subtraction never cancels uncertainty.
func (q Quantity) Sub(o Quantity) Quantity {
	return New(q.value-o.value, math.Hypot(q.uncertainty, o.uncertainty))
}

// Mul returns q × o with contributions u1·x2 and u2·x1 combined by root
// sum square.
func (q Quantity) Mul(o Quantity) Quantity {
	return New(q.value*o.value, math.Hypot(q.uncertainty*o.value, o.uncertainty*q.value))
}

// Div returns q ÷ o with contributions u1/x2 and u2·x1/x2² combined by
// root sum square.
//
// There is no divide-by-zero guard: dividing by an exact zero follows
// IEEE-754 and produces infinities or NaN, which propagate through any
// further arithmetic and are detectable once at the end of a chain.
func (q Quantity) Div(o Quantity) Quantity {
	c1 := q.uncertainty / o.value
	c2 := o.uncertainty * q.value / (o.value * o.value)
	return New(q.value/o.value, math.Hypot(c1, c2))
}
