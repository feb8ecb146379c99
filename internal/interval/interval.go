package interval

import "math"

// Interval is a closed real range [lower, upper] or the Empty sentinel.
//
// Intervals are immutable value types; the zero value is Empty.
type Interval struct {
	lower    float64
	upper    float64
	nonEmpty bool
}

// Empty returns the sentinel for "no valid interval". Any operation
// involving an empty interval yields Empty.
func Empty() Interval {
	return Interval{}
}

// New creates the interval [a, b]. Swapped endpoints are reordered, so
// New(5, 2) and New(2, 5) are the same interval. Degenerate
// single-point intervals (a == b) are permitted.
func New(a, b float64) Interval {
	if a > b {
		a, b = b, a
	}
	return Interval{lower: a, upper: b, nonEmpty: true}
}

// Point creates the degenerate interval [x, x]. This is the widening
// conversion from a plain number.
func Point(x float64) Interval {
	return New(x, x)
}

// IsEmpty reports whether the interval is the Empty sentinel.
func (i Interval) IsEmpty() bool {
	return !i.nonEmpty
}

// Bounds returns the endpoints and whether they are valid. When ok is
// false the interval is Empty and the endpoints are meaningless.
func (i Interval) Bounds() (lower, upper float64, ok bool) {
	return i.lower, i.upper, i.nonEmpty
}

// ContainsZero reports whether zero lies in the open interior
// (lower < 0 < upper). Endpoints do not count: [0, 1] and [-1, 0] both
// report false. A zero-straddling divisor makes division undefined.
func (i Interval) ContainsZero() bool {
	return i.nonEmpty && i.lower < 0 && i.upper > 0
}

// Add returns i + o: [a1+a2, b1+b2].
func (i Interval) Add(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() {
		return Empty()
	}
	return New(i.lower+o.lower, i.upper+o.upper)
}

// Sub returns i − o: [a1−b2, b1−a2].
func (i Interval) Sub(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() {
		return Empty()
	}
	return New(i.lower-o.upper, i.upper-o.lower)
}

// Mul returns i × o: the tightest interval covering all four endpoint
// products.
func (i Interval) Mul(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() {
		return Empty()
	}
	p1 := i.lower * o.lower
	p2 := i.lower * o.upper
	p3 := i.upper * o.lower
	p4 := i.upper * o.upper
	return New(
		math.Min(math.Min(p1, p2), math.Min(p3, p4)),
		math.Max(math.Max(p1, p2), math.Max(p3, p4)),
	)
}

// Div returns i ÷ o as i × (1/o). Division by a zero-straddling
// interval is undefined and yields Empty. A divisor that merely touches
// zero at an endpoint produces a half-unbounded result with the
// mathematically correct sign branch.
func (i Interval) Div(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() || o.ContainsZero() {
		return Empty()
	}
	return i.Mul(o.reciprocal())
}

// reciprocal returns [1/upper, 1/lower]. When the divisor's upper
// endpoint is exactly zero, 1/0 evaluates to +Inf on what is really the
// negative branch; the bound is forced to −Inf to keep the sign
// correct.
func (o Interval) reciprocal() Interval {
	r := New(1/o.upper, 1/o.lower)
	if r.lower < 0 && math.IsInf(r.upper, 1) {
		return New(r.lower, math.Inf(-1))
	}
	return r
}
