package measure

import "math"

// DefaultCoverageFactor is the coverage factor k applied to the
// combined uncertainty when testing equivalence without an explicit k.
// k = 2 corresponds to roughly 95% coverage for normal distributions.
const DefaultCoverageFactor = 2.0

// En returns the normalized error statistic between two quantities: the
// value of their difference divided by the uncertainty of that
// difference. |En| <= 1 is the usual criterion for compatible
// measurement results in interlaboratory comparisons.
//
// When both uncertainties are zero the statistic is ±Inf for differing
// values and NaN for equal ones, per IEEE-754.
func En(a, b Quantity) float64 {
	d := a.Sub(b)
	return d.value / d.uncertainty
}

// IsEquivalent reports whether a and b are metrologically compatible
// using DefaultCoverageFactor. See IsEquivalentWithin.
func IsEquivalent(a, b Quantity) bool {
	return IsEquivalentWithin(a, b, DefaultCoverageFactor)
}

// IsEquivalentWithin reports whether |a−b| is within k times the
// uncertainty of the difference.
//
// The relation is reflexive and symmetric but not transitive: with
// k = 2, (0 ± 1) ~ (2 ± 1) and (2 ± 1) ~ (4 ± 1), yet (0 ± 1) and
// (4 ± 1) are not equivalent. Never use it as map-key equality.
func IsEquivalentWithin(a, b Quantity, k float64) bool {
	d := a.Sub(b)
	return math.Abs(d.value) <= k*d.uncertainty
}

// IsZero reports whether q is equivalent to the exact zero quantity.
func IsZero(q Quantity) bool {
	return IsEquivalent(q, Exact(0))
}

// Less reports whether q is strictly below o. Equivalent quantities are
// never less: for two equivalent quantities with distinct values, Less
// and Greater are both false in both directions.
func (q Quantity) Less(o Quantity) bool {
	if IsEquivalent(q, o) {
		return false
	}
	return q.value < o.value
}

// LessEq reports whether q is below or equivalent to o.
func (q Quantity) LessEq(o Quantity) bool {
	if IsEquivalent(q, o) {
		return true
	}
	return q.value < o.value
}

// Greater reports whether q is strictly above o. See Less for the
// treatment of equivalent quantities.
func (q Quantity) Greater(o Quantity) bool {
	if IsEquivalent(q, o) {
		return false
	}
	return q.value > o.value
}

// GreaterEq reports whether q is above or equivalent to o.
func (q Quantity) GreaterEq(o Quantity) bool {
	if IsEquivalent(q, o) {
		return true
	}
	return q.value > o.value
}

// Compare orders q and o by central value alone, ignoring uncertainty
// entirely. It returns -1, 0 or +1 and, unlike Less/Greater, is a
// strict total order: deliberately stricter than the equivalence-aware
// comparisons, and the right choice for sorting.
func (q Quantity) Compare(o Quantity) int {
	switch {
	case q.value < o.value:
		return -1
	case q.value > o.value:
		return 1
	default:
		return 0
	}
}
