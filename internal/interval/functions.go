package interval

import "math"

// Pow raises the interval to an integer power.
//
// For p > 0 the result follows the monotonic endpoint rule [a^p, b^p],
// except when p is even and zero is interior to the interval: the
// minimum of x^p is then 0, attained inside the interval rather than at
// an endpoint, so the result is [0, max(a^p, b^p)].
//
// p = 0 yields [1, 1]. For p < 0 the result is the reciprocal of the
// positive power, [1/upper, 1/lower], and is Empty when zero is
// interior.
func (i Interval) Pow(p int) Interval {
	if i.IsEmpty() {
		return Empty()
	}
	if p == 0 {
		return New(1, 1)
	}
	if p < 0 {
		if i.ContainsZero() {
			return Empty()
		}
		lower, upper, _ := i.Pow(-p).Bounds()
		return New(1/upper, 1/lower)
	}
	lo := math.Pow(i.lower, float64(p))
	hi := math.Pow(i.upper, float64(p))
	if p%2 == 0 && i.ContainsZero() {
		return New(0, math.Max(lo, hi))
	}
	return New(lo, hi)
}

// Sqrt returns the square root of the interval. Defined only for
// intervals with lower bound >= 0; otherwise Empty.
func (i Interval) Sqrt() Interval {
	return i.mapIncreasing(math.Sqrt)
}

// Exp returns e raised to the interval, over the same non-negative
// domain as the other elementary functions here; a negative lower bound
// yields Empty.
func (i Interval) Exp() Interval {
	return i.mapIncreasing(math.Exp)
}

// Log returns the natural logarithm of the interval. Defined only for
// intervals with lower bound >= 0; Log of a zero endpoint is −Inf.
func (i Interval) Log() Interval {
	return i.mapIncreasing(math.Log)
}

// Log10 returns the base-10 logarithm of the interval, with the same
// domain as Log.
func (i Interval) Log10() Interval {
	return i.mapIncreasing(math.Log10)
}

// LogBase returns the base-c logarithm of the interval. The base must
// be greater than 1 (so that the function is monotonically increasing);
// otherwise Empty.
func (i Interval) LogBase(c float64) Interval {
	if c <= 1 {
		return Empty()
	}
	ln := math.Log(c)
	return i.mapIncreasing(func(x float64) float64 { return math.Log(x) / ln })
}

// PowBase raises the scalar base r to the interval exponent:
// [r^a, r^b]. The exponent's lower bound must be >= 0; otherwise Empty.
func PowBase(r float64, exponent Interval) Interval {
	if exponent.IsEmpty() || exponent.lower < 0 {
		return Empty()
	}
	return New(math.Pow(r, exponent.lower), math.Pow(r, exponent.upper))
}

// mapIncreasing applies a monotonically increasing scalar function
// endpoint-wise. All functions routed through here share the
// non-negative domain: a negative lower bound yields Empty.
func (i Interval) mapIncreasing(f func(float64) float64) Interval {
	if i.IsEmpty() || i.lower < 0 {
		return Empty()
	}
	return New(f(i.lower), f(i.upper))
}
