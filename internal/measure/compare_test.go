package measure

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEn(t *testing.T) {
	a := New(10, 0.3)
	b := New(9, 0.4)

	// difference value 1, difference uncertainty 0.5
	assert.InDelta(t, 2.0, En(a, b), 1e-12)
	assert.InDelta(t, -2.0, En(b, a), 1e-12)
}

func TestEnZeroUncertainty(t *testing.T) {
	assert.True(t, math.IsInf(En(Exact(1), Exact(0)), 1))
	assert.True(t, math.IsNaN(En(Exact(1), Exact(1))))
}

func TestIsEquivalentSelf(t *testing.T) {
	for _, q := range []Quantity{Exact(0), New(3, 0.5), New(-2, 0)} {
		assert.True(t, IsEquivalent(q, q))
	}
}

func TestIsEquivalentSymmetric(t *testing.T) {
	a := New(0, 1)
	b := New(1.5, 1)
	assert.True(t, IsEquivalent(a, b))
	assert.True(t, IsEquivalent(b, a))
}

func TestIsEquivalentNotTransitive(t *testing.T) {
	// With k=2: A~B and B~C, but A and C are 4 apart with a combined
	// 2*sqrt(2) threshold, so A is not equivalent to C. This is the
	// worked counterexample for why equivalence must never be used as
	// equality.
	a := New(0, 1)
	b := New(2, 1)
	c := New(4, 1)

	assert.True(t, IsEquivalent(a, b))
	assert.True(t, IsEquivalent(b, c))
	assert.False(t, IsEquivalent(a, c))
}

func TestIsEquivalentWithin(t *testing.T) {
	a := New(0, 1)
	c := New(4, 1)

	assert.False(t, IsEquivalentWithin(a, c, 2))
	assert.True(t, IsEquivalentWithin(a, c, 3))
}

func TestIsZero(t *testing.T) {
	assert.True(t, IsZero(Exact(0)))
	assert.True(t, IsZero(New(0.1, 0.1))) // within 2 sigma of zero
	assert.False(t, IsZero(New(1, 0.1)))
	assert.False(t, IsZero(Exact(0.001))) // exact non-zero is never zero
}

func TestOrderingDistinctQuantities(t *testing.T) {
	lo := New(0, 0.1)
	hi := New(10, 0.1)

	assert.True(t, lo.Less(hi))
	assert.True(t, lo.LessEq(hi))
	assert.False(t, lo.Greater(hi))
	assert.False(t, lo.GreaterEq(hi))

	assert.True(t, hi.Greater(lo))
	assert.True(t, hi.GreaterEq(lo))
}

func TestOrderingTrichotomyBreak(t *testing.T) {
	// a and b are equivalent but have distinct values: strict ordering
	// is false in both directions while both non-strict orderings hold.
	a := New(0, 1)
	b := New(1, 1)

	assert.False(t, a.Less(b))
	assert.False(t, a.Greater(b))
	assert.False(t, b.Less(a))
	assert.False(t, b.Greater(a))

	assert.True(t, a.LessEq(b))
	assert.True(t, a.GreaterEq(b))
	assert.True(t, b.LessEq(a))
	assert.True(t, b.GreaterEq(a))

	// Compare ignores uncertainty and still orders them strictly.
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
}

func TestCompareIsStrictTotalOrder(t *testing.T) {
	qs := []Quantity{New(3, 5), New(-1, 0.1), New(2, 0.2), New(3, 0)}

	sort.Slice(qs, func(i, j int) bool { return qs[i].Compare(qs[j]) < 0 })

	values := make([]float64, len(qs))
	for i, q := range qs {
		values[i] = q.Value()
	}
	assert.Equal(t, []float64{-1, 2, 3, 3}, values)
}
