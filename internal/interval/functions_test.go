package interval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowZeroExponent(t *testing.T) {
	assertBounds(t, New(-2, 3).Pow(0), 1, 1)
	assertBounds(t, Point(0).Pow(0), 1, 1)
}

func TestPowEvenWithZeroInterior(t *testing.T) {
	// The minimum of x² on [-2, 3] is 0, attained inside the interval.
	assertBounds(t, New(-2, 3).Pow(2), 0, 9)
}

func TestPowMonotonic(t *testing.T) {
	assertBounds(t, New(1, 3).Pow(2), 1, 9)
	assertBounds(t, New(-2, 3).Pow(3), -8, 27)
	// Even power of an all-negative interval: endpoints flip and the
	// constructor reorders.
	assertBounds(t, New(-3, -2).Pow(2), 4, 9)
}

func TestPowNegativeExponent(t *testing.T) {
	assertBounds(t, New(1, 2).Pow(-1), 0.5, 1)
	assertBounds(t, New(1, 2).Pow(-2), 0.25, 1)
	assert.True(t, New(-1, 1).Pow(-2).IsEmpty())
}

func TestPowEmpty(t *testing.T) {
	assert.True(t, Empty().Pow(0).IsEmpty())
	assert.True(t, Empty().Pow(2).IsEmpty())
}

func TestSqrt(t *testing.T) {
	assertBounds(t, New(0, 4).Sqrt(), 0, 2)
	assertBounds(t, New(4, 9).Sqrt(), 2, 3)
	assert.True(t, New(-1, 4).Sqrt().IsEmpty())
	assert.True(t, Empty().Sqrt().IsEmpty())
}

func TestExp(t *testing.T) {
	assertBounds(t, New(0, 1).Exp(), 1, math.E)
	assert.True(t, New(-1, 1).Exp().IsEmpty())
}

func TestLog(t *testing.T) {
	assertBounds(t, New(1, math.E).Log(), 0, 1)
	assert.True(t, New(-1, 2).Log().IsEmpty())

	// A zero lower endpoint is admissible and maps to −Inf.
	lo, hi, ok := New(0, 1).Log().Bounds()
	require.True(t, ok)
	assert.True(t, math.IsInf(lo, -1))
	assert.Equal(t, 0.0, hi)
}

func TestLog10(t *testing.T) {
	assertBounds(t, New(10, 1000).Log10(), 1, 3)
	assert.True(t, New(-10, 10).Log10().IsEmpty())
}

func TestLogBase(t *testing.T) {
	assertBounds(t, New(8, 16).LogBase(2), 3, 4)
	assert.True(t, New(8, 16).LogBase(1).IsEmpty())
	assert.True(t, New(8, 16).LogBase(0.5).IsEmpty())
	assert.True(t, New(-8, 16).LogBase(2).IsEmpty())
}

func TestPowBase(t *testing.T) {
	assertBounds(t, PowBase(2, New(1, 3)), 2, 8)
	// Base below 1 flips the endpoints; the constructor reorders.
	assertBounds(t, PowBase(0.5, New(1, 2)), 0.25, 0.5)
	assert.True(t, PowBase(2, New(-1, 3)).IsEmpty())
	assert.True(t, PowBase(2, Empty()).IsEmpty())
}
