package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, 5.0, Mean([]float64{5}))
	assert.Equal(t, -1.5, Mean([]float64{-3, 0}))
}

func TestMeanEmpty(t *testing.T) {
	assert.True(t, math.IsNaN(Mean(nil)))
	assert.True(t, math.IsNaN(Mean([]float64{})))
}

func TestSampleStdDev(t *testing.T) {
	// Classic example: {2, 4, 4, 4, 5, 5, 7, 9} has population SD 2,
	// sample SD sqrt(32/7).
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, math.Sqrt(32.0/7.0), SampleStdDev(values), 1e-12)
}

func TestSampleStdDevSingleObservation(t *testing.T) {
	// Dispersion of one observation is undefined, not zero.
	assert.True(t, math.IsNaN(SampleStdDev([]float64{42})))
	assert.True(t, math.IsNaN(SampleStdDev(nil)))
}

func TestSampleStdDevConstantSeries(t *testing.T) {
	assert.Equal(t, 0.0, SampleStdDev([]float64{3, 3, 3, 3}))
}

func TestMeanStdDev(t *testing.T) {
	mean, sd := MeanStdDev([]float64{1, 2, 3, 4})
	assert.Equal(t, 2.5, mean)
	assert.InDelta(t, math.Sqrt(5.0/3.0), sd, 1e-12)
}

func TestSpan(t *testing.T) {
	assert.Equal(t, 8.0, Span([]float64{3, -1, 7, 0}))
	assert.Equal(t, 0.0, Span([]float64{4}))
	assert.True(t, math.IsNaN(Span(nil)))
}
