// Package stats provides sample statistics over fixed numeric buffers.
//
// These helpers back the observation-series constructor in
// internal/measure: the standard error of the mean is the sample
// standard deviation divided by sqrt(n). All standard deviations here
// use the sample form (Bessel's correction, ÷(n−1)), matching the
// metrological convention for repeated observations.
package stats

import "math"

// Mean returns the arithmetic mean of values.
// Returns NaN for an empty buffer.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SampleStdDev returns the sample standard deviation of values
// (Bessel-corrected, ÷(n−1)).
// Returns NaN when fewer than two values are available: the dispersion
// of a single observation is undefined.
func SampleStdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return math.NaN()
	}
	m := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(n-1))
}

// MeanStdDev returns the mean and sample standard deviation in one pass
// over the buffer.
func MeanStdDev(values []float64) (mean, stddev float64) {
	return Mean(values), SampleStdDev(values)
}

// Span returns the difference between the largest and smallest value.
// Returns NaN for an empty buffer.
func Span(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return hi - lo
}
