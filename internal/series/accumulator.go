// Package series provides a running statistics recorder for named,
// open-ended streams of readings.
//
// Unlike the arithmetic types in internal/measure and internal/interval,
// an Accumulator is mutable: each Observe call updates its private
// counters. It is the only stateful type in the repository and is
// mutex-guarded so concurrent producers may feed the same series.
package series

import (
	"sync"
	"time"
)

// Accumulator tracks running summary statistics for one named series.
type Accumulator struct {
	mu    sync.Mutex
	name  string
	count int64
	min   float64
	max   float64
	sum   float64
	first time.Time
	last  time.Time
}

// Summary is an immutable snapshot of an accumulator's counters.
type Summary struct {
	Name  string
	Count int64
	Min   float64
	Max   float64
	Sum   float64
	Mean  float64
	Span  float64
	First time.Time
	Last  time.Time
}

// NewAccumulator creates an empty accumulator for the named series.
func NewAccumulator(name string) *Accumulator {
	return &Accumulator{name: name}
}

// Name returns the series name.
func (a *Accumulator) Name() string {
	return a.name
}

// Observe records one reading taken at the given time. Observations are
// assumed to arrive in time order; first and last track the earliest
// and latest Observe call, not the extreme timestamps.
func (a *Accumulator) Observe(value float64, at time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.count == 0 {
		a.min = value
		a.max = value
		a.first = at
	} else {
		if value < a.min {
			a.min = value
		}
		if value > a.max {
			a.max = value
		}
	}
	a.sum += value
	a.last = at
	a.count++
}

// Count returns the number of readings recorded so far.
func (a *Accumulator) Count() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.count
}

// Snapshot returns the current summary statistics. An empty accumulator
// yields a Summary with zero counters and zero times.
func (a *Accumulator) Snapshot() Summary {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := Summary{
		Name:  a.name,
		Count: a.count,
		Min:   a.min,
		Max:   a.max,
		Sum:   a.sum,
		First: a.first,
		Last:  a.last,
	}
	if a.count > 0 {
		s.Mean = a.sum / float64(a.count)
		s.Span = a.max - a.min
	}
	return s
}
