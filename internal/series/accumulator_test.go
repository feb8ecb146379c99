package series

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/gauge/internal/testutil"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestAccumulatorEmpty(t *testing.T) {
	a := NewAccumulator("temperature")

	s := a.Snapshot()
	assert.Equal(t, "temperature", s.Name)
	assert.Equal(t, int64(0), s.Count)
	assert.Equal(t, 0.0, s.Mean)
	assert.True(t, s.First.IsZero())
	assert.True(t, s.Last.IsZero())
}

func TestAccumulatorObserve(t *testing.T) {
	clock := testutil.NewFixedClock(epoch, time.Minute)
	a := NewAccumulator("temperature")

	for _, v := range []float64{20.5, 19.0, 21.5, 20.0} {
		a.Observe(v, clock.Next())
	}

	s := a.Snapshot()
	assert.Equal(t, int64(4), s.Count)
	assert.Equal(t, 19.0, s.Min)
	assert.Equal(t, 21.5, s.Max)
	assert.InDelta(t, 81.0, s.Sum, 1e-12)
	assert.InDelta(t, 20.25, s.Mean, 1e-12)
	assert.InDelta(t, 2.5, s.Span, 1e-12)
	assert.Equal(t, epoch, s.First)
	assert.Equal(t, epoch.Add(3*time.Minute), s.Last)
}

func TestAccumulatorNegativeReadings(t *testing.T) {
	a := NewAccumulator("offset")
	a.Observe(-5, epoch)
	a.Observe(-1, epoch.Add(time.Second))

	s := a.Snapshot()
	assert.Equal(t, -5.0, s.Min)
	assert.Equal(t, -1.0, s.Max)
	assert.Equal(t, 4.0, s.Span)
	assert.Equal(t, -3.0, s.Mean)
}

func TestAccumulatorConcurrentObserve(t *testing.T) {
	a := NewAccumulator("load")

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				a.Observe(1, epoch)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(800), a.Count())
	assert.Equal(t, 800.0, a.Snapshot().Sum)
}
