// Package testutil provides deterministic helpers shared by tests.
package testutil

import (
	"sync"
	"time"
)

// FixedClock is a thread-safe deterministic time source for tests.
//
// Each call to Next returns the current instant and advances the clock
// by a fixed step, so repeated runs of the same test record identical
// reading timestamps.
type FixedClock struct {
	mu    sync.Mutex
	start time.Time
	now   time.Time
	step  time.Duration
}

// NewFixedClock creates a clock that starts at start and advances by
// step on every Next call.
func NewFixedClock(start time.Time, step time.Duration) *FixedClock {
	return &FixedClock{start: start, now: start, step: step}
}

// Next returns the current instant and advances the clock by one step.
func (c *FixedClock) Next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// Current returns the instant the next Next call will return, without
// advancing.
func (c *FixedClock) Current() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Reset rewinds the clock to its start instant for test reuse.
func (c *FixedClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.start
}
