// Package clock supplies the monotonic time capability consumed by the
// impulse registry: a non-decreasing current time in seconds.
package clock

import (
	"sync"
	"time"
)

// Clock yields the current time in seconds
// Implementations must be monotonically non-decreasing
type Clock interface {
	Now() float64
}

// Monotonic reports wall time elapsed since construction, using the runtime
// monotonic reading so it never goes backward
type Monotonic struct {
	start time.Time
}

// NewMonotonic creates a clock starting at zero
func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

// Now returns seconds since the clock was created
func (c *Monotonic) Now() float64 {
	return time.Since(c.start).Seconds()
}

// Manual is a hand-driven clock for tests and host-stepped simulations
type Manual struct {
	mu  sync.RWMutex
	now float64
}

// NewManual creates a manual clock at the given start time
func NewManual(start float64) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual time
func (m *Manual) Now() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set moves the clock to t
// Moving backward violates the Clock contract and is the caller's problem
func (m *Manual) Set(t float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d seconds
func (m *Manual) Advance(d float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now += d
}
