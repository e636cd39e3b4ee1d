// Package gameclock provides the monotonic millisecond clock all gameplay
// timers are compared against. Timers are sampled and compared, never
// awaited.
package gameclock

import "time"

// Clock yields monotonic milliseconds since some fixed origin.
type Clock interface {
	Now() int64
}

// Real is the wall clock, monotonic since process start.
type Real struct {
	start time.Time
}

func NewReal() *Real {
	return &Real{start: time.Now()}
}

func (r *Real) Now() int64 {
	return time.Since(r.start).Milliseconds()
}

// Manual is a hand-advanced clock for tests and deterministic sims.
type Manual struct {
	ms int64
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Now() int64 {
	return m.ms
}

// Advance moves the clock forward by ms milliseconds.
func (m *Manual) Advance(ms int64) {
	m.ms += ms
}

// Set jumps the clock to an absolute value.
func (m *Manual) Set(ms int64) {
	m.ms = ms
}
