// internal/sched/clock.go

package sched

// Clock tracks the virtual time of one scheduling run. It only ever moves
// forward; both advancing past a dispatched task and fast-forwarding over an
// idle gap go through it.
type Clock struct {
	now uint64
}

// Now returns the current virtual time.
func (c *Clock) Now() uint64 {
	return c.now
}

// Advance moves the clock forward by d time units.
func (c *Clock) Advance(d uint64) {
	c.now += d
}

// FastForward jumps the clock to t. Times in the past are ignored so the
// clock stays monotone.
func (c *Clock) FastForward(t uint64) {
	if t > c.now {
		c.now = t
	}
}
