package ledger

import "sync/atomic"

// Clock is a monotonic logical counter for entry ordering.
//
// Every entry is stamped with a strictly increasing seq from this clock,
// so listing by seq reproduces append order exactly even when wall-clock
// timestamps collide.
//
// Thread-safety: Clock is safe for concurrent use (atomic operations).
type Clock struct {
	seq atomic.Int64
}

// NewClockAt creates a clock resuming from a specific sequence number.
// Open uses this to continue where the stored entries left off.
func NewClockAt(start int64) *Clock {
	c := &Clock{}
	c.seq.Store(start)
	return c
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
