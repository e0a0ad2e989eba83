package handler

import (
	"sync/atomic"
	"time"
)

// TimestampLayout matches the ISO-8601 form browsers produce with
// Date.prototype.toISOString: UTC, millisecond precision, trailing Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Clock issues strictly increasing millisecond timestamps.  When two calls
// land in the same millisecond (or the wall clock steps backwards) the later
// call is pushed one millisecond past the previous value.
type Clock struct {
	now  func() time.Time
	last atomic.Int64 // unix milliseconds of the last value handed out
}

// NewClock returns a Clock reading the system time.
func NewClock() *Clock { return &Clock{now: time.Now} }

// Now returns the next timestamp.
func (c *Clock) Now() time.Time {
	for {
		prev := c.last.Load()
		next := c.now().UnixMilli()
		if next <= prev {
			next = prev + 1
		}
		if c.last.CompareAndSwap(prev, next) {
			return time.UnixMilli(next).UTC()
		}
	}
}
