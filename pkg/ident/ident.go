// Package ident generates resource identifiers and timestamps.
package ident

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// NewID returns a random UUIDv4 in its canonical textual form.
func NewID() string {
	return uuid.NewString()
}

// Clock supplies the current time for resource timestamps.
type Clock interface {
	Now() Time
}

type monotonicClock struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

// NewClock returns a Clock backed by the system time.
// Successive calls return strictly increasing UTC values at microsecond precision.
func NewClock() Clock {
	return NewClockFunc(time.Now)
}

// NewClockFunc returns a monotonic Clock that reads the wall time from now.
func NewClockFunc(now func() time.Time) Clock {
	return &monotonicClock{now: now}
}

func (c *monotonicClock) Now() Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now().UTC().Truncate(time.Microsecond)
	if !t.After(c.last) {
		t = c.last.Add(time.Microsecond)
	}
	c.last = t
	return Time{t}
}
