package core

import (
	"time"
)

// TimeProvider abstracts time operations so the scheduler and entities can be
// tested against fixed clocks.
type TimeProvider interface {
	// Now returns the current instant
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
	// Until returns the duration until t
	Until(t time.Time) time.Duration
	// After returns a channel that fires once d has elapsed; used instead of
	// Sleep wherever the wait must also be cancellable by a context
	After(d time.Duration) <-chan time.Time
}
