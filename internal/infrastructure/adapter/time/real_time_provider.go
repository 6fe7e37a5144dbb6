package time

import (
	"time"

	"github.com/pkulak/moneybot/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with real time
// operations.
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// Until returns the duration until t
func (p *RealTimeProvider) Until(t time.Time) time.Duration {
	return time.Until(t)
}

// After returns a channel that fires once d has elapsed
func (p *RealTimeProvider) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
