package harvest

import (
	"time"

	"golang.org/x/time/rate"
)

// DefaultSweepInterval bounds how often the DOM sweep actually runs when the
// continuous observer re-triggers it rapidly.
const DefaultSweepInterval = 800 * time.Millisecond

// Throttle is a cooperative rate limit: Allow reports whether enough time
// has passed since the last permitted call. It bounds sweep cost under rapid
// repeated triggering; it is not a concurrency-safety mechanism.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle creates a Throttle permitting one call per interval. The first
// call is always permitted. A non-positive interval falls back to
// DefaultSweepInterval.
func NewThrottle(interval time.Duration) *Throttle {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Throttle{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Allow reports whether the caller may proceed now.
func (t *Throttle) Allow() bool {
	return t.limiter.Allow()
}
