package core

import "time"

// TimeProvider abstracts the clock so durations and timestamps can be pinned in tests
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
