package core

import "time"

// TimeProvider abstracts clock access so entities and repositories
// stay deterministic under test
type TimeProvider interface {
	// Now returns the current time
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
}
