package clock

import "time"

// System is the real clock. Times are UTC, matching what the storage
// layer persists.
type System struct{}

// NewSystem creates a system clock.
func NewSystem() System {
	return System{}
}

// Now returns the current UTC time.
func (System) Now() time.Time {
	return time.Now().UTC()
}
