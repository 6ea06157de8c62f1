package phasetimer

import "time"

// Clock supplies wall-clock time to the timer.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now without the monotonic reading, so that time spent
// in system suspend still counts towards the current phase.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now().Round(0)
}
