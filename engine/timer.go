package engine

import "time"

// Timer measures wall-clock time since it was created or last reset.
type Timer struct {
	start time.Time
}

// NewTimer creates a running timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the time since the last Reset.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Reset restarts the timer.
func (t *Timer) Reset() {
	t.start = time.Now()
}
