package orchestration

import "time"

// SetSince replaces the clock used to time strategies and returns a
// function restoring the original.
func SetSince(f func(time.Time) time.Duration) func() {
	orig := since
	since = f
	return func() { since = orig }
}
