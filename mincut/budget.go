package mincut

import "time"

// The time budget is an absolute deadline threaded as a plain value through
// every solving call, so nested multi-way splits share one budget without
// shared mutable state. The zero time.Time disables the check.
//
// The deadline is cooperative: it is consulted only at phase, trial, and
// split boundaries. One expensive phase can overrun it.

// deadlineFrom converts a relative budget into an absolute deadline.
// A zero budget yields a deadline of now, i.e. immediately expired.
//
// Complexity: O(1).
func deadlineFrom(start time.Time, budget time.Duration) time.Time {
	return start.Add(budget)
}

// expired reports whether the deadline has passed. The zero deadline never
// expires.
//
// Complexity: O(1).
func expired(deadline time.Time) bool {
	if deadline.IsZero() {
		return false
	}

	return !time.Now().Before(deadline)
}
