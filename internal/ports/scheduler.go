package ports

import "time"

type TaskHandle interface {
	// Cancel prevents the task from running. It reports whether the task
	// was still pending.
	Cancel() bool
}

// Scheduler runs delayed tasks on a single logical timeline. Tasks never
// run concurrently with each other.
type Scheduler interface {
	Schedule(delay time.Duration, task func()) TaskHandle
	CancelAll()
}
