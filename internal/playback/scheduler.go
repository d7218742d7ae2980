package playback

import "time"

// Timer is a pending scheduled callback
type Timer interface {
	// Stop cancels the callback, reporting whether it had not yet fired
	Stop() bool
}

// Scheduler runs a callback once after a delay
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemScheduler schedules on the runtime timer
type SystemScheduler struct{}

// AfterFunc calls f in its own goroutine after d
func (SystemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
