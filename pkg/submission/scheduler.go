package submission

import "time"

// Scheduler runs fn once after d. Implementations may run fn inline;
// tests substitute a manual or synchronous clock.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// ClockScheduler schedules on the wall clock with time.AfterFunc.
type ClockScheduler struct{}

func (ClockScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(d time.Duration, fn func())

func (f SchedulerFunc) AfterFunc(d time.Duration, fn func()) {
	f(d, fn)
}
