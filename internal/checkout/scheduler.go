package checkout

import "time"

// Cancel stops a scheduled callback. Calling it after the callback ran is harmless.
type Cancel func()

// Scheduler runs delayed callbacks for the simulated capture and payment steps
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Cancel
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, f func()) Cancel {
	t := time.AfterFunc(d, f)
	return func() { t.Stop() }
}

// TimerScheduler schedules callbacks on the runtime timer
var TimerScheduler Scheduler = timerScheduler{}
