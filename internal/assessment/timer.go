package assessment

import "time"

type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. The controller goes through it for every
// countdown tick and notice expiry.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

var RealScheduler Scheduler = realScheduler{}
