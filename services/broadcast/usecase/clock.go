package usecase

import "time"

// timer is the stoppable handle returned by clock.AfterFunc
type timer interface {
	Stop() bool
}

// clock abstracts timer creation so tests can drive a run without sleeping
type clock interface {
	AfterFunc(d time.Duration, f func()) timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) timer {
	return time.AfterFunc(d, f)
}
