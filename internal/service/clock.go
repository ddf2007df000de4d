package service

import "time"

// Clock abstracts time for the deferred-delivery machinery so tests can
// drive it without real sleeps.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

func NewRealClock() Clock {
	return realClock{}
}
