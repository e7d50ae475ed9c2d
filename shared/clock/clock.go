package clock

import (
	"time"

	"shareit/shared/timezone"
)

// Clock supplies "now" to everything with temporal rules, so tests can pin it.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return timezone.Now()
}

// NewSystem returns a Clock backed by the application timezone wall clock.
func NewSystem() Clock {
	return systemClock{}
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// NewFixed returns a Clock frozen at the given instant.
func NewFixed(now time.Time) Clock {
	return fixedClock{now: now}
}
