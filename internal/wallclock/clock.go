package wallclock

import "time"

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// System returns a Clock backed by time.Now
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type fixedClock struct {
	now time.Time
}

// Fixed returns a Clock which always reports the given time
func Fixed(t time.Time) Clock {
	return fixedClock{now: t}
}

func (c fixedClock) Now() time.Time {
	return c.now
}
