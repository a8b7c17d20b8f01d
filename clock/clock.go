package clock

import "time"

// Interface represents the time source used when observing how long the
// environment lock is held
type Interface interface {
	Now() time.Time
}

type systemClock struct{}

func (sc systemClock) Now() time.Time {
	return time.Now()
}

// System returns a clock backed by the time package
func System() Interface {
	return systemClock{}
}
