package session

import "time"

// Clock supplies the current time. The timer only ever subtracts
// readings from the same clock, so any monotonic source works; tests
// inject a manual clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the process monotonic clock
var SystemClock Clock = systemClock{}
