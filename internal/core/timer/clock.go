package timer

import "time"

// Clock supplies wall-clock readings. Remaining time is always derived
// from clock deltas, never from counting ticks, so a delayed or missed
// tick cannot skew the countdown.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the real wall clock.
var SystemClock Clock = systemClock{}
