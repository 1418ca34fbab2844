package model

import "time"

// Mode identifies one of the three countdown phases.
type Mode string

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// Default phase durations.
const (
	DefaultWork       = 25 * time.Minute
	DefaultShortBreak = 5 * time.Minute
	DefaultLongBreak  = 15 * time.Minute
)

// TimerConfig maps each mode to its nominal countdown duration.
// It is fixed once a timer is constructed.
type TimerConfig struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

// DefaultTimerConfig returns the standard 25/5/15 minute configuration.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Work:       DefaultWork,
		ShortBreak: DefaultShortBreak,
		LongBreak:  DefaultLongBreak,
	}
}

// Normalized replaces non-positive durations with defaults.
func (config TimerConfig) Normalized() TimerConfig {
	if config.Work <= 0 {
		config.Work = DefaultWork
	}
	if config.ShortBreak <= 0 {
		config.ShortBreak = DefaultShortBreak
	}
	if config.LongBreak <= 0 {
		config.LongBreak = DefaultLongBreak
	}
	return config
}

// DurationOf returns the nominal duration for the given mode.
func (config TimerConfig) DurationOf(mode Mode) time.Duration {
	switch mode {
	case ModeShortBreak:
		return config.ShortBreak
	case ModeLongBreak:
		return config.LongBreak
	default:
		return config.Work
	}
}

// ValidMode reports whether mode is one of the three known phases.
func ValidMode(mode Mode) bool {
	switch mode {
	case ModeWork, ModeShortBreak, ModeLongBreak:
		return true
	}
	return false
}

// ParseMode maps common spellings ("short-break", "longbreak") onto a Mode.
func ParseMode(value string) (Mode, bool) {
	switch value {
	case "work", "focus":
		return ModeWork, true
	case "short_break", "short-break", "shortbreak", "short":
		return ModeShortBreak, true
	case "long_break", "long-break", "longbreak", "long":
		return ModeLongBreak, true
	}
	return "", false
}

// Label returns a human readable name for the mode.
func (mode Mode) Label() string {
	switch mode {
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Work"
	}
}
