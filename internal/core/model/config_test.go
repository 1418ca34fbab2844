package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTimerConfig(t *testing.T) {
	config := DefaultTimerConfig()
	assert.Equal(t, 1500*time.Second, config.DurationOf(ModeWork))
	assert.Equal(t, 300*time.Second, config.DurationOf(ModeShortBreak))
	assert.Equal(t, 900*time.Second, config.DurationOf(ModeLongBreak))
}

func TestNormalizedReplacesBadDurations(t *testing.T) {
	config := TimerConfig{Work: -1, ShortBreak: 0, LongBreak: 10 * time.Minute}.Normalized()
	assert.Equal(t, DefaultWork, config.Work)
	assert.Equal(t, DefaultShortBreak, config.ShortBreak)
	assert.Equal(t, 10*time.Minute, config.LongBreak)
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"work":        ModeWork,
		"focus":       ModeWork,
		"short-break": ModeShortBreak,
		"short_break": ModeShortBreak,
		"long-break":  ModeLongBreak,
		"longbreak":   ModeLongBreak,
	}
	for input, want := range cases {
		mode, ok := ParseMode(input)
		assert.True(t, ok, input)
		assert.Equal(t, want, mode)
	}

	_, ok := ParseMode("nap")
	assert.False(t, ok)
}

func TestValidMode(t *testing.T) {
	assert.True(t, ValidMode(ModeWork))
	assert.True(t, ValidMode(ModeShortBreak))
	assert.True(t, ValidMode(ModeLongBreak))
	assert.False(t, ValidMode(Mode("coffee")))
}

func TestModeLabel(t *testing.T) {
	assert.Equal(t, "Work", ModeWork.Label())
	assert.Equal(t, "Short Break", ModeShortBreak.Label())
	assert.Equal(t, "Long Break", ModeLongBreak.Label())
}
