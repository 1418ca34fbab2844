package preferences

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pomotick/internal/core/model"
)

func TestDefaultSettingsMatchCoreDefaults(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, model.DefaultWork, settings.Work)
	assert.Equal(t, model.DefaultShortBreak, settings.ShortBreak)
	assert.Equal(t, model.DefaultLongBreak, settings.LongBreak)
	assert.True(t, settings.SoundEnabled)
	assert.True(t, settings.Notifications)
	assert.False(t, settings.Autostart)
}

func TestTimerConfigConversion(t *testing.T) {
	settings := Settings{Work: 50 * time.Minute, ShortBreak: 10 * time.Minute, LongBreak: 0}

	config := settings.TimerConfig()
	assert.Equal(t, 50*time.Minute, config.DurationOf(model.ModeWork))
	assert.Equal(t, 10*time.Minute, config.DurationOf(model.ModeShortBreak))
	assert.Equal(t, model.DefaultLongBreak, config.DurationOf(model.ModeLongBreak),
		"zero durations fall back to defaults")
}

func TestParsePositiveInt(t *testing.T) {
	value, ok := parsePositiveInt("25")
	assert.True(t, ok)
	assert.Equal(t, 25, value)

	for _, bad := range []string{"0", "-3", "abc", ""} {
		_, ok := parsePositiveInt(bad)
		assert.False(t, ok, bad)
	}
}
