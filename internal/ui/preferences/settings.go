package preferences

import (
	"time"

	"pomotick/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration

	SoundEnabled  bool
	Notifications bool
	Autostart     bool
}

// DefaultSettings returns default settings for Pomotick.
func DefaultSettings() Settings {
	return Settings{
		Work:          model.DefaultWork,
		ShortBreak:    model.DefaultShortBreak,
		LongBreak:     model.DefaultLongBreak,
		SoundEnabled:  true,
		Notifications: true,
		Autostart:     false,
	}
}

// TimerConfig converts settings to the core timer configuration.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		Work:       settings.Work,
		ShortBreak: settings.ShortBreak,
		LongBreak:  settings.LongBreak,
	}.Normalized()
}
