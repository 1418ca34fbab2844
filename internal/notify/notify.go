// Package notify raises completion alerts: a system notification and an
// audio chime, each individually switchable from preferences.
package notify

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/gen2brain/beeep"
	"go.uber.org/zap"

	"pomotick/internal/core/model"
)

// Notifier alerts the user when a countdown completes.
type Notifier struct {
	mu     sync.Mutex
	app    fyne.App
	logger *zap.Logger
	sound  bool
	system bool
}

// New creates a notifier bound to the Fyne application.
func New(app fyne.App, logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{app: app, logger: logger, sound: true, system: true}
}

// SetEnabled toggles the chime and the system notification.
func (notifier *Notifier) SetEnabled(sound, system bool) {
	notifier.mu.Lock()
	notifier.sound = sound
	notifier.system = system
	notifier.mu.Unlock()
}

// Completed raises the configured alerts for a finished countdown.
func (notifier *Notifier) Completed(previous model.Mode, sessions int) {
	notifier.mu.Lock()
	sound, system := notifier.sound, notifier.system
	notifier.mu.Unlock()

	title, body := Message(previous, sessions)

	if system && notifier.app != nil {
		notifier.app.SendNotification(fyne.NewNotification(title, body))
	}
	if sound {
		// Beep can block on some platforms while the tone plays.
		go func() {
			if err := beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration); err != nil {
				notifier.logger.Warn("completion chime failed", zap.Error(err))
			}
		}()
	}
}

// Message builds the notification title and body for a completed mode.
func Message(previous model.Mode, sessions int) (string, string) {
	switch previous {
	case model.ModeShortBreak, model.ModeLongBreak:
		return "Break over", "Back to work: pick your next session."
	default:
		noun := "sessions"
		if sessions == 1 {
			noun = "session"
		}
		return "Work session complete",
			fmt.Sprintf("%d %s done today. Time for a break.", sessions, noun)
	}
}
