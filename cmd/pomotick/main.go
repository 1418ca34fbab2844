package main

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"go.uber.org/zap"

	"pomotick/internal/core/model"
	"pomotick/internal/core/timer"
	"pomotick/internal/notify"
	"pomotick/internal/platform"
	"pomotick/internal/quotes"
	"pomotick/internal/storage"
	"pomotick/internal/ui/mainwin"
	"pomotick/internal/ui/preferences"
	"pomotick/internal/ui/tray"
	"pomotick/resources"
)

const (
	appName    = "Pomotick"
	configName = "pomotick"
)

// controller owns the timer core. Durations are immutable per core, so
// applying new settings swaps in a fresh core behind one lock.
type controller struct {
	mu     sync.Mutex
	logger *zap.Logger
	handle func(timer.Event)
	core   *timer.Timer
}

func newController(config model.TimerConfig, logger *zap.Logger, handle func(timer.Event)) *controller {
	control := &controller{logger: logger, handle: handle}
	control.rebuild(config)
	return control
}

func (control *controller) rebuild(config model.TimerConfig) {
	core := timer.New(config, timer.Options{Logger: control.logger})
	events := core.Subscribe(8)

	control.mu.Lock()
	old := control.core
	control.core = core
	control.mu.Unlock()

	if old != nil {
		old.Close()
	}
	go func() {
		for event := range events {
			control.handle(event)
		}
	}()
}

func (control *controller) current() *timer.Timer {
	control.mu.Lock()
	defer control.mu.Unlock()
	return control.core
}

func (control *controller) start()                     { control.current().Start() }
func (control *controller) pause()                     { control.current().Pause() }
func (control *controller) reset()                     { control.current().Reset() }
func (control *controller) switchMode(mode model.Mode) { control.current().SwitchMode(mode) }
func (control *controller) snapshot() timer.Snapshot   { return control.current().Snapshot() }
func (control *controller) close()                     { control.current().Close() }

func main() {
	logger := zap.Must(zap.NewDevelopment())
	defer func() { _ = logger.Sync() }()

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		logger.Warn("another instance is already running")
		return
	}
	defer func() { _ = guard.Release() }()

	settings, err := storage.LoadSettings(configName)
	if err != nil {
		logger.Warn("loading settings failed, using defaults", zap.Error(err))
	}

	fyneApp := app.NewWithID("com.pomotick.app")
	activeIcon := resources.MustLogo("active.png")
	pausedIcon := resources.MustLogo("paused.png")
	fyneApp.SetIcon(activeIcon)

	rotation := quotes.NewRotation()
	notifier := notify.New(fyneApp, logger)
	notifier.SetEnabled(settings.SoundEnabled, settings.Notifications)

	var (
		mainWindow  *mainwin.Window
		trayManager *tray.Manager
	)

	desktopApp, hasTray := fyneApp.(desktop.App)
	if !hasTray {
		logger.Info("system tray unsupported on this platform")
	}

	handleEvent := func(event timer.Event) {
		fyne.Do(func() {
			switch event.Type {
			case timer.EventTick:
				mainWindow.SetRemaining(event.Remaining, event.Mode)
				mainWindow.SetSessions(event.Sessions)
				if trayManager != nil {
					trayManager.SetStatus(statusLine(event.Mode, event.Remaining))
				}
			case timer.EventRunningChanged:
				mainWindow.SetRunning(event.Running)
				if trayManager != nil {
					trayManager.SetRunning(event.Running)
					if event.Running {
						desktopApp.SetSystemTrayIcon(activeIcon)
					} else {
						desktopApp.SetSystemTrayIcon(pausedIcon)
					}
				}
			case timer.EventCompleted:
				notifier.Completed(event.PreviousMode, event.Sessions)
				mainWindow.SetQuote(rotation.Next())
			}
		})
	}

	control := newController(settings.TimerConfig(), logger, handleEvent)

	mainWindow = mainwin.New(fyneApp, mainwin.Callbacks{
		OnStart:      control.start,
		OnPause:      control.pause,
		OnReset:      control.reset,
		OnSwitchMode: control.switchMode,
	})

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if err := storage.SaveSettings(configName, updated); err != nil {
			logger.Warn("saving settings failed", zap.Error(err))
		}
		notifier.SetEnabled(updated.SoundEnabled, updated.Notifications)
		if updated.Autostart != settings.Autostart {
			if err := platform.SetAutostart(appName, updated.Autostart); err != nil {
				logger.Warn("updating autostart failed", zap.Error(err))
			}
		}
		durationsChanged := updated.TimerConfig() != settings.TimerConfig()
		settings = updated
		if durationsChanged {
			control.rebuild(updated.TimerConfig())
			refresh(mainWindow, trayManager, control.snapshot())
		}
	})

	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: mainWindow.Show,
			OnToggleStart: func() {
				if control.snapshot().Running {
					control.pause()
				} else {
					control.start()
				}
			},
			OnReset:       control.reset,
			OnSwitchMode:  control.switchMode,
			OnPreferences: prefsWindow.Show,
			OnQuit: func() {
				control.close()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(pausedIcon)
	}

	mainWindow.SetQuote(rotation.Current())
	refresh(mainWindow, trayManager, control.snapshot())

	mainWindow.Show()
	fyneApp.Run()
}

func refresh(mainWindow *mainwin.Window, trayManager *tray.Manager, snap timer.Snapshot) {
	mainWindow.SetRemaining(snap.Remaining, snap.Mode)
	mainWindow.SetRunning(snap.Running)
	mainWindow.SetSessions(snap.Sessions)
	if trayManager != nil {
		trayManager.SetStatus(statusLine(snap.Mode, snap.Remaining))
		trayManager.SetRunning(snap.Running)
	}
}

func statusLine(mode model.Mode, remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	return fmt.Sprintf("%s %02d:%02d", mode.Label(), seconds/60, seconds%60)
}
