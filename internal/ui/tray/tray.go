package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"pomotick/internal/core/model"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggleStart func()
	OnReset       func()
	OnSwitchMode  func(model.Mode)
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	startItem   *fyne.MenuItem
	modeItem    *fyne.MenuItem
	callbacks   Callbacks
	running     bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: ready", nil)
	manager.statusItem.Disabled = true

	manager.startItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggleStart != nil {
			manager.callbacks.OnToggleStart()
		}
	})

	manager.modeItem = fyne.NewMenuItem("Switch mode", nil)
	manager.modeItem.ChildMenu = fyne.NewMenu("",
		fyne.NewMenuItem("Work", func() { manager.switchMode(model.ModeWork) }),
		fyne.NewMenuItem("Short break", func() { manager.switchMode(model.ModeShortBreak) }),
		fyne.NewMenuItem("Long break", func() { manager.switchMode(model.ModeLongBreak) }),
	)

	manager.app.SetSystemTrayMenu(manager.buildMenu())
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetRunning updates the start/pause item.
func (manager *Manager) SetRunning(running bool) {
	manager.running = running
	if running {
		manager.startItem.Label = "Pause"
	} else {
		manager.startItem.Label = "Start"
	}
	manager.refreshMenu()
}

func (manager *Manager) switchMode(mode model.Mode) {
	if manager.callbacks.OnSwitchMode != nil {
		manager.callbacks.OnSwitchMode(mode)
	}
}

func (manager *Manager) buildMenu() *fyne.Menu {
	return fyne.NewMenu("Pomotick",
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.startItem,
		fyne.NewMenuItem("Reset", func() {
			if manager.callbacks.OnReset != nil {
				manager.callbacks.OnReset()
			}
		}),
		manager.modeItem,
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.buildMenu())
	}
}
