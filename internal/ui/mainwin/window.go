// Package mainwin implements the countdown window. It renders timer
// state and forwards user input as commands; it owns no timer logic.
package mainwin

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomotick/internal/core/model"
)

// Callbacks defines command handlers for user input.
type Callbacks struct {
	OnStart      func()
	OnPause      func()
	OnReset      func()
	OnSwitchMode func(model.Mode)
}

// Window manages the countdown UI.
type Window struct {
	window       fyne.Window
	callbacks    Callbacks
	timeLabel    *canvas.Text
	modeButtons  map[model.Mode]*widget.Button
	startButton  *widget.Button
	resetButton  *widget.Button
	sessionLabel *widget.Label
	quoteLabel   *widget.Label
	running      bool
}

var (
	timeColorIdle    = color.NRGBA{R: 235, G: 235, B: 235, A: 255}
	timeColorRunning = color.NRGBA{R: 214, G: 60, B: 48, A: 255}
)

// New creates the countdown window.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("Pomotick")

	timeLabel := canvas.NewText("--:--", timeColorIdle)
	timeLabel.Alignment = fyne.TextAlignCenter
	timeLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timeLabel.TextSize = 64

	main := &Window{
		window:      window,
		callbacks:   callbacks,
		timeLabel:   timeLabel,
		modeButtons: map[model.Mode]*widget.Button{},
	}

	var modeRow []fyne.CanvasObject
	for _, mode := range []model.Mode{model.ModeWork, model.ModeShortBreak, model.ModeLongBreak} {
		mode := mode
		button := widget.NewButton(mode.Label(), func() {
			main.switchMode(mode)
		})
		main.modeButtons[mode] = button
		modeRow = append(modeRow, button)
	}

	main.startButton = widget.NewButton("Start", main.toggleStart)
	main.startButton.Importance = widget.HighImportance
	main.resetButton = widget.NewButton("Reset", func() {
		if main.callbacks.OnReset != nil {
			main.callbacks.OnReset()
		}
	})

	main.sessionLabel = widget.NewLabelWithStyle("Sessions completed: 0",
		fyne.TextAlignCenter, fyne.TextStyle{})
	main.quoteLabel = widget.NewLabelWithStyle("",
		fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	main.quoteLabel.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(
		container.NewHBox(layout.NewSpacer(), container.NewHBox(modeRow...), layout.NewSpacer()),
		timeLabel,
		container.NewHBox(layout.NewSpacer(), main.startButton, main.resetButton, layout.NewSpacer()),
		main.sessionLabel,
		main.quoteLabel,
	)
	window.SetContent(content)
	window.Resize(fyne.NewSize(380, 340))
	window.SetCloseIntercept(window.Hide)

	window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		if event.Name == fyne.KeySpace {
			main.toggleStart()
		}
	})
	window.Canvas().SetOnTypedRune(main.handleRune)

	main.highlightMode(model.ModeWork)
	return main
}

func (main *Window) toggleStart() {
	if main.running {
		if main.callbacks.OnPause != nil {
			main.callbacks.OnPause()
		}
		return
	}
	if main.callbacks.OnStart != nil {
		main.callbacks.OnStart()
	}
}

func (main *Window) handleRune(r rune) {
	switch r {
	case 'r', 'R':
		if main.callbacks.OnReset != nil {
			main.callbacks.OnReset()
		}
	case '1':
		main.switchMode(model.ModeWork)
	case '2':
		main.switchMode(model.ModeShortBreak)
	case '3':
		main.switchMode(model.ModeLongBreak)
	}
}

func (main *Window) switchMode(mode model.Mode) {
	if main.callbacks.OnSwitchMode != nil {
		main.callbacks.OnSwitchMode(mode)
	}
}

// SetRemaining updates the clock face and mode highlight.
func (main *Window) SetRemaining(remaining time.Duration, mode model.Mode) {
	main.timeLabel.Text = formatClock(remaining)
	main.timeLabel.Refresh()
	main.highlightMode(mode)
}

// SetRunning flips the start/pause button and clock colour.
func (main *Window) SetRunning(running bool) {
	main.running = running
	if running {
		main.startButton.SetText("Pause")
		main.timeLabel.Color = timeColorRunning
	} else {
		main.startButton.SetText("Start")
		main.timeLabel.Color = timeColorIdle
	}
	main.timeLabel.Refresh()
}

// SetSessions updates the completed session counter.
func (main *Window) SetSessions(count int) {
	main.sessionLabel.SetText(fmt.Sprintf("Sessions completed: %d", count))
}

// SetQuote replaces the quote line.
func (main *Window) SetQuote(quote string) {
	main.quoteLabel.SetText(quote)
}

// Show displays the window.
func (main *Window) Show() {
	main.window.Show()
	main.window.RequestFocus()
}

func (main *Window) highlightMode(active model.Mode) {
	for mode, button := range main.modeButtons {
		importance := widget.MediumImportance
		if mode == active {
			importance = widget.HighImportance
		}
		if button.Importance != importance {
			button.Importance = importance
			button.Refresh()
		}
	}
}

func formatClock(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
