package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	workEntry  *widget.Entry
	shortEntry *widget.Entry
	longEntry  *widget.Entry
	sound      *widget.Check
	system     *widget.Check
	autostart  *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomotick Settings")

	workEntry := widget.NewEntry()
	shortEntry := widget.NewEntry()
	longEntry := widget.NewEntry()

	sound := widget.NewCheck("Play chime on completion", nil)
	system := widget.NewCheck("Show system notification", nil)
	autostart := widget.NewCheck("Launch at login", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work"), workEntry, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short break"), shortEntry, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break"), longEntry, widget.NewLabel("min")),
		widget.NewLabelWithStyle("Notifications", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sound,
		system,
		widget.NewLabelWithStyle("System", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		autostart,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 380))

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		workEntry:  workEntry,
		shortEntry: shortEntry,
		longEntry:  longEntry,
		sound:      sound,
		system:     system,
		autostart:  autostart,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.workEntry.SetText(fmt.Sprintf("%d", int(settings.Work.Minutes())))
	prefs.shortEntry.SetText(fmt.Sprintf("%d", int(settings.ShortBreak.Minutes())))
	prefs.longEntry.SetText(fmt.Sprintf("%d", int(settings.LongBreak.Minutes())))
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.system.SetChecked(settings.Notifications)
	prefs.autostart.SetChecked(settings.Autostart)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.workEntry.Text); ok {
		settings.Work = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.shortEntry.Text); ok {
		settings.ShortBreak = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.longEntry.Text); ok {
		settings.LongBreak = time.Duration(minutes) * time.Minute
	}
	settings.SoundEnabled = prefs.sound.Checked
	settings.Notifications = prefs.system.Checked
	settings.Autostart = prefs.autostart.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
