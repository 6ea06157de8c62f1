package preferences

import (
	"errors"
	"strconv"
	"strings"

	"eyetimer/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Callbacks connects the form to the rest of the app.
type Callbacks struct {
	// OnSave receives the edited settings, already clamped.
	OnSave func(model.Settings)
	// OnVolume is called while the volume slider moves.
	OnVolume func(int)
	// OnTestSound plays a preview with the values currently in the form.
	OnTestSound func(model.Settings)
}

// Window handles the settings form.
type Window struct {
	window    fyne.Window
	settings  model.Settings
	callbacks Callbacks

	focus       *widget.Entry
	breakSecs   *widget.Entry
	sound       *widget.Select
	volume      *widget.Slider
	volumeLabel *widget.Label
	repeatCount *widget.Entry
	repeatDelay *widget.Entry
}

// New creates the settings window.
func New(app fyne.App, settings model.Settings, callbacks Callbacks) *Window {
	prefs := &Window{
		window:    app.NewWindow("Eye Timer Settings"),
		callbacks: callbacks,
	}

	prefs.focus = widget.NewEntry()
	prefs.breakSecs = widget.NewEntry()
	prefs.repeatCount = widget.NewEntry()
	prefs.repeatDelay = widget.NewEntry()

	labels := make([]string, 0, len(model.SoundTypes))
	for _, sound := range model.SoundTypes {
		labels = append(labels, sound.Label())
	}
	prefs.sound = widget.NewSelect(labels, nil)

	prefs.volumeLabel = widget.NewLabel("")
	prefs.volume = widget.NewSlider(0, 100)
	prefs.volume.Step = 1
	prefs.volume.OnChanged = func(value float64) {
		prefs.volumeLabel.SetText(strconv.Itoa(int(value)) + "%")
		if prefs.callbacks.OnVolume != nil {
			prefs.callbacks.OnVolume(int(value))
		}
	}

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Focus time"), prefs.focus, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Break time"), prefs.breakSecs, widget.NewLabel("sec")),
		widget.NewLabelWithStyle("Sound", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.sound,
		container.NewBorder(nil, nil, widget.NewLabel("Volume"), prefs.volumeLabel, prefs.volume),
		container.NewHBox(widget.NewLabel("Repeat"), prefs.repeatCount, widget.NewLabel("times")),
		container.NewHBox(widget.NewLabel("Every"), prefs.repeatDelay, widget.NewLabel("sec")),
		widget.NewButton("Test sound", func() {
			if prefs.callbacks.OnTestSound != nil {
				prefs.callbacks.OnTestSound(prefs.formSettings())
			}
		}),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", func() {
		prefs.window.Hide()
		// Discard edits, including a live volume change.
		prefs.UpdateSettings(prefs.settings)
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	prefs.window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	prefs.window.Resize(fyne.NewSize(360, 420))
	prefs.window.SetCloseIntercept(cancelButton.OnTapped)

	prefs.UpdateSettings(settings)
	return prefs
}

// Show mirrors the last saved settings into the form and displays it.
func (prefs *Window) Show() {
	prefs.UpdateSettings(prefs.settings)
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces the form values.
func (prefs *Window) UpdateSettings(settings model.Settings) {
	prefs.settings = settings
	prefs.focus.SetText(strconv.Itoa(settings.FocusMinutes()))
	prefs.breakSecs.SetText(strconv.Itoa(settings.BreakSeconds()))
	prefs.sound.SetSelected(settings.Sound.Label())
	prefs.volume.SetValue(float64(settings.Volume))
	prefs.volumeLabel.SetText(strconv.Itoa(settings.Volume) + "%")
	prefs.repeatCount.SetText(strconv.Itoa(settings.RepeatCount))
	prefs.repeatDelay.SetText(strconv.Itoa(settings.RepeatDelaySeconds()))
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() model.Settings {
	return prefs.settings
}

func (prefs *Window) handleSave() {
	prefs.settings = prefs.formSettings()
	// Show the clamped values if the window is reopened.
	prefs.UpdateSettings(prefs.settings)
	if prefs.callbacks.OnSave != nil {
		prefs.callbacks.OnSave(prefs.settings)
	}
	prefs.window.Hide()
}

// formSettings reads the form over the saved settings. Unparseable entries
// keep the saved value; out of range entries are clamped.
func (prefs *Window) formSettings() model.Settings {
	settings := prefs.settings

	if minutes, ok := parseInt(prefs.focus.Text); ok {
		settings.Focus = model.FocusFromMinutes(minutes)
	}
	if seconds, ok := parseInt(prefs.breakSecs.Text); ok {
		settings.Break = model.BreakFromSeconds(seconds)
	}
	for _, sound := range model.SoundTypes {
		if sound.Label() == prefs.sound.Selected {
			settings.Sound = sound
		}
	}
	settings.Volume = int(prefs.volume.Value)
	if count, ok := parseInt(prefs.repeatCount.Text); ok {
		settings.RepeatCount = count
	}
	if seconds, ok := parseInt(prefs.repeatDelay.Text); ok {
		settings.RepeatDelay = model.RepeatDelayFromSeconds(seconds)
	}

	return settings.Clamp()
}

// parseInt keeps the saturated value for out of range input so the clamp
// picks the nearest bound.
func parseInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return parsed, true
}
