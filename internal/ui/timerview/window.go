package timerview

import (
	"time"

	"eyetimer/internal/core/model"
	"eyetimer/internal/core/phasetimer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Controller is the timer surface the view drives.
type Controller interface {
	Toggle()
	Reset()
	Skip()
	Snapshot() phasetimer.Snapshot
	Settings() model.Settings
}

// Callbacks are invoked for actions that change persisted settings.
type Callbacks struct {
	OnOpenSettings        func()
	OnThemeChange         func(model.Theme)
	OnNotificationsChange func(bool)
}

// View is the main timer window. It only mirrors timer state.
type View struct {
	app       fyne.App
	window    fyne.Window
	timer     Controller
	clock     phasetimer.Clock
	callbacks Callbacks

	heading   *widget.Label
	badge     *widget.Label
	countdown *widget.Label
	next      *widget.Label
	footer    *widget.Label
	progress  *widget.ProgressBar

	toggle      *widget.Button
	reset       *widget.Button
	skip        *widget.Button
	settingsBtn *widget.Button
	lightTheme  *widget.Check
	notify      *widget.Check

	// applying suppresses check callbacks while settings are mirrored into widgets.
	applying bool
}

// New builds the timer window. Call Show to display it.
func New(app fyne.App, timer Controller, clock phasetimer.Clock, callbacks Callbacks) *View {
	if clock == nil {
		clock = phasetimer.SystemClock{}
	}
	view := &View{
		app:       app,
		window:    app.NewWindow("Eye Timer"),
		timer:     timer,
		clock:     clock,
		callbacks: callbacks,
	}

	view.heading = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	view.badge = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	view.countdown = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true, Monospace: true})
	view.countdown.SizeName = theme.SizeNameHeadingText
	view.next = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	view.footer = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	view.footer.Wrapping = fyne.TextWrapWord

	view.progress = widget.NewProgressBar()
	view.progress.Min = 0
	view.progress.Max = 100
	view.progress.TextFormatter = func() string { return "" }

	view.toggle = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), func() {
		view.timer.Toggle()
		view.Refresh()
	})
	view.toggle.Importance = widget.HighImportance
	view.reset = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), func() {
		view.timer.Reset()
		view.Refresh()
	})
	view.skip = widget.NewButtonWithIcon("Skip", theme.MediaSkipNextIcon(), func() {
		view.timer.Skip()
		view.Refresh()
	})
	view.settingsBtn = widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		if view.callbacks.OnOpenSettings != nil {
			view.callbacks.OnOpenSettings()
		}
	})

	view.lightTheme = widget.NewCheck("Light theme", func(checked bool) {
		if view.applying {
			return
		}
		preference := model.ThemeDark
		if checked {
			preference = model.ThemeLight
		}
		view.ApplyTheme(preference)
		if view.callbacks.OnThemeChange != nil {
			view.callbacks.OnThemeChange(preference)
		}
	})
	view.notify = widget.NewCheck("Notifications", func(checked bool) {
		if view.applying {
			return
		}
		if view.callbacks.OnNotificationsChange != nil {
			view.callbacks.OnNotificationsChange(checked)
		}
	})

	header := container.NewBorder(nil, nil, nil, view.settingsBtn, view.heading)
	controls := container.NewGridWithColumns(3, view.toggle, view.reset, view.skip)
	toggles := container.NewHBox(layout.NewSpacer(), view.lightTheme, view.notify, layout.NewSpacer())

	view.window.SetContent(container.NewVBox(
		header,
		view.badge,
		view.countdown,
		view.progress,
		view.next,
		controls,
		toggles,
		widget.NewSeparator(),
		view.footer,
	))
	view.window.Resize(fyne.NewSize(360, 380))

	view.ApplySettings(timer.Settings())
	view.Render(timer.Snapshot())
	return view
}

// Window returns the underlying fyne window.
func (view *View) Window() fyne.Window {
	return view.window
}

// Show displays the window.
func (view *View) Show() {
	view.window.Show()
}

// Render draws a snapshot using its recorded remaining time.
// It must run on the fyne goroutine.
func (view *View) Render(snapshot phasetimer.Snapshot) {
	view.renderRemaining(snapshot, snapshot.Remaining)
}

// Refresh draws the live timer state, deriving remaining time from the clock.
// It must run on the fyne goroutine.
func (view *View) Refresh() {
	snapshot := view.timer.Snapshot()
	view.renderRemaining(snapshot, snapshot.RemainingAt(view.clock.Now()))
}

// ApplySettings mirrors the settings into the static texts and toggles.
func (view *View) ApplySettings(settings model.Settings) {
	view.applying = true
	defer func() { view.applying = false }()

	view.window.SetTitle(Title(settings))
	view.heading.SetText(Heading(settings))
	view.footer.SetText(Footer(settings))
	view.lightTheme.SetChecked(settings.Theme == model.ThemeLight)
	view.notify.SetChecked(settings.NotificationsEnabled)
	view.ApplyTheme(settings.Theme)
	view.Render(view.timer.Snapshot())
}

// ApplyTheme switches the app theme variant.
func (view *View) ApplyTheme(preference model.Theme) {
	view.app.Settings().SetTheme(NewTheme(preference))
}

// Watch renders every timer event until the channel closes.
func (view *View) Watch(events <-chan phasetimer.Event) {
	for event := range events {
		snapshot := event.Snapshot
		fyne.Do(func() {
			view.Render(snapshot)
		})
	}
}

func (view *View) renderRemaining(snapshot phasetimer.Snapshot, remaining time.Duration) {
	settings := view.timer.Settings()

	view.countdown.SetText(FormatCountdown(phasetimer.CeilSeconds(remaining)))
	view.progress.SetValue(ProgressPercent(remaining, snapshot.Total))
	view.badge.SetText(Badge(snapshot.Phase))
	view.next.SetText(NextText(snapshot.Phase, settings))

	view.toggle.SetText(ToggleLabel(snapshot))
	if snapshot.Running {
		view.toggle.SetIcon(theme.MediaPauseIcon())
	} else {
		view.toggle.SetIcon(theme.MediaPlayIcon())
	}
}
