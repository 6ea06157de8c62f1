package timerview

import (
	"testing"
	"time"

	"eyetimer/internal/core/model"
	"eyetimer/internal/core/phasetimer"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
)

type fakeClock struct {
	now time.Time
}

func (clock *fakeClock) Now() time.Time {
	return clock.now
}

type fakeController struct {
	settings model.Settings
	snapshot phasetimer.Snapshot
	toggles  int
	resets   int
	skips    int
}

func newFakeController(now time.Time) *fakeController {
	settings := model.DefaultSettings()
	return &fakeController{
		settings: settings,
		snapshot: phasetimer.Snapshot{
			Phase:     phasetimer.PhaseFocus,
			Total:     settings.Focus,
			Remaining: settings.Focus,
			TimeLeft:  int(settings.Focus / time.Second),
			StartedAt: now,
		},
	}
}

func (controller *fakeController) Toggle() {
	controller.toggles++
	controller.snapshot.Paused = controller.snapshot.Running
	controller.snapshot.Running = !controller.snapshot.Running
}

func (controller *fakeController) Reset() {
	controller.resets++
	controller.snapshot.Running = false
	controller.snapshot.Paused = false
	controller.snapshot.Remaining = controller.snapshot.Total
}

func (controller *fakeController) Skip() {
	controller.skips++
	controller.snapshot.Phase = controller.snapshot.Phase.Next()
	controller.snapshot.Total = controller.settings.Break
	controller.snapshot.Remaining = controller.settings.Break
}

func (controller *fakeController) Snapshot() phasetimer.Snapshot {
	return controller.snapshot
}

func (controller *fakeController) Settings() model.Settings {
	return controller.settings
}

func TestViewRendersInitialState(t *testing.T) {
	app := test.NewTempApp(t)
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	view := New(app, newFakeController(clock.now), clock, Callbacks{})

	if got := view.Window().Title(); got != "20-20-20 Eye Timer" {
		t.Errorf("Title() = %q", got)
	}
	if view.countdown.Text != "20:00" {
		t.Errorf("countdown = %q", view.countdown.Text)
	}
	if view.badge.Text != "Focus Time" {
		t.Errorf("badge = %q", view.badge.Text)
	}
	if view.next.Text != "Next: 20s Break" {
		t.Errorf("next = %q", view.next.Text)
	}
	if view.progress.Value != 100 {
		t.Errorf("progress = %v", view.progress.Value)
	}
	if view.toggle.Text != "Start" {
		t.Errorf("toggle = %q", view.toggle.Text)
	}
	if view.footer.Text != "Look 20 feet away for 20 seconds every 20 minutes." {
		t.Errorf("footer = %q", view.footer.Text)
	}
}

func TestViewButtons(t *testing.T) {
	app := test.NewTempApp(t)
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	controller := newFakeController(clock.now)
	view := New(app, controller, clock, Callbacks{})

	test.Tap(view.toggle)
	if controller.toggles != 1 || view.toggle.Text != "Pause" {
		t.Errorf("after toggle: toggles=%d label=%q", controller.toggles, view.toggle.Text)
	}

	test.Tap(view.skip)
	if controller.skips != 1 || view.badge.Text != "Look Away (20ft)" || view.countdown.Text != "0:20" {
		t.Errorf("after skip: badge=%q countdown=%q", view.badge.Text, view.countdown.Text)
	}

	test.Tap(view.reset)
	if controller.resets != 1 || view.toggle.Text != "Start" {
		t.Errorf("after reset: resets=%d label=%q", controller.resets, view.toggle.Text)
	}
}

func TestViewKeepsResumeAfterPausedSkip(t *testing.T) {
	app := test.NewTempApp(t)
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	controller := newFakeController(clock.now)
	view := New(app, controller, clock, Callbacks{})

	test.Tap(view.toggle)
	test.Tap(view.toggle)
	test.Tap(view.skip)
	if view.toggle.Text != "Resume" {
		t.Errorf("after pause and skip: label=%q, want Resume", view.toggle.Text)
	}

	test.Tap(view.reset)
	if view.toggle.Text != "Start" {
		t.Errorf("after reset: label=%q, want Start", view.toggle.Text)
	}
}

func TestViewRefreshUsesClock(t *testing.T) {
	app := test.NewTempApp(t)
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	controller := newFakeController(clock.now)
	controller.snapshot.Running = true
	controller.snapshot.EndsAt = clock.now.Add(controller.snapshot.Total)
	view := New(app, controller, clock, Callbacks{})

	clock.now = clock.now.Add(5*time.Minute + 500*time.Millisecond)
	view.Refresh()

	if view.countdown.Text != "15:00" {
		t.Errorf("countdown = %q, want 15:00", view.countdown.Text)
	}
	if view.progress.Value >= 75.01 || view.progress.Value <= 74.9 {
		t.Errorf("progress = %v, want about 75", view.progress.Value)
	}
}

func TestViewToggles(t *testing.T) {
	app := test.NewTempApp(t)
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	var themes []model.Theme
	var notifications []bool
	opened := 0
	view := New(app, newFakeController(clock.now), clock, Callbacks{
		OnOpenSettings:        func() { opened++ },
		OnThemeChange:         func(preference model.Theme) { themes = append(themes, preference) },
		OnNotificationsChange: func(enabled bool) { notifications = append(notifications, enabled) },
	})

	if len(themes) != 0 || len(notifications) != 0 {
		t.Fatal("mirroring settings must not fire callbacks")
	}

	test.Tap(view.lightTheme)
	if len(themes) != 1 || themes[0] != model.ThemeLight {
		t.Errorf("themes = %v", themes)
	}
	if app.Settings().Theme().Color(theme.ColorNameBackground, theme.VariantDark) !=
		theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantLight) {
		t.Error("light theme should be applied")
	}

	test.Tap(view.notify)
	if len(notifications) != 1 || notifications[0] {
		t.Errorf("notifications = %v", notifications)
	}

	test.Tap(view.settingsBtn)
	if opened != 1 {
		t.Errorf("settings opened %d times", opened)
	}
}

func TestViewApplySettings(t *testing.T) {
	app := test.NewTempApp(t)
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	controller := newFakeController(clock.now)
	view := New(app, controller, clock, Callbacks{})

	controller.settings.Focus = 30 * time.Minute
	controller.settings.Break = 45 * time.Second
	controller.settings.NotificationsEnabled = false
	view.ApplySettings(controller.settings)

	if view.heading.Text != "30-45-20" {
		t.Errorf("heading = %q", view.heading.Text)
	}
	if view.notify.Checked {
		t.Error("notification toggle should mirror settings")
	}
	if view.next.Text != "Next: 45s Break" {
		t.Errorf("next = %q", view.next.Text)
	}
}
