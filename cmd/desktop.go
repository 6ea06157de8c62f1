package main

import (
	"context"
	"errors"

	"eyetimer/internal/audio"
	"eyetimer/internal/core/model"
	"eyetimer/internal/core/phasetimer"
	"eyetimer/internal/logger"
	"eyetimer/internal/notify"
	"eyetimer/internal/platform"
	"eyetimer/internal/storage"
	"eyetimer/internal/ui/animation"
	"eyetimer/internal/ui/preferences"
	"eyetimer/internal/ui/timerview"
	"eyetimer/internal/ui/tray"
	"eyetimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

// RunCmd launches the desktop timer.
type RunCmd struct {
	Hidden bool `help:"Start in the system tray without showing the window."`
}

func (c *RunCmd) Run(ctx *appContext) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Warn("another instance is running", "err", err)
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.Icon())

	session := storage.NewSession(storage.NewStore(storage.NewPreferencesKV(fyneApp.Preferences())), model.DefaultSettings())
	settings := session.Settings()

	output := audio.NewSpeakerOutput(audio.SampleRate)
	defer output.Close()
	engine := audio.New(output)
	engine.Apply(settings)
	// The preview engine plays the form values without touching the saved type.
	preview := audio.New(output)

	timer := phasetimer.New(settings, phasetimer.Config{TickInterval: ctx.Config.Tick})
	timer.SetSoundPlayer(engine)
	timer.SetNotifier(notify.NewDesktop(fyneApp))

	var prefsWindow *preferences.Window
	view := timerview.New(fyneApp, timer, nil, timerview.Callbacks{
		OnOpenSettings: func() {
			prefsWindow.Show()
		},
		OnThemeChange: func(preference model.Theme) {
			_, _ = session.Update(func(current *model.Settings) {
				current.Theme = preference
			})
		},
		OnNotificationsChange: func(enabled bool) {
			_, _ = session.Update(func(current *model.Settings) {
				current.NotificationsEnabled = enabled
			})
			timer.SetNotificationsEnabled(enabled)
		},
	})

	prefsWindow = preferences.New(fyneApp, settings, preferences.Callbacks{
		OnSave: func(form model.Settings) {
			current := session.Settings()
			saved, _ := session.Update(func(next *model.Settings) {
				*next = current.WithForm(form)
			})
			engine.Apply(saved)
			timer.UpdateSettings(saved)
			view.ApplySettings(saved)
			logger.Info("settings saved", "focus", saved.Focus, "break", saved.Break, "sound", saved.Sound)
		},
		OnVolume: func(volume int) {
			engine.SetVolume(volume)
		},
		OnTestSound: func(form model.Settings) {
			preview.Apply(form)
			preview.Play(form.RepeatCount, form.RepeatDelay)
		},
	})

	quit := func() {
		timer.Stop()
		fyneApp.Quit()
	}

	window := view.Window()
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnShow:        view.Show,
			OnPreferences: prefsWindow.Show,
			OnToggle: func() {
				timer.Toggle()
				view.Refresh()
			},
			OnSkip: func() {
				timer.Skip()
				view.Refresh()
			},
			OnReset: func() {
				timer.Reset()
				view.Refresh()
			},
			OnQuit: quit,
		})
		desktopApp.SetSystemTrayIcon(resources.Icon())
		window.SetCloseIntercept(window.Hide)
		go watchTray(timer.Subscribe(8), trayManager)
	} else {
		logger.Info("system tray unsupported on this platform")
		window.SetMaster()
		c.Hidden = false
	}

	go view.Watch(timer.Subscribe(16))

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	refresher := animation.New(animation.DefaultConfig(), func() {
		fyne.Do(view.Refresh)
	})

	lifecycle := fyneApp.Lifecycle()
	lifecycle.SetOnEnteredForeground(func() {
		// Timers may have been throttled while in the background.
		timer.Tick()
		view.Refresh()
		refresher.Start(runCtx)
	})
	lifecycle.SetOnExitedForeground(refresher.Stop)
	lifecycle.SetOnStopped(func() {
		refresher.Stop()
		timer.Stop()
	})

	if !c.Hidden {
		view.Show()
	}
	fyneApp.Run()
	return nil
}

func watchTray(events <-chan phasetimer.Event, manager *tray.Manager) {
	for event := range events {
		snapshot := event.Snapshot
		fyne.Do(func() {
			manager.SetStatus(timerview.StatusLine(snapshot, snapshot.Remaining), timerview.ToggleLabel(snapshot))
		})
	}
}
