package main

import (
	"fmt"
	"os"
	"strconv"

	"eyetimer/internal/core/model"
	"eyetimer/internal/logger"

	"github.com/charmbracelet/lipgloss"
)

var keyStyle = lipgloss.NewStyle().Bold(true).Width(16)

// SettingsShowCmd prints the settings used by tui and serve.
type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *appContext) error {
	settings, err := fileStore(ctx).Load(model.DefaultSettings())
	if err != nil {
		logger.Warn("load settings", "err", err)
	}

	rows := [][2]string{
		{"Focus", settings.Focus.String()},
		{"Break", settings.Break.String()},
		{"Sound", settings.Sound.Label()},
		{"Volume", strconv.Itoa(settings.Volume) + "%"},
		{"Repeat", fmt.Sprintf("%d every %s", settings.RepeatCount, settings.RepeatDelay)},
		{"Notifications", strconv.FormatBool(settings.NotificationsEnabled)},
		{"Theme", string(settings.Theme)},
	}
	for _, row := range rows {
		fmt.Fprintln(os.Stdout, keyStyle.Render(row[0])+row[1])
	}
	return err
}

// SettingsResetCmd restores the defaults for tui and serve.
type SettingsResetCmd struct{}

func (c *SettingsResetCmd) Run(ctx *appContext) error {
	if err := fileStore(ctx).Save(model.DefaultSettings()); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "Settings reset to defaults.")
	return nil
}

// autostartArgs start the desktop timer in the tray at login.
var autostartArgs = []string{"run", "--hidden"}

// AutostartEnableCmd registers the desktop timer to start at login.
type AutostartEnableCmd struct{}

func (c *AutostartEnableCmd) Run(ctx *appContext) error {
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	if err := ctx.Platform.EnableAutostart(appName, execPath, autostartArgs...); err != nil {
		return err
	}
	logger.Info("autostart enabled", "exec", execPath, "args", autostartArgs)
	fmt.Fprintln(os.Stdout, "Autostart enabled.")
	return nil
}

// AutostartDisableCmd removes the login entry.
type AutostartDisableCmd struct{}

func (c *AutostartDisableCmd) Run(ctx *appContext) error {
	if err := ctx.Platform.DisableAutostart(appName); err != nil {
		return err
	}
	logger.Info("autostart disabled")
	fmt.Fprintln(os.Stdout, "Autostart disabled.")
	return nil
}
