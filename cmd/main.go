package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"eyetimer/internal/config"
	"eyetimer/internal/logger"
	"eyetimer/internal/platform"

	"github.com/alecthomas/kong"
)

const (
	appName = "EyeTimer"
	appID   = "com.eyetimer.app"
	version = "v0.3.0"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Directory holding config.yaml, settings.yaml and logs." type:"path" placeholder:"DIR"`
	Debug   bool   `help:"Enable debug logging."`

	Run      RunCmd   `cmd:"" help:"Launch the desktop timer." default:"1"`
	Tui      TuiCmd   `cmd:"" help:"Run the timer in the terminal."`
	Serve    ServeCmd `cmd:"" help:"Run a headless timer with a status page."`
	Settings struct {
		Show  SettingsShowCmd  `cmd:"" help:"Print the saved settings." default:"1"`
		Reset SettingsResetCmd `cmd:"" help:"Restore the default settings."`
	} `cmd:"" help:"Inspect saved settings of the terminal and server modes."`
	Autostart struct {
		Enable  AutostartEnableCmd  `cmd:"" help:"Start the desktop timer at login."`
		Disable AutostartDisableCmd `cmd:"" help:"Stop starting the desktop timer at login."`
	} `cmd:"" help:"Manage start at login."`
}

// appContext is passed to every command.
type appContext struct {
	Config   config.Config
	Platform platform.Service
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("eyetimer"),
		kong.Description("20-20-20 eye break timer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": version},
	)

	service := platform.NewService()
	dir := CLI.Config
	if dir == "" {
		appDir, err := service.AppDir(appName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		dir = appDir
	}

	cfg, err := config.Load(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Debug = cfg.Debug || CLI.Debug

	command := ctx.Command()
	if err := logger.Init(logger.Config{
		Debug:    cfg.Debug,
		LogDir:   filepath.Join(dir, "logs"),
		Console:  strings.HasPrefix(command, "serve"),
		FileOnly: strings.HasPrefix(command, "tui"),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting", "command", command, "version", version, "dir", dir)

	if err := ctx.Run(&appContext{Config: cfg, Platform: service}); err != nil {
		// The tui logger never writes to stderr, so report there first.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Fatal("command failed", "command", command, "err", err)
	}
}
