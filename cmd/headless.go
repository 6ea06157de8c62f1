package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"eyetimer/internal/audio"
	"eyetimer/internal/core/model"
	"eyetimer/internal/core/phasetimer"
	"eyetimer/internal/logger"
	"eyetimer/internal/notify"
	"eyetimer/internal/storage"
	"eyetimer/internal/ui/terminal"
	"eyetimer/internal/web"
	"eyetimer/resources"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// TuiCmd runs the timer in the terminal.
type TuiCmd struct {
	Start bool `help:"Start the focus phase immediately."`
	Mute  bool `help:"Do not play the phase switch sound."`
}

func (c *TuiCmd) Run(ctx *appContext) error {
	timer, closeTimer := newHeadlessTimer(ctx, !c.Mute)
	defer closeTimer()

	if c.Start {
		timer.Start()
	}
	if err := terminal.Run(timer, nil); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}

// ServeCmd runs a headless timer behind an HTTP status page.
type ServeCmd struct {
	Host  string `help:"Listen host, overrides HOST."`
	Port  int    `help:"Listen port, overrides PORT."`
	Start bool   `help:"Start the focus phase immediately." default:"true" negatable:""`
	Sound bool   `help:"Play the phase switch sound on this machine."`
}

func (c *ServeCmd) Run(ctx *appContext) error {
	cfg := ctx.Config
	if c.Host != "" {
		cfg.Host = c.Host
	}
	if c.Port != 0 {
		cfg.Port = c.Port
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = logger.Writer()
	gin.DefaultErrorWriter = logger.Writer()

	timer, closeTimer := newHeadlessTimer(ctx, c.Sound)
	defer closeTimer()
	if c.Start {
		timer.Start()
	}

	handler := web.NewHandler(timer, nil, resources.IconPNG())
	srv := &web.Server{}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run(cfg.Addr(), handler.InitRoutes())
	}()
	logger.Info("serving status page", "addr", cfg.Addr())

	signalCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-signalCtx.Done():
	}

	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

// newHeadlessTimer builds a timer over the YAML settings file with
// notifications written to the log.
func newHeadlessTimer(ctx *appContext, sound bool) (*phasetimer.Timer, func()) {
	session := storage.NewSession(fileStore(ctx), model.DefaultSettings())
	settings := session.Settings()

	timer := phasetimer.New(settings, phasetimer.Config{TickInterval: ctx.Config.Tick})
	timer.SetNotifier(&notify.Log{})

	var output *audio.SpeakerOutput
	if sound {
		output = audio.NewSpeakerOutput(audio.SampleRate)
		engine := audio.New(output)
		engine.Apply(settings)
		timer.SetSoundPlayer(engine)
	}

	return timer, func() {
		timer.Stop()
		if output != nil {
			output.Close()
		}
	}
}

func fileStore(ctx *appContext) *storage.Store {
	return storage.NewStore(storage.NewFileKV(storage.DefaultFilePath(ctx.Config.Dir)))
}
