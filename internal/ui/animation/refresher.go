package animation

import (
	"context"
	"sync"
	"time"
)

// DefaultFrameInterval is roughly one display frame at 60 Hz.
const DefaultFrameInterval = 16 * time.Millisecond

// Config contains refresher timing values.
type Config struct {
	FrameInterval time.Duration
}

// DefaultConfig returns the frame timing used by the desktop window.
func DefaultConfig() Config {
	return Config{FrameInterval: DefaultFrameInterval}
}

// Refresher calls a frame function at a steady rate until stopped. It only
// smooths what is drawn between timer ticks and never drives phase changes.
type Refresher struct {
	mu     sync.Mutex
	config Config
	frame  func()
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a refresher that calls frame on every interval.
func New(config Config, frame func()) *Refresher {
	if config.FrameInterval <= 0 {
		config.FrameInterval = DefaultFrameInterval
	}
	return &Refresher{config: config, frame: frame}
}

// Start begins the frame loop, replacing any running one.
func (refresher *Refresher) Start(ctx context.Context) {
	refresher.mu.Lock()
	refresher.stopLocked()
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	refresher.cancel = cancel
	refresher.done = done
	refresher.mu.Unlock()

	go refresher.run(runCtx, done)
}

// Stop ends the frame loop and waits for the last frame to finish.
func (refresher *Refresher) Stop() {
	refresher.mu.Lock()
	done := refresher.stopLocked()
	refresher.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Running reports whether a frame loop is active.
func (refresher *Refresher) Running() bool {
	refresher.mu.Lock()
	defer refresher.mu.Unlock()
	return refresher.cancel != nil
}

func (refresher *Refresher) stopLocked() chan struct{} {
	if refresher.cancel == nil {
		return nil
	}
	refresher.cancel()
	done := refresher.done
	refresher.cancel = nil
	refresher.done = nil
	return done
}

func (refresher *Refresher) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	for {
		if refresher.frame != nil {
			refresher.frame()
		}
		if !sleepWithContext(ctx, refresher.config.FrameInterval) {
			return
		}
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
