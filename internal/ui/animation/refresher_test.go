package animation

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func waitFor(t *testing.T, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestRefresherCallsFrames(t *testing.T) {
	var frames atomic.Int32
	refresher := New(Config{FrameInterval: time.Millisecond}, func() {
		frames.Add(1)
	})

	refresher.Start(context.Background())
	if !refresher.Running() {
		t.Fatal("Running() should be true after Start")
	}
	waitFor(t, func() bool { return frames.Load() >= 3 })

	refresher.Stop()
	if refresher.Running() {
		t.Fatal("Running() should be false after Stop")
	}
	stopped := frames.Load()
	time.Sleep(10 * time.Millisecond)
	if frames.Load() != stopped {
		t.Error("frames continued after Stop")
	}
}

func TestRefresherStopsWithContext(t *testing.T) {
	var frames atomic.Int32
	refresher := New(Config{FrameInterval: time.Millisecond}, func() {
		frames.Add(1)
	})
	ctx, cancel := context.WithCancel(context.Background())
	refresher.Start(ctx)
	waitFor(t, func() bool { return frames.Load() >= 1 })

	cancel()
	time.Sleep(10 * time.Millisecond)
	settled := frames.Load()
	time.Sleep(10 * time.Millisecond)
	if frames.Load() != settled {
		t.Error("frames continued after context cancel")
	}
	refresher.Stop()
}

func TestRefresherRestartReplacesLoop(t *testing.T) {
	refresher := New(Config{}, nil)
	if refresher.config.FrameInterval != DefaultFrameInterval {
		t.Errorf("FrameInterval = %v", refresher.config.FrameInterval)
	}
	refresher.Start(context.Background())
	refresher.Start(context.Background())
	refresher.Stop()
	refresher.Stop()
	if refresher.Running() {
		t.Error("Running() should be false")
	}
}

func TestSleepWithContext(t *testing.T) {
	if !sleepWithContext(context.Background(), time.Millisecond) {
		t.Error("sleep should complete")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if sleepWithContext(ctx, time.Hour) {
		t.Error("sleep should abort on cancelled context")
	}
}
