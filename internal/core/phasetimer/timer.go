package phasetimer

import (
	"fmt"
	"sync"
	"time"

	"eyetimer/internal/core/model"
	"eyetimer/internal/logger"
)

// BreakNotificationTitle is the title of the break-start notification.
const BreakNotificationTitle = "Eye Break!"

// BreakNotificationBody returns the break-start notification text.
func BreakNotificationBody(breakDuration time.Duration) string {
	return fmt.Sprintf("Look 20 feet away for %d seconds.", int(breakDuration/time.Second))
}

// SoundPlayer plays the phase switch cue.
type SoundPlayer interface {
	Play(repeatCount int, repeatDelay time.Duration)
}

// Notifier shows desktop notifications.
type Notifier interface {
	Permitted() bool
	RequestPermission() error
	Notify(title, body string) error
}

// Config contains runtime options for Timer.
type Config struct {
	TickInterval time.Duration
	Clock        Clock
}

// Timer alternates focus and break phases, deriving all progress from
// wall-clock timestamps rather than from the number of ticks received.
type Timer struct {
	mu        sync.Mutex
	settings  model.Settings
	options   Config
	clock     Clock
	sound     SoundPlayer
	notifier  Notifier
	running   bool
	paused    bool
	phase     Phase
	total     time.Duration
	startedAt time.Time
	endsAt    time.Time
	remaining time.Duration
	events    []chan Event
	stopCh    chan struct{}
}

type switchAlert struct {
	phase    Phase
	settings model.Settings
}

// New creates a Timer in the focus phase. It does not start ticking.
func New(settings model.Settings, options Config) *Timer {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = SystemClock{}
	}

	timer := &Timer{
		settings: settings.Clamp(),
		options:  options,
		clock:    options.Clock,
	}
	timer.resetLocked(timer.clock.Now())
	return timer
}

// SetSoundPlayer injects the cue player.
func (timer *Timer) SetSoundPlayer(player SoundPlayer) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	timer.sound = player
}

// SetNotifier injects the desktop notifier.
func (timer *Timer) SetNotifier(notifier Notifier) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	timer.notifier = notifier
}

// Subscribe registers a new observer channel.
func (timer *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	timer.events = append(timer.events, ch)
	timer.mu.Unlock()
	return ch
}

// Snapshot returns a copy of the current state.
func (timer *Timer) Snapshot() Snapshot {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.snapshotLocked()
}

// Settings returns the settings in effect.
func (timer *Timer) Settings() model.Settings {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.settings
}

// Start arms the phase end from the remaining time and launches the ticker.
func (timer *Timer) Start() {
	timer.mu.Lock()
	if timer.running {
		timer.mu.Unlock()
		return
	}
	now := timer.clock.Now()
	timer.running = true
	timer.paused = false
	timer.startedAt = now
	timer.endsAt = now.Add(timer.remaining)
	stopCh := make(chan struct{})
	timer.stopCh = stopCh
	notifier := timer.notifier
	timer.emitLocked(EventStateChange, now)
	timer.mu.Unlock()

	if notifier != nil && !notifier.Permitted() {
		if err := notifier.RequestPermission(); err != nil {
			logger.Warn("notification permission request failed", "err", err)
		}
	}

	go timer.run(stopCh)
}

// Pause stops ticking and freezes the remaining time.
func (timer *Timer) Pause() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if !timer.running {
		return
	}
	now := timer.clock.Now()
	remaining := timer.endsAt.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	timer.remaining = remaining
	timer.running = false
	timer.paused = true
	timer.stopLoopLocked()
	timer.emitLocked(EventStateChange, now)
}

// Toggle pauses a running timer and starts a paused one.
func (timer *Timer) Toggle() {
	timer.mu.Lock()
	running := timer.running
	timer.mu.Unlock()

	if running {
		timer.Pause()
		return
	}
	timer.Start()
}

// Reset returns to the beginning of a focus phase without starting.
func (timer *Timer) Reset() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	now := timer.clock.Now()
	timer.resetLocked(now)
	timer.emitLocked(EventStateChange, now)
}

// UpdateSettings applies new settings and resets the timer.
func (timer *Timer) UpdateSettings(settings model.Settings) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	now := timer.clock.Now()
	timer.settings = settings.Clamp()
	timer.resetLocked(now)
	timer.emitLocked(EventStateChange, now)
}

// SetNotificationsEnabled toggles break notifications without resetting.
func (timer *Timer) SetNotificationsEnabled(enabled bool) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	timer.settings.NotificationsEnabled = enabled
}

// Skip switches to the next phase immediately.
func (timer *Timer) Skip() {
	timer.mu.Lock()
	now := timer.clock.Now()
	alert := timer.switchPhaseLocked(now)
	timer.mu.Unlock()

	timer.dispatch([]switchAlert{alert})
}

// Tick recomputes the remaining time from the wall clock. Phases that ended
// while no tick arrived are switched through one by one, each new phase
// starting where the previous one ended.
func (timer *Timer) Tick() {
	timer.mu.Lock()
	if !timer.running || timer.endsAt.IsZero() {
		timer.mu.Unlock()
		return
	}

	now := timer.clock.Now()
	remaining := timer.endsAt.Sub(now)
	var alerts []switchAlert
	for remaining <= 0 && timer.total > 0 {
		alerts = append(alerts, timer.switchPhaseLocked(timer.endsAt))
		remaining = timer.endsAt.Sub(now)
	}
	if remaining < 0 {
		remaining = 0
	}
	timer.remaining = remaining
	timer.emitLocked(EventTick, now)
	timer.mu.Unlock()

	timer.dispatch(alerts)
}

// Stop terminates the ticker and closes observers.
func (timer *Timer) Stop() {
	timer.mu.Lock()
	timer.running = false
	timer.stopLoopLocked()
	events := timer.events
	timer.events = nil
	timer.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (timer *Timer) run(stopCh <-chan struct{}) {
	ticker := time.NewTicker(timer.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			timer.Tick()
		}
	}
}

func (timer *Timer) resetLocked(now time.Time) {
	timer.stopLoopLocked()
	timer.running = false
	timer.paused = false
	timer.phase = PhaseFocus
	timer.total = timer.settings.Focus
	timer.remaining = timer.total
	timer.startedAt = now
	timer.endsAt = now.Add(timer.remaining)
}

func (timer *Timer) switchPhaseLocked(anchor time.Time) switchAlert {
	timer.phase = timer.phase.Next()
	timer.total = timer.durationLocked(timer.phase)
	timer.remaining = timer.total
	timer.startedAt = anchor
	timer.endsAt = anchor.Add(timer.total)

	logger.Debug("phase switch", "phase", timer.phase, "total", timer.total)
	timer.emitLocked(EventPhaseSwitch, anchor)
	return switchAlert{phase: timer.phase, settings: timer.settings}
}

func (timer *Timer) durationLocked(phase Phase) time.Duration {
	if phase == PhaseBreak {
		return timer.settings.Break
	}
	return timer.settings.Focus
}

func (timer *Timer) stopLoopLocked() {
	if timer.stopCh != nil {
		close(timer.stopCh)
		timer.stopCh = nil
	}
}

func (timer *Timer) dispatch(alerts []switchAlert) {
	if len(alerts) == 0 {
		return
	}
	timer.mu.Lock()
	sound := timer.sound
	notifier := timer.notifier
	timer.mu.Unlock()

	for _, alert := range alerts {
		if sound != nil {
			sound.Play(alert.settings.RepeatCount, alert.settings.RepeatDelay)
		}
		if alert.phase != PhaseBreak || !alert.settings.NotificationsEnabled || notifier == nil {
			continue
		}
		body := BreakNotificationBody(alert.settings.Break)
		if err := notifier.Notify(BreakNotificationTitle, body); err != nil {
			logger.Warn("break notification failed", "err", err)
		}
	}
}

func (timer *Timer) snapshotLocked() Snapshot {
	return Snapshot{
		Running:   timer.running,
		Paused:    timer.paused,
		Phase:     timer.phase,
		Total:     timer.total,
		StartedAt: timer.startedAt,
		EndsAt:    timer.endsAt,
		Remaining: timer.remaining,
		TimeLeft:  CeilSeconds(timer.remaining),
	}
}

func (timer *Timer) emitLocked(eventType EventType, at time.Time) {
	event := Event{
		Type:     eventType,
		Snapshot: timer.snapshotLocked(),
		At:       at,
	}
	for _, ch := range timer.events {
		select {
		case ch <- event:
		default:
		}
	}
}
