package phasetimer

import "time"

// Phase is the current interval kind.
type Phase string

const (
	PhaseFocus Phase = "focus"
	PhaseBreak Phase = "break"
)

// Next returns the phase that follows.
func (phase Phase) Next() Phase {
	if phase == PhaseFocus {
		return PhaseBreak
	}
	return PhaseFocus
}

// EventType defines the type of timer event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventPhaseSwitch EventType = "phase_switch"
	EventTick        EventType = "tick"
)

// Event represents a timer update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}

// Snapshot is a copy of the timer state.
type Snapshot struct {
	Running   bool
	Paused    bool
	Phase     Phase
	Total     time.Duration
	StartedAt time.Time
	EndsAt    time.Time
	Remaining time.Duration
	// TimeLeft is Remaining rounded up to whole seconds.
	TimeLeft int
}

// RemainingAt derives the remaining time from the wall clock while running.
func (snapshot Snapshot) RemainingAt(now time.Time) time.Duration {
	if !snapshot.Running || snapshot.EndsAt.IsZero() {
		return snapshot.Remaining
	}
	remaining := snapshot.EndsAt.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CeilSeconds rounds remaining up to whole seconds; negative values give 0.
func CeilSeconds(remaining time.Duration) int {
	if remaining <= 0 {
		return 0
	}
	return int((remaining + time.Second - 1) / time.Second)
}
