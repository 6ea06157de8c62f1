package timerview

import (
	"fmt"
	"time"

	"eyetimer/internal/core/model"
	"eyetimer/internal/core/phasetimer"
)

// FormatCountdown renders whole seconds as M:SS. Minutes are not capped.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// ProgressPercent returns remaining/total*100, within [0, 100].
func ProgressPercent(remaining, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	percent := float64(remaining) / float64(total) * 100
	switch {
	case percent < 0:
		return 0
	case percent > 100:
		return 100
	}
	return percent
}

// Heading returns the rule name, e.g. 20-20-20.
func Heading(settings model.Settings) string {
	return fmt.Sprintf("%d-%d-20", settings.FocusMinutes(), settings.BreakSeconds())
}

// Title returns the window title.
func Title(settings model.Settings) string {
	return Heading(settings) + " Eye Timer"
}

// Footer returns the rule explanation shown under the controls.
func Footer(settings model.Settings) string {
	return fmt.Sprintf("Look 20 feet away for %d seconds every %d minutes.", settings.BreakSeconds(), settings.FocusMinutes())
}

// Badge returns the status badge text for a phase.
func Badge(phase phasetimer.Phase) string {
	if phase == phasetimer.PhaseBreak {
		return "Look Away (20ft)"
	}
	return "Focus Time"
}

// NextText describes the phase that follows.
func NextText(phase phasetimer.Phase, settings model.Settings) string {
	if phase == phasetimer.PhaseBreak {
		return fmt.Sprintf("Next: %dm Focus", settings.FocusMinutes())
	}
	return fmt.Sprintf("Next: %ds Break", settings.BreakSeconds())
}

// ToggleLabel returns Pause while running, Resume after a pause until the
// next reset, and Start otherwise.
func ToggleLabel(snapshot phasetimer.Snapshot) string {
	switch {
	case snapshot.Running:
		return "Pause"
	case snapshot.Paused:
		return "Resume"
	default:
		return "Start"
	}
}

// StatusLine is the short status used by the tray menu.
func StatusLine(snapshot phasetimer.Snapshot, remaining time.Duration) string {
	countdown := FormatCountdown(phasetimer.CeilSeconds(remaining))
	status := "next break in " + countdown
	if snapshot.Phase == phasetimer.PhaseBreak {
		status = "break ends in " + countdown
	}
	if !snapshot.Running {
		status += " (paused)"
	}
	return status
}
