package model

import "time"

// SoundType selects the timbre of the phase switch cue.
type SoundType string

const (
	SoundChime   SoundType = "chime"
	SoundDigital SoundType = "digital"
	SoundHarp    SoundType = "harp"
)

// SoundTypes lists the selectable cue types in display order.
var SoundTypes = []SoundType{SoundChime, SoundDigital, SoundHarp}

// Valid reports whether the sound type is known.
func (sound SoundType) Valid() bool {
	switch sound {
	case SoundChime, SoundDigital, SoundHarp:
		return true
	}
	return false
}

// Label returns the human readable name of the sound type.
func (sound SoundType) Label() string {
	switch sound {
	case SoundDigital:
		return "Digital Beep"
	case SoundHarp:
		return "Harp Flow"
	default:
		return "Gentle Chime"
	}
}

// Theme is the persisted colour scheme preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Bounds for user editable values.
const (
	MinFocus       = time.Minute
	MaxFocus       = 120 * time.Minute
	MinBreak       = 5 * time.Second
	MaxBreak       = 300 * time.Second
	MinVolume      = 0
	MaxVolume      = 100
	MinRepeatCount = 1
	MaxRepeatCount = 10
	MinRepeatDelay = time.Second
	MaxRepeatDelay = 10 * time.Second
)

// Settings defines the user preferences of a timer session.
type Settings struct {
	Focus                time.Duration
	Break                time.Duration
	Sound                SoundType
	Volume               int
	NotificationsEnabled bool
	RepeatCount          int
	RepeatDelay          time.Duration
	Theme                Theme
}

// DefaultSettings returns the 20-20-20 defaults.
func DefaultSettings() Settings {
	return Settings{
		Focus:                20 * time.Minute,
		Break:                20 * time.Second,
		Sound:                SoundChime,
		Volume:               50,
		NotificationsEnabled: true,
		RepeatCount:          1,
		RepeatDelay:          time.Second,
		Theme:                ThemeDark,
	}
}

// Clamp returns a copy with every field forced into its valid range.
// Durations are truncated to whole minutes (focus) or seconds (break, delay).
func (settings Settings) Clamp() Settings {
	defaults := DefaultSettings()

	settings.Focus = clampDuration(settings.Focus.Truncate(time.Minute), MinFocus, MaxFocus)
	settings.Break = clampDuration(settings.Break.Truncate(time.Second), MinBreak, MaxBreak)
	settings.RepeatDelay = clampDuration(settings.RepeatDelay.Truncate(time.Second), MinRepeatDelay, MaxRepeatDelay)
	settings.Volume = clampInt(settings.Volume, MinVolume, MaxVolume)
	settings.RepeatCount = clampInt(settings.RepeatCount, MinRepeatCount, MaxRepeatCount)

	if !settings.Sound.Valid() {
		settings.Sound = defaults.Sound
	}
	if settings.Theme != ThemeDark && settings.Theme != ThemeLight {
		settings.Theme = defaults.Theme
	}
	return settings
}

// WithForm copies the fields edited in the settings form from form.
// Theme and notification toggles are kept, since they are saved on their own.
func (settings Settings) WithForm(form Settings) Settings {
	settings.Focus = form.Focus
	settings.Break = form.Break
	settings.Sound = form.Sound
	settings.Volume = form.Volume
	settings.RepeatCount = form.RepeatCount
	settings.RepeatDelay = form.RepeatDelay
	return settings.Clamp()
}

// FocusMinutes returns the focus interval in whole minutes.
func (settings Settings) FocusMinutes() int {
	return int(settings.Focus / time.Minute)
}

// BreakSeconds returns the break interval in whole seconds.
func (settings Settings) BreakSeconds() int {
	return int(settings.Break / time.Second)
}

// RepeatDelaySeconds returns the cue spacing in whole seconds.
func (settings Settings) RepeatDelaySeconds() int {
	return int(settings.RepeatDelay / time.Second)
}

// FocusFromMinutes converts a minute count to a focus interval, clamping
// the count first so oversized input cannot overflow.
func FocusFromMinutes(minutes int) time.Duration {
	return fromUnits(minutes, time.Minute, MinFocus, MaxFocus)
}

// BreakFromSeconds converts a second count to a break interval.
func BreakFromSeconds(seconds int) time.Duration {
	return fromUnits(seconds, time.Second, MinBreak, MaxBreak)
}

// RepeatDelayFromSeconds converts a second count to a cue spacing.
func RepeatDelayFromSeconds(seconds int) time.Duration {
	return fromUnits(seconds, time.Second, MinRepeatDelay, MaxRepeatDelay)
}

func fromUnits(count int, unit, min, max time.Duration) time.Duration {
	return time.Duration(clampInt(count, int(min/unit), int(max/unit))) * unit
}

func clampDuration(value, min, max time.Duration) time.Duration {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
