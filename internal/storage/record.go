package storage

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"eyetimer/internal/core/model"
)

// record is the persisted form. Numbers are stored as strings, focus in minutes.
type record struct {
	Focus                string `json:"focus"`
	Break                string `json:"break"`
	Sound                string `json:"sound"`
	Volume               string `json:"volume"`
	RepeatCount          string `json:"repeatCount"`
	RepeatDelay          string `json:"repeatDelay"`
	Theme                string `json:"theme"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
}

func newRecord(settings model.Settings) record {
	return record{
		Focus:                strconv.Itoa(settings.FocusMinutes()),
		Break:                strconv.Itoa(settings.BreakSeconds()),
		Sound:                string(settings.Sound),
		Volume:               strconv.Itoa(settings.Volume),
		RepeatCount:          strconv.Itoa(settings.RepeatCount),
		RepeatDelay:          strconv.Itoa(settings.RepeatDelaySeconds()),
		Theme:                string(settings.Theme),
		NotificationsEnabled: settings.NotificationsEnabled,
	}
}

// applyRecord overlays every present, parseable field of fields onto settings.
func applyRecord(settings model.Settings, fields map[string]json.RawMessage) model.Settings {
	if minutes, ok := intField(fields, "focus"); ok {
		settings.Focus = model.FocusFromMinutes(minutes)
	}
	if seconds, ok := intField(fields, "break"); ok {
		settings.Break = model.BreakFromSeconds(seconds)
	}
	if sound, ok := stringField(fields, "sound"); ok && model.SoundType(sound).Valid() {
		settings.Sound = model.SoundType(sound)
	}
	if volume, ok := intField(fields, "volume"); ok {
		settings.Volume = volume
	}
	if count, ok := intField(fields, "repeatCount"); ok {
		settings.RepeatCount = count
	}
	if seconds, ok := intField(fields, "repeatDelay"); ok {
		settings.RepeatDelay = model.RepeatDelayFromSeconds(seconds)
	}
	if theme, ok := stringField(fields, "theme"); ok {
		switch model.Theme(theme) {
		case model.ThemeDark, model.ThemeLight:
			settings.Theme = model.Theme(theme)
		}
	}
	if enabled, ok := boolField(fields, "notificationsEnabled"); ok {
		settings.NotificationsEnabled = enabled
	}
	return settings.Clamp()
}

func stringField(fields map[string]json.RawMessage, name string) (string, bool) {
	raw, ok := fields[name]
	if !ok || isNull(raw) {
		return "", false
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}
	return value, true
}

// intField accepts "15", 15 and 15.0. Out-of-range numbers saturate so the
// caller's clamp lands them on the nearest bound.
func intField(fields map[string]json.RawMessage, name string) (int, bool) {
	raw, ok := fields[name]
	if !ok || isNull(raw) {
		return 0, false
	}
	if text, ok := stringField(fields, name); ok {
		return parseInt(text)
	}
	var number float64
	if err := json.Unmarshal(raw, &number); err != nil {
		return 0, false
	}
	return saturateFloat(number)
}

// parseInt is strconv.Atoi keeping the saturated value on range errors.
func parseInt(text string) (int, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return value, true
}

func saturateFloat(number float64) (int, bool) {
	switch {
	case math.IsNaN(number) || math.IsInf(number, 0):
		return 0, false
	case number >= math.MaxInt32:
		return math.MaxInt32, true
	case number <= math.MinInt32:
		return math.MinInt32, true
	}
	return int(number), true
}

func boolField(fields map[string]json.RawMessage, name string) (bool, bool) {
	raw, ok := fields[name]
	if !ok || isNull(raw) {
		return false, false
	}
	var value bool
	if err := json.Unmarshal(raw, &value); err == nil {
		return value, true
	}
	if text, ok := stringField(fields, name); ok {
		parsed, err := strconv.ParseBool(strings.TrimSpace(text))
		if err == nil {
			return parsed, true
		}
	}
	return false, false
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}
