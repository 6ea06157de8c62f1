package preferences

import (
	"testing"
	"time"

	"eyetimer/internal/core/model"

	"fyne.io/fyne/v2/test"
)

func TestFormMirrorsSettings(t *testing.T) {
	app := test.NewTempApp(t)
	settings := model.DefaultSettings()
	settings.Sound = model.SoundHarp
	settings.RepeatCount = 3

	prefs := New(app, settings, Callbacks{})
	if prefs.focus.Text != "20" || prefs.breakSecs.Text != "20" {
		t.Errorf("durations = %q, %q", prefs.focus.Text, prefs.breakSecs.Text)
	}
	if prefs.sound.Selected != "Harp Flow" {
		t.Errorf("sound = %q", prefs.sound.Selected)
	}
	if prefs.volume.Value != 50 || prefs.volumeLabel.Text != "50%" {
		t.Errorf("volume = %v, %q", prefs.volume.Value, prefs.volumeLabel.Text)
	}
	if prefs.repeatCount.Text != "3" || prefs.repeatDelay.Text != "1" {
		t.Errorf("repeat = %q, %q", prefs.repeatCount.Text, prefs.repeatDelay.Text)
	}
}

func TestSaveClampsAndReports(t *testing.T) {
	app := test.NewTempApp(t)
	var saved []model.Settings
	prefs := New(app, model.DefaultSettings(), Callbacks{
		OnSave: func(settings model.Settings) { saved = append(saved, settings) },
	})

	prefs.focus.SetText("500")
	prefs.breakSecs.SetText("2")
	prefs.repeatCount.SetText("abc")
	prefs.repeatDelay.SetText(" 4 ")
	prefs.sound.SetSelected("Digital Beep")
	prefs.handleSave()

	if len(saved) != 1 {
		t.Fatalf("OnSave called %d times", len(saved))
	}
	got := saved[0]
	if got.Focus != model.MaxFocus || got.Break != model.MinBreak {
		t.Errorf("durations = %v, %v", got.Focus, got.Break)
	}
	if got.RepeatCount != 1 || got.RepeatDelay != 4*time.Second {
		t.Errorf("repeat = %d, %v", got.RepeatCount, got.RepeatDelay)
	}
	if got.Sound != model.SoundDigital {
		t.Errorf("sound = %q", got.Sound)
	}
	if prefs.focus.Text != "120" || prefs.breakSecs.Text != "5" {
		t.Errorf("form should show clamped values, got %q, %q", prefs.focus.Text, prefs.breakSecs.Text)
	}
	if prefs.Settings() != got {
		t.Error("Settings() should return the saved value")
	}
}

func TestSaveClampsOversizedInput(t *testing.T) {
	tests := []struct {
		name        string
		focus       string
		breakSecs   string
		repeatDelay string
		want        [3]time.Duration
	}{
		{
			name:        "wraps past int64 when multiplied",
			focus:       "200000000",
			breakSecs:   "9223372036854775807",
			repeatDelay: "9223372036854775807",
			want:        [3]time.Duration{model.MaxFocus, model.MaxBreak, model.MaxRepeatDelay},
		},
		{
			name:        "beyond int range",
			focus:       "99999999999999999999999",
			breakSecs:   "-99999999999999999999999",
			repeatDelay: "99999999999999999999999",
			want:        [3]time.Duration{model.MaxFocus, model.MinBreak, model.MaxRepeatDelay},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := test.NewTempApp(t)
			var saved model.Settings
			prefs := New(app, model.DefaultSettings(), Callbacks{
				OnSave: func(settings model.Settings) { saved = settings },
			})

			prefs.focus.SetText(tc.focus)
			prefs.breakSecs.SetText(tc.breakSecs)
			prefs.repeatDelay.SetText(tc.repeatDelay)
			prefs.handleSave()

			got := [3]time.Duration{saved.Focus, saved.Break, saved.RepeatDelay}
			if got != tc.want {
				t.Errorf("saved = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestVolumeIsLive(t *testing.T) {
	app := test.NewTempApp(t)
	var volumes []int
	prefs := New(app, model.DefaultSettings(), Callbacks{
		OnVolume: func(volume int) { volumes = append(volumes, volume) },
	})
	volumes = nil

	prefs.volume.SetValue(80)
	if len(volumes) != 1 || volumes[0] != 80 {
		t.Errorf("volumes = %v", volumes)
	}
	if prefs.volumeLabel.Text != "80%" {
		t.Errorf("volume label = %q", prefs.volumeLabel.Text)
	}
}

func TestTestSoundUsesFormValues(t *testing.T) {
	app := test.NewTempApp(t)
	var previewed model.Settings
	prefs := New(app, model.DefaultSettings(), Callbacks{
		OnTestSound: func(settings model.Settings) { previewed = settings },
	})

	prefs.repeatCount.SetText("2")
	prefs.sound.SetSelected("Harp Flow")
	prefs.callbacks.OnTestSound(prefs.formSettings())

	if previewed.RepeatCount != 2 || previewed.Sound != model.SoundHarp {
		t.Errorf("previewed = %+v", previewed)
	}
	if prefs.Settings().RepeatCount != 1 {
		t.Error("a preview must not save the form")
	}
}
