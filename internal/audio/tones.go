package audio

import (
	"time"

	"eyetimer/internal/core/model"
)

// Waveform is the oscillator shape of a note.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveTriangle
)

// Note is a single enveloped tone within a cue.
type Note struct {
	Frequency float64
	Waveform  Waveform
	Start     time.Duration
	Duration  time.Duration
	// Amplitude is the peak level at full volume. Voices of one profile sum to at most 1.
	Amplitude float64
}

// Profile is the set of notes played for one cue.
type Profile []Note

// Length returns the time from cue start until the last note ends.
func (profile Profile) Length() time.Duration {
	var length time.Duration
	for _, note := range profile {
		if end := note.Start + note.Duration; end > length {
			length = end
		}
	}
	return length
}

// ProfileFor returns the notes of a sound type.
func ProfileFor(sound model.SoundType) Profile {
	switch sound {
	case model.SoundDigital:
		return Profile{
			{Frequency: 800, Waveform: WaveSquare, Start: 0, Duration: 100 * time.Millisecond, Amplitude: 0.35},
			{Frequency: 800, Waveform: WaveSquare, Start: 150 * time.Millisecond, Duration: 100 * time.Millisecond, Amplitude: 0.35},
		}
	case model.SoundHarp:
		frequencies := []float64{440, 554, 659, 880}
		profile := make(Profile, 0, len(frequencies))
		for i, frequency := range frequencies {
			profile = append(profile, Note{
				Frequency: frequency,
				Waveform:  WaveTriangle,
				Start:     time.Duration(i) * 100 * time.Millisecond,
				Duration:  1500 * time.Millisecond,
				Amplitude: 0.25,
			})
		}
		return profile
	default:
		return Profile{
			{Frequency: 660, Waveform: WaveSine, Start: 0, Duration: 100 * time.Millisecond, Amplitude: 0.5},
			{Frequency: 880, Waveform: WaveSine, Start: 150 * time.Millisecond, Duration: 800 * time.Millisecond, Amplitude: 0.5},
		}
	}
}
