package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// SampleRate is the rate cues are rendered and played at.
const SampleRate beep.SampleRate = 44100

const (
	attackTime = 50 * time.Millisecond
	// decayFloor is the envelope level reached at the end of a note.
	decayFloor = 0.01
)

// cueStreamer renders a profile sample by sample.
type cueStreamer struct {
	notes      Profile
	gain       float64
	sampleRate beep.SampleRate
	position   int
	length     int
}

// NewCue returns a streamer playing the profile once at the given volume (0-100).
func NewCue(profile Profile, volume int, sampleRate beep.SampleRate) beep.Streamer {
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	return &cueStreamer{
		notes:      profile,
		gain:       float64(volume) / 100,
		sampleRate: sampleRate,
		length:     sampleRate.N(profile.Length()),
	}
}

func (cue *cueStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if cue.position >= cue.length {
		return 0, false
	}
	for n < len(samples) && cue.position < cue.length {
		value := cue.sampleAt(cue.sampleRate.D(cue.position).Seconds())
		samples[n][0] = value
		samples[n][1] = value
		cue.position++
		n++
	}
	return n, true
}

func (cue *cueStreamer) Err() error {
	return nil
}

func (cue *cueStreamer) sampleAt(t float64) float64 {
	var value float64
	for _, note := range cue.notes {
		local := t - note.Start.Seconds()
		duration := note.Duration.Seconds()
		if local < 0 || local >= duration {
			continue
		}
		value += note.Amplitude * envelope(local, duration) * oscillate(note.Waveform, note.Frequency*local)
	}
	value *= cue.gain
	return math.Max(-1, math.Min(1, value))
}

// envelope ramps linearly to 1 over the attack, then decays exponentially to
// decayFloor at the end of the note.
func envelope(t, duration float64) float64 {
	attack := attackTime.Seconds()
	if attack >= duration {
		attack = duration / 2
	}
	if t < attack {
		return t / attack
	}
	progress := (t - attack) / (duration - attack)
	return math.Pow(decayFloor, progress)
}

// oscillate returns the waveform value at the given number of cycles.
func oscillate(waveform Waveform, cycles float64) float64 {
	phase := cycles - math.Floor(cycles)
	switch waveform {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
