package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// ErrOutputUnavailable indicates the audio device could not be opened.
var ErrOutputUnavailable = errors.New("audio output unavailable")

const speakerBuffer = 100 * time.Millisecond

// Output is an audio sink that may need to be resumed before use.
type Output interface {
	Resume() error
	Play(streamer beep.Streamer)
}

// SpeakerOutput plays through the system audio device. The device is opened
// lazily on the first Resume, and a failed open is retried on the next one.
type SpeakerOutput struct {
	mu         sync.Mutex
	sampleRate beep.SampleRate
	ready      bool
}

// NewSpeakerOutput creates an unopened speaker output.
func NewSpeakerOutput(sampleRate beep.SampleRate) *SpeakerOutput {
	return &SpeakerOutput{sampleRate: sampleRate}
}

// Resume opens the audio device if it is not open yet.
func (output *SpeakerOutput) Resume() error {
	output.mu.Lock()
	defer output.mu.Unlock()
	if output.ready {
		return nil
	}
	if err := speaker.Init(output.sampleRate, output.sampleRate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputUnavailable, err)
	}
	output.ready = true
	return nil
}

// Play mixes the streamer into the device output.
func (output *SpeakerOutput) Play(streamer beep.Streamer) {
	speaker.Play(streamer)
}

// Close releases the audio device.
func (output *SpeakerOutput) Close() {
	output.mu.Lock()
	defer output.mu.Unlock()
	if !output.ready {
		return
	}
	speaker.Close()
	output.ready = false
}
