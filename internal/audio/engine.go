package audio

import (
	"sync"
	"time"

	"eyetimer/internal/core/model"
	"eyetimer/internal/logger"

	"github.com/faiface/beep"
)

// Scheduler runs fn after delay.
type Scheduler func(delay time.Duration, fn func())

func afterFunc(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}

// Engine synthesizes and plays the phase switch cues.
type Engine struct {
	mu         sync.Mutex
	volume     int
	sound      model.SoundType
	output     Output
	schedule   Scheduler
	sampleRate beep.SampleRate
}

// New creates an engine with default volume and sound type.
func New(output Output) *Engine {
	defaults := model.DefaultSettings()
	return &Engine{
		volume:     defaults.Volume,
		sound:      defaults.Sound,
		output:     output,
		schedule:   afterFunc,
		sampleRate: SampleRate,
	}
}

// SetScheduler replaces the cue scheduler.
func (engine *Engine) SetScheduler(schedule Scheduler) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.schedule = schedule
}

// SetVolume sets the output level, 0 to 100.
func (engine *Engine) SetVolume(volume int) {
	if volume < model.MinVolume {
		volume = model.MinVolume
	}
	if volume > model.MaxVolume {
		volume = model.MaxVolume
	}
	engine.mu.Lock()
	engine.volume = volume
	engine.mu.Unlock()
}

// SetType selects the cue timbre. Unknown types are ignored.
func (engine *Engine) SetType(sound model.SoundType) {
	if !sound.Valid() {
		return
	}
	engine.mu.Lock()
	engine.sound = sound
	engine.mu.Unlock()
}

// Apply copies the audio related fields of the settings.
func (engine *Engine) Apply(settings model.Settings) {
	engine.SetVolume(settings.Volume)
	engine.SetType(settings.Sound)
}

// Volume returns the current output level.
func (engine *Engine) Volume() int {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.volume
}

// Type returns the current cue timbre.
func (engine *Engine) Type() model.SoundType {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.sound
}

// Play schedules repeatCount cues spaced repeatDelay apart, the first one
// immediately. Volume and type are read when each cue fires.
func (engine *Engine) Play(repeatCount int, repeatDelay time.Duration) {
	if repeatCount <= 0 {
		return
	}
	if repeatDelay < 0 {
		repeatDelay = 0
	}
	engine.mu.Lock()
	schedule := engine.schedule
	engine.mu.Unlock()

	for i := 0; i < repeatCount; i++ {
		schedule(time.Duration(i)*repeatDelay, engine.playCue)
	}
}

func (engine *Engine) playCue() {
	engine.mu.Lock()
	output := engine.output
	volume := engine.volume
	sound := engine.sound
	sampleRate := engine.sampleRate
	engine.mu.Unlock()

	if output == nil {
		return
	}
	if err := output.Resume(); err != nil {
		logger.Warn("sound cue dropped", "sound", sound, "err", err)
		return
	}
	output.Play(NewCue(ProfileFor(sound), volume, sampleRate))
}
