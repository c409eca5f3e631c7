package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/lane-racer/engine"
	"github.com/lixenwraith/lane-racer/event"
	"github.com/lixenwraith/lane-racer/parameter"
)

// SoundManager turns frames into game audio
// It implements engine.Presenter; until Initialize succeeds every call is a no-op
type SoundManager struct {
	mu      sync.Mutex
	cfg     *parameter.AudioConfig
	mixer   *beep.Mixer
	hum     *EngineHum
	humCtrl *beep.Ctrl

	initialized bool
	// speakerOwned is set when the mixer is playing through the speaker,
	// which then requires speaker.Lock around mixer changes
	speakerOwned bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *parameter.AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = parameter.DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio device; disabled audio returns nil without
// touching the device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.attach(true)
	return nil
}

// attach installs the hum into the mixer and marks the manager live
func (sm *SoundManager) attach(speakerOwned bool) {
	sm.hum = NewEngineHum(beep.SampleRate(sm.cfg.SampleRate))
	sm.humCtrl = &beep.Ctrl{
		Streamer: newVolume(sm.hum, parameter.EngineHumVolume*sm.cfg.MasterVolume),
		Paused:   true,
	}
	sm.mixer.Add(sm.humCtrl)
	sm.initialized = true
	sm.speakerOwned = speakerOwned
}

// Initialized reports whether audio output is live
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Present updates the hum from the snapshot and fires one-shot effects for the
// frame's events
func (sm *SoundManager) Present(frame engine.Frame) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	snap := frame.Snapshot
	sm.hum.SetFrequency(HumFrequency(snap.Speed, snap.MaxSpeed))

	sm.withSpeaker(func() {
		sm.humCtrl.Paused = frame.Paused || snap.State == engine.StateOver

		for _, ev := range frame.Events {
			switch ev.Type {
			case event.EventGameOver:
				sm.mixer.Add(GetSoundEffect(SoundCrash, sm.cfg))
			case event.EventSessionReset:
				sm.mixer.Add(GetSoundEffect(SoundStart, sm.cfg))
			}
		}
	})
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.withSpeaker(func() {
		sm.humCtrl.Paused = true
		sm.mixer.Clear()
	})

	// beep has no per-mixer close; clearing leaves the speaker silent
	sm.initialized = false
}

func (sm *SoundManager) withSpeaker(fn func()) {
	if sm.speakerOwned {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}
