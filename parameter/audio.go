package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	AudioMasterVolume = 0.6
)

// Engine hum follows vehicle speed between these pitches
const (
	EngineHumIdleFreq = 55.0
	EngineHumMaxFreq  = 220.0
	EngineHumVolume   = 0.25
)

// Crash sound
const (
	CrashSoundDuration = 700 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 600 * time.Millisecond
)

// Start chime
const (
	StartSoundNote1Duration = 90 * time.Millisecond
	StartSoundNote2Duration = 240 * time.Millisecond
	StartSoundAttack        = 5 * time.Millisecond
	StartSoundNote1Release  = 40 * time.Millisecond
	StartSoundNote2Release  = 180 * time.Millisecond
)

// AudioConfig holds audio system settings
type AudioConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	MasterVolume float64 `mapstructure:"master_volume"`
	SampleRate   int     `mapstructure:"sample_rate"`
}

// DefaultAudioConfig returns the default audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: AudioMasterVolume,
		SampleRate:   AudioSampleRate,
	}
}
