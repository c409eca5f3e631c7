// Package config loads game settings from defaults, an optional TOML file and
// LANE_RACER_* environment variables
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/lixenwraith/lane-racer/engine"
	"github.com/lixenwraith/lane-racer/input"
	"github.com/lixenwraith/lane-racer/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

const (
	envPrefix  = "LANE_RACER"
	configName = "lane-racer"
	configType = "toml"
)

// FrameSettings controls the frame driver cadence
type FrameSettings struct {
	Interval time.Duration `mapstructure:"interval"`
}

// InputSettings controls key handling
type InputSettings struct {
	ReleaseDelay time.Duration `mapstructure:"release_delay"`
}

// LogSettings controls the debug log file
type LogSettings struct {
	Debug bool   `mapstructure:"debug"`
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"`
}

// Settings is the complete runtime configuration
type Settings struct {
	Game  engine.Config         `mapstructure:"game"`
	Frame FrameSettings         `mapstructure:"frame"`
	Input InputSettings         `mapstructure:"input"`
	Keys  map[string]string     `mapstructure:"keys"`
	Audio parameter.AudioConfig `mapstructure:"audio"`
	Log   LogSettings           `mapstructure:"log"`

	// File is the config file that was read, empty when none was found
	File string `mapstructure:"-"`
}

// setDefaults registers every key so environment overrides reach Unmarshal
func setDefaults(v *viper.Viper) {
	game := engine.DefaultConfig()
	v.SetDefault("game.lane_width", game.LaneWidth)
	v.SetDefault("game.max_speed", game.MaxSpeed)
	v.SetDefault("game.acceleration", game.Acceleration)
	v.SetDefault("game.deceleration", game.Deceleration)
	v.SetDefault("game.steer_step", game.SteerStep)
	v.SetDefault("game.spawn_chance", game.SpawnChance)
	v.SetDefault("game.spawn_depth", game.SpawnDepth)
	v.SetDefault("game.passed_depth", game.PassedDepth)
	v.SetDefault("game.advance_factor", game.AdvanceFactor)
	v.SetDefault("game.seed", uint64(0))

	v.SetDefault("frame.interval", parameter.FrameInterval)
	v.SetDefault("input.release_delay", parameter.AccelerateReleaseDelay)
	v.SetDefault("keys", map[string]string{})

	a := parameter.DefaultAudioConfig()
	v.SetDefault("audio.enabled", a.Enabled)
	v.SetDefault("audio.master_volume", a.MasterVolume)
	v.SetDefault("audio.sample_rate", a.SampleRate)

	v.SetDefault("log.debug", false)
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.dir", "logs")
}

// Load builds Settings. An explicit path must exist; without one the default
// search locations are tried and a missing file is not an error
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	s.File = v.ConfigFileUsed()

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate rejects settings the game cannot run with
func (s *Settings) Validate() error {
	g := s.Game
	switch {
	case g.LaneWidth <= 0:
		return fmt.Errorf("%w: game.lane_width must be positive, got %v", ErrInvalid, g.LaneWidth)
	case g.MaxSpeed <= 0:
		return fmt.Errorf("%w: game.max_speed must be positive, got %v", ErrInvalid, g.MaxSpeed)
	case g.Acceleration <= 0:
		return fmt.Errorf("%w: game.acceleration must be positive, got %v", ErrInvalid, g.Acceleration)
	case g.Deceleration <= 0:
		return fmt.Errorf("%w: game.deceleration must be positive, got %v", ErrInvalid, g.Deceleration)
	case g.SteerStep <= 0:
		return fmt.Errorf("%w: game.steer_step must be positive, got %v", ErrInvalid, g.SteerStep)
	case g.AdvanceFactor <= 0:
		return fmt.Errorf("%w: game.advance_factor must be positive, got %v", ErrInvalid, g.AdvanceFactor)
	case g.SpawnChance < 0 || g.SpawnChance > 1:
		return fmt.Errorf("%w: game.spawn_chance must be within [0, 1], got %v", ErrInvalid, g.SpawnChance)
	case g.SpawnDepth >= g.PassedDepth:
		return fmt.Errorf("%w: game.spawn_depth %v must be below game.passed_depth %v", ErrInvalid, g.SpawnDepth, g.PassedDepth)
	case s.Frame.Interval < parameter.MinFrameInterval:
		return fmt.Errorf("%w: frame.interval must be at least %v, got %v", ErrInvalid, parameter.MinFrameInterval, s.Frame.Interval)
	case s.Input.ReleaseDelay <= 0:
		return fmt.Errorf("%w: input.release_delay must be positive, got %v", ErrInvalid, s.Input.ReleaseDelay)
	case s.Audio.MasterVolume < 0 || s.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: audio.master_volume must be within [0, 1], got %v", ErrInvalid, s.Audio.MasterVolume)
	case s.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: audio.sample_rate must be positive, got %v", ErrInvalid, s.Audio.SampleRate)
	}

	if _, err := zerolog.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	if _, err := s.KeyTable(); err != nil {
		return fmt.Errorf("%w: keys: %v", ErrInvalid, err)
	}
	return nil
}

// KeyTable returns the default bindings with the [keys] overrides applied
func (s *Settings) KeyTable() (*input.KeyTable, error) {
	table := input.DefaultKeyTable()
	if len(s.Keys) == 0 {
		return table, nil
	}
	over, err := input.LoadKeyConfig(s.Keys)
	if err != nil {
		return nil, err
	}
	table.Merge(over)
	return table, nil
}

// LogLevel returns the parsed log level, debug when unset
func (s *Settings) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(s.Log.Level)
	if err != nil || s.Log.Level == "" {
		return zerolog.DebugLevel
	}
	return lvl
}
