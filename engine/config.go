package engine

import (
	"github.com/lixenwraith/lane-racer/component"
	"github.com/lixenwraith/lane-racer/parameter"
)

// Config holds the session tuning; zero Seed picks a time-based seed
type Config struct {
	LaneWidth     float64 `mapstructure:"lane_width"`
	MaxSpeed      float64 `mapstructure:"max_speed"`
	Acceleration  float64 `mapstructure:"acceleration"`
	Deceleration  float64 `mapstructure:"deceleration"`
	SteerStep     float64 `mapstructure:"steer_step"`
	SpawnChance   float64 `mapstructure:"spawn_chance"`
	SpawnDepth    float64 `mapstructure:"spawn_depth"`
	PassedDepth   float64 `mapstructure:"passed_depth"`
	AdvanceFactor float64 `mapstructure:"advance_factor"`
	Seed          uint64  `mapstructure:"seed"`
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		LaneWidth:     parameter.LaneWidth,
		MaxSpeed:      parameter.MaxSpeed,
		Acceleration:  parameter.Acceleration,
		Deceleration:  parameter.Deceleration,
		SteerStep:     parameter.SteerStep,
		SpawnChance:   parameter.SpawnChance,
		SpawnDepth:    parameter.SpawnDepth,
		PassedDepth:   parameter.PassedDepth,
		AdvanceFactor: parameter.AdvanceFactor,
	}
}

// Handling extracts the vehicle bounds
func (c Config) Handling() component.Handling {
	return component.Handling{
		LaneWidth:    c.LaneWidth,
		MaxSpeed:     c.MaxSpeed,
		Acceleration: c.Acceleration,
		Deceleration: c.Deceleration,
		SteerStep:    c.SteerStep,
	}
}
