package engine

import (
	"math"

	"github.com/lixenwraith/lane-racer/component"
)

// Snapshot is the read-only view handed to the presentation layer after each tick
type Snapshot struct {
	State        State
	Score        int64
	Speed        float64
	DisplaySpeed int
	MaxSpeed     float64
	VehicleLane  float64
	LaneWidth    float64
	Obstacles    []component.ObstacleComponent
	Tick         uint64
	Distance     float64
}

// Snapshot captures the current session state
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:        s.state,
		Score:        s.score,
		Speed:        s.vehicle.Speed,
		DisplaySpeed: int(math.Floor(s.vehicle.Speed)),
		MaxSpeed:     s.cfg.MaxSpeed,
		VehicleLane:  s.vehicle.Lane,
		LaneWidth:    s.cfg.LaneWidth,
		Obstacles:    s.registry.All(),
		Tick:         s.tick,
		Distance:     s.distance,
	}
}
