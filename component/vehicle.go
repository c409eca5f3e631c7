package component

import (
	"github.com/lixenwraith/lane-racer/parameter"
	"github.com/lixenwraith/lane-racer/physics"
	"github.com/lixenwraith/lane-racer/vmath"
)

// Handling bounds the vehicle's mutations
type Handling struct {
	LaneWidth    float64
	MaxSpeed     float64
	Acceleration float64
	Deceleration float64
	SteerStep    float64
}

// VehicleComponent is the player's car
// Lane is bounded to [-LaneWidth, +LaneWidth], Speed to [0, MaxSpeed]
type VehicleComponent struct {
	Lane  float64
	Speed float64
}

// Accelerate raises speed by one increment, clamped at MaxSpeed
func (v *VehicleComponent) Accelerate(h Handling) {
	v.Speed = vmath.Clamp(v.Speed+h.Acceleration, 0, h.MaxSpeed)
}

// Decelerate lowers speed by one decrement, clamped at zero
func (v *VehicleComponent) Decelerate(h Handling) {
	v.Speed = vmath.Clamp(v.Speed-h.Deceleration, 0, h.MaxSpeed)
}

// SteerLeft shifts the vehicle one step left, stopping at the road edge
func (v *VehicleComponent) SteerLeft(h Handling) {
	v.Lane = vmath.Clamp(v.Lane-h.SteerStep, -h.LaneWidth, h.LaneWidth)
}

// SteerRight shifts the vehicle one step right, stopping at the road edge
func (v *VehicleComponent) SteerRight(h Handling) {
	v.Lane = vmath.Clamp(v.Lane+h.SteerStep, -h.LaneWidth, h.LaneWidth)
}

// Center returns the world-space centre; the vehicle sits at depth 0
func (v VehicleComponent) Center() vmath.Vec3F {
	return vmath.Vec3F{X: v.Lane, Y: parameter.GroundOffset, Z: 0}
}

// Box returns the vehicle's bounding box including wheel overhang
func (v VehicleComponent) Box() physics.Box {
	return physics.BoxAt(v.Center(), VehicleSize)
}

// VehicleSize is the full extent of the vehicle
var VehicleSize = vmath.Vec3F{
	X: parameter.VehicleWidth,
	Y: parameter.VehicleHeight,
	Z: parameter.VehicleLength,
}
