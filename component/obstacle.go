package component

import (
	"github.com/lixenwraith/lane-racer/parameter"
	"github.com/lixenwraith/lane-racer/physics"
	"github.com/lixenwraith/lane-racer/vmath"
)

// ObstacleComponent is a block sitting in one lane
// Depth grows toward the viewer; the vehicle sits at depth 0
type ObstacleComponent struct {
	ID    uint64
	Lane  float64
	Depth float64
}

// Center returns the world-space centre of the obstacle
func (o ObstacleComponent) Center() vmath.Vec3F {
	return vmath.Vec3F{X: o.Lane, Y: parameter.GroundOffset, Z: o.Depth}
}

// Box returns the obstacle's bounding box
func (o ObstacleComponent) Box() physics.Box {
	return physics.BoxAt(o.Center(), ObstacleSize)
}

// ObstacleSize is the full extent of an obstacle
var ObstacleSize = vmath.Vec3F{
	X: parameter.ObstacleWidth,
	Y: parameter.ObstacleHeight,
	Z: parameter.ObstacleLength,
}
