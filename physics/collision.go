// Package physics provides axis-aligned bounding boxes and overlap tests
package physics

import "github.com/lixenwraith/lane-racer/vmath"

// Box is an axis-aligned bounding box in world space
type Box struct {
	Min, Max vmath.Vec3F
}

// BoxAt builds a box centred on center with full extents size
func BoxAt(center, size vmath.Vec3F) Box {
	half := vmath.V3FScale(size, 0.5)
	return Box{
		Min: vmath.V3FSub(center, half),
		Max: vmath.V3FAdd(center, half),
	}
}

// Intersects reports whether a and b overlap on every axis
// Intervals are closed: boxes touching at a face count as intersecting
func Intersects(a, b Box) bool {
	return a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
		a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y &&
		a.Min.Z <= b.Max.Z && b.Min.Z <= a.Max.Z
}

// Intersects is the method form of Intersects
func (b Box) Intersects(other Box) bool {
	return Intersects(b, other)
}
