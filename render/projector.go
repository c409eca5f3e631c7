package render

import (
	"math"

	"github.com/lixenwraith/lane-racer/parameter"
	"github.com/lixenwraith/lane-racer/vmath"
)

// cellAspect is the height-to-width ratio of a terminal cell
const cellAspect = 2.0

// Projector is a pinhole camera behind and above the vehicle, pitched to look
// at the origin. Screen coordinates are in cells, rows growing downward
type Projector struct {
	width, height int

	eye     vmath.Vec3F
	forward vmath.Vec3F
	up      vmath.Vec3F
	focal   float64 // rows per unit of normalized image height
}

// NewProjector builds a camera for a screen of the given size
func NewProjector(width, height int) Projector {
	pitch := math.Atan2(parameter.CameraHeight, parameter.CameraDistance)
	sin, cos := math.Sincos(pitch)
	halfFOV := parameter.CameraFOV * math.Pi / 360

	return Projector{
		width:   width,
		height:  height,
		eye:     vmath.Vec3F{Y: parameter.CameraHeight, Z: parameter.CameraDistance},
		forward: vmath.Vec3F{Y: -sin, Z: -cos},
		up:      vmath.Vec3F{Y: cos, Z: -sin},
		focal:   float64(height) / 2 / math.Tan(halfFOV),
	}
}

// Size returns the screen size the projector was built for
func (p Projector) Size() (int, int) {
	return p.width, p.height
}

// Project maps a world point to fractional screen coordinates
// ok is false for points at or behind the near plane
func (p Projector) Project(point vmath.Vec3F) (x, y float64, ok bool) {
	zc := p.depth(point)
	if zc <= parameter.CameraNear {
		return 0, 0, false
	}
	x, y = p.screenAt(point, zc)
	return x, y, true
}

// depth is the distance of point along the view direction
func (p Projector) depth(point vmath.Vec3F) float64 {
	return vmath.V3FDot(vmath.V3FSub(point, p.eye), p.forward)
}

// screenAt projects point given its precomputed positive depth zc
func (p Projector) screenAt(point vmath.Vec3F, zc float64) (x, y float64) {
	rel := vmath.V3FSub(point, p.eye)
	yc := vmath.V3FDot(rel, p.up)

	x = float64(p.width)/2 + rel.X/zc*p.focal*cellAspect
	y = float64(p.height)/2 - yc/zc*p.focal
	return x, y
}

// Horizon returns the fractional row where the ground plane vanishes
func (p Projector) Horizon() float64 {
	// Ground direction has zero vertical component when -sin + yn*cos = 0
	return float64(p.height)/2 - p.focal*(-p.forward.Y/p.up.Y)
}

// Ground casts the ray through the centre of cell (col, row) onto the ground
// plane, returning the world X and Z it hits. ok is false above the horizon
func (p Projector) Ground(col, row int) (x, z float64, ok bool) {
	yn := (float64(p.height)/2 - (float64(row) + 0.5)) / p.focal
	xn := (float64(col) + 0.5 - float64(p.width)/2) / (p.focal * cellAspect)

	dirY := p.forward.Y + yn*p.up.Y
	if dirY >= 0 {
		return 0, 0, false
	}
	dirZ := p.forward.Z + yn*p.up.Z

	t := -p.eye.Y / dirY
	return t * xn, p.eye.Z + t*dirZ, true
}
