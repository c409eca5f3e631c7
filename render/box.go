package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-racer/parameter"
	"github.com/lixenwraith/lane-racer/physics"
	"github.com/lixenwraith/lane-racer/vmath"
)

// Rect is a half-open cell rectangle
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Empty reports whether the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Clip intersects r with a width x height screen
func (r Rect) Clip(width, height int) Rect {
	r.X0 = max(r.X0, 0)
	r.Y0 = max(r.Y0, 0)
	r.X1 = min(r.X1, width)
	r.Y1 = min(r.Y1, height)
	return r
}

// ProjectBox returns the screen rectangle covering the part of b in front of
// the near plane. Edges crossing the plane are clipped to it so a box passing
// the camera keeps its full on-screen extent. Boxes entirely behind the camera
// yield an empty rectangle; anything visible covers at least one cell
func (p Projector) ProjectBox(b physics.Box) Rect {
	var corners [8]vmath.Vec3F
	var depths [8]float64
	for i := range corners {
		c := b.Min
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Y = b.Max.Y
		}
		if i&4 != 0 {
			c.Z = b.Max.Z
		}
		corners[i] = c
		depths[i] = p.depth(c)
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	visible := false
	include := func(point vmath.Vec3F, zc float64) {
		x, y := p.screenAt(point, zc)
		visible = true
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	near := parameter.CameraNear
	for i := range corners {
		if depths[i] > near {
			include(corners[i], depths[i])
		}
		// Each of the 12 edges joins corners differing in one axis bit
		for bit := 1; bit < 8; bit <<= 1 {
			if i&bit != 0 {
				continue
			}
			j := i | bit
			if (depths[i] > near) == (depths[j] > near) {
				continue
			}
			t := (near - depths[i]) / (depths[j] - depths[i])
			hit := vmath.V3FAdd(corners[i], vmath.V3FScale(vmath.V3FSub(corners[j], corners[i]), t))
			include(hit, near)
		}
	}
	if !visible {
		return Rect{}
	}

	r := Rect{
		X0: int(math.Floor(minX)),
		Y0: int(math.Floor(minY)),
		X1: int(math.Ceil(maxX)),
		Y1: int(math.Ceil(maxY)),
	}
	if r.X1 == r.X0 {
		r.X1++
	}
	if r.Y1 == r.Y0 {
		r.Y1++
	}
	return r
}

// FillRect paints every cell of r with ch, clipped to the screen
func FillRect(screen tcell.Screen, r Rect, ch rune, style tcell.Style) {
	w, h := screen.Size()
	r = r.Clip(w, h)
	for y := r.Y0; y < r.Y1; y++ {
		for x := r.X0; x < r.X1; x++ {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}
