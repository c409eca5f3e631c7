package render

import (
	"github.com/lixenwraith/lane-racer/engine"
	"github.com/lixenwraith/lane-racer/parameter"
)

// RenderContext carries the frame being drawn and the screen geometry
type RenderContext struct {
	Frame     engine.Frame
	Width     int
	Height    int
	Projector Projector
}

// Snapshot is shorthand for the frame's session snapshot
func (ctx RenderContext) Snapshot() engine.Snapshot {
	return ctx.Frame.Snapshot
}

// TooSmall reports whether the screen cannot fit the scene
func (ctx RenderContext) TooSmall() bool {
	return ctx.Width < parameter.MinScreenWidth || ctx.Height < parameter.MinScreenHeight
}
