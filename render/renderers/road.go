package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-racer/parameter"
	"github.com/lixenwraith/lane-racer/render"
)

// SkyRenderer fills the whole screen with the sky colour; later layers draw over it
type SkyRenderer struct{}

// NewSkyRenderer creates a sky renderer
func NewSkyRenderer() *SkyRenderer {
	return &SkyRenderer{}
}

// Render paints every cell
func (r *SkyRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	for y := 0; y < ctx.Height; y++ {
		render.FillRow(screen, 0, ctx.Width, y, render.StyleSky)
	}
}

// RoadRenderer casts each cell below the horizon onto the ground plane and
// paints the road surface with scrolling lane dashes
type RoadRenderer struct{}

// NewRoadRenderer creates a road renderer
func NewRoadRenderer() *RoadRenderer {
	return &RoadRenderer{}
}

// IsVisible hides the scene on undersized screens
func (r *RoadRenderer) IsVisible(ctx render.RenderContext) bool {
	return !ctx.TooSmall()
}

// Render draws the road rows from the horizon down
func (r *RoadRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	snap := ctx.Snapshot()
	halfRoad := snap.LaneWidth * float64(parameter.LaneCount) / 2
	separator := snap.LaneWidth / 2

	top := max(int(math.Ceil(ctx.Projector.Horizon())), 0)
	for y := top; y < ctx.Height; y++ {
		for x := 0; x < ctx.Width; x++ {
			wx, wz, ok := ctx.Projector.Ground(x, y)
			if !ok || math.Abs(wx) > halfRoad || wz < -parameter.RoadLength {
				continue
			}

			if isMarking(ctx.Projector, x, y, wx, wz, separator, snap.Distance) {
				screen.SetContent(x, y, '▐', nil, render.StyleMarking)
			} else {
				screen.SetContent(x, y, ' ', nil, render.StyleRoad)
			}
		}
	}
}

// isMarking reports whether the cell at world (wx, wz) lies on a lane dash
// Dashes narrower than a cell are widened to one cell so distant ones stay visible
func isMarking(p render.Projector, col, row int, wx, wz, separator, distance float64) bool {
	halfWidth := parameter.MarkingWidth / 2
	if nx, _, ok := p.Ground(col+1, row); ok {
		halfWidth = math.Max(halfWidth, math.Abs(nx-wx)/2)
	}
	if math.Abs(math.Abs(wx)-separator) > halfWidth {
		return false
	}
	return dashPhase(wz, distance) < parameter.MarkingLength
}

// dashPhase returns where wz falls within the dash cycle, in [0, MarkingSpacing)
// Dashes move toward the viewer as distance accumulates
func dashPhase(wz, distance float64) float64 {
	phase := math.Mod(wz-distance, parameter.MarkingSpacing)
	if phase < 0 {
		phase += parameter.MarkingSpacing
	}
	return phase
}
