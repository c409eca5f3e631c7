package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-racer/parameter"
	"github.com/lixenwraith/lane-racer/render"
)

// HUDRenderer draws the score and speed line
type HUDRenderer struct{}

// NewHUDRenderer creates a HUD renderer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// IsVisible hides the HUD on undersized screens
func (r *HUDRenderer) IsVisible(ctx render.RenderContext) bool {
	return !ctx.TooSmall()
}

// Render writes "Score: N  Speed: N"
func (r *HUDRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	snap := ctx.Snapshot()
	render.DrawText(screen, parameter.HUDMargin, parameter.HUDRow, HUDLine(snap.Score, snap.DisplaySpeed), render.StyleHUD)
}

// HUDLine formats the score and speed readout
func HUDLine(score int64, speed int) string {
	return fmt.Sprintf("Score: %d  Speed: %d", score, speed)
}
