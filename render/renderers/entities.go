package renderers

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-racer/component"
	"github.com/lixenwraith/lane-racer/render"
)

// ObstacleRenderer draws obstacles far to near so closer blocks overdraw
type ObstacleRenderer struct {
	order []component.ObstacleComponent
}

// NewObstacleRenderer creates an obstacle renderer
func NewObstacleRenderer() *ObstacleRenderer {
	return &ObstacleRenderer{}
}

// IsVisible hides the scene on undersized screens
func (r *ObstacleRenderer) IsVisible(ctx render.RenderContext) bool {
	return !ctx.TooSmall()
}

// Render projects each obstacle's bounding box
func (r *ObstacleRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	r.order = append(r.order[:0], ctx.Snapshot().Obstacles...)
	sort.SliceStable(r.order, func(i, j int) bool {
		return r.order[i].Depth < r.order[j].Depth
	})

	for _, o := range r.order {
		rect := ctx.Projector.ProjectBox(o.Box())
		if rect.Empty() {
			continue
		}
		render.FillRect(screen, rect, '█', render.StyleObstacle)
	}
}

// VehicleRenderer draws the player's car with darker wheel columns on its flanks
type VehicleRenderer struct{}

// NewVehicleRenderer creates a vehicle renderer
func NewVehicleRenderer() *VehicleRenderer {
	return &VehicleRenderer{}
}

// IsVisible hides the scene on undersized screens
func (r *VehicleRenderer) IsVisible(ctx render.RenderContext) bool {
	return !ctx.TooSmall()
}

// Render fills the vehicle's projected box
func (r *VehicleRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	vehicle := component.VehicleComponent{Lane: ctx.Snapshot().VehicleLane}
	rect := ctx.Projector.ProjectBox(vehicle.Box())
	if rect.Empty() {
		return
	}
	render.FillRect(screen, rect, '█', render.StyleVehicle)

	// Wheels on the outermost columns of the lower half
	if rect.X1-rect.X0 < 4 {
		return
	}
	wheels := render.Rect{X0: rect.X0, Y0: (rect.Y0 + rect.Y1) / 2, X1: rect.X1, Y1: rect.Y1}
	render.FillRect(screen, render.Rect{X0: wheels.X0, Y0: wheels.Y0, X1: wheels.X0 + 1, Y1: wheels.Y1}, '█', render.StyleWheel)
	render.FillRect(screen, render.Rect{X0: wheels.X1 - 1, Y0: wheels.Y0, X1: wheels.X1, Y1: wheels.Y1}, '█', render.StyleWheel)
}
