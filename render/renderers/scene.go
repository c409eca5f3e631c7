package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-racer/input"
	"github.com/lixenwraith/lane-racer/render"
)

// NewScene returns an orchestrator with every game layer registered
// keys supplies the bindings named in overlay hints
func NewScene(screen tcell.Screen, keys *input.KeyTable) *render.RenderOrchestrator {
	o := render.NewRenderOrchestrator(screen)
	o.Register(NewSkyRenderer(), render.PriorityBackground)
	o.Register(NewRoadRenderer(), render.PriorityRoad)
	o.Register(NewObstacleRenderer(), render.PriorityEntities)
	o.Register(NewVehicleRenderer(), render.PriorityEntities)
	o.Register(NewHUDRenderer(), render.PriorityUI)
	o.Register(NewOverlayRenderer(keys), render.PriorityOverlay)
	o.Register(NewTooSmallRenderer(), render.PriorityOverlay)
	return o
}
