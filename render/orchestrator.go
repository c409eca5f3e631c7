package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-racer/engine"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
// It implements engine.Presenter and engine.Resizer
type RenderOrchestrator struct {
	screen    tcell.Screen
	projector Projector
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing to screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		projector: NewProjector(w, h),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize rebuilds the camera for the new size and syncs the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.projector = NewProjector(width, height)
	o.screen.Sync()
}

// Present executes the render pipeline: clear, render all, show
func (o *RenderOrchestrator) Present(frame engine.Frame) {
	w, h := o.projector.Size()
	ctx := RenderContext{
		Frame:     frame,
		Width:     w,
		Height:    h,
		Projector: o.projector,
	}

	o.screen.Clear()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible(ctx) {
			continue
		}
		entry.renderer.Render(ctx, o.screen)
	}

	o.screen.Show()
}
