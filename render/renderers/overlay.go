package renderers

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/lane-racer/engine"
	"github.com/lixenwraith/lane-racer/input"
	"github.com/lixenwraith/lane-racer/parameter"
	"github.com/lixenwraith/lane-racer/render"
)

// OverlayRenderer draws the modal window for game over and pause
type OverlayRenderer struct {
	overHint   string
	resumeHint string
}

// NewOverlayRenderer creates an overlay renderer whose hints name the keys
// bound in keys; nil uses the default bindings
func NewOverlayRenderer(keys *input.KeyTable) *OverlayRenderer {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	return &OverlayRenderer{
		overHint:   overHint(keys),
		resumeHint: keyHint(keys, input.IntentPause, "resume"),
	}
}

func keyHint(keys *input.KeyTable, intent input.Intent, verb string) string {
	name, ok := keys.KeyName(intent)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s to %s", name, verb)
}

// overHint lists restart and quit, omitting unbound actions
func overHint(keys *input.KeyTable) string {
	var parts []string
	if h := keyHint(keys, input.IntentRestart, "restart"); h != "" {
		parts = append(parts, h)
	}
	if h := keyHint(keys, input.IntentQuit, "quit"); h != "" {
		parts = append(parts, h)
	}
	if len(parts) == 0 {
		return ""
	}
	return "press " + strings.Join(parts, ", ")
}

// IsVisible returns true when the session is over or paused
func (r *OverlayRenderer) IsVisible(ctx render.RenderContext) bool {
	if ctx.TooSmall() {
		return false
	}
	return ctx.Snapshot().State == engine.StateOver || ctx.Frame.Paused
}

// Render draws a centred box with the title and supporting lines
func (r *OverlayRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	var title string
	var lines []string
	if ctx.Snapshot().State == engine.StateOver {
		title = parameter.GameOverTitle
		lines = []string{fmt.Sprintf("Final score: %d", ctx.Snapshot().Score)}
		if r.overHint != "" {
			lines = append(lines, r.overHint)
		}
	} else {
		title = parameter.PausedTitle
		if r.resumeHint != "" {
			lines = append(lines, "press "+r.resumeHint)
		}
	}

	width := runewidth.StringWidth(title)
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	width += 4
	height := len(lines) + 4

	x0 := (ctx.Width - width) / 2
	y0 := (ctx.Height - height) / 2
	render.FillRect(screen, render.Rect{X0: x0, Y0: y0, X1: x0 + width, Y1: y0 + height}, ' ', render.StyleOverlay)

	render.DrawCentered(screen, y0+1, title, render.StyleAlert)
	for i, l := range lines {
		render.DrawCentered(screen, y0+3+i, l, render.StyleOverlay)
	}
}

// TooSmallRenderer replaces the scene with a resize hint on undersized screens
type TooSmallRenderer struct{}

// NewTooSmallRenderer creates the resize hint renderer
func NewTooSmallRenderer() *TooSmallRenderer {
	return &TooSmallRenderer{}
}

// IsVisible returns true only when the scene cannot fit
func (r *TooSmallRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.TooSmall()
}

// Render writes the hint on the middle row
func (r *TooSmallRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	render.DrawCentered(screen, ctx.Height/2, parameter.TooSmallMessage, render.StyleOverlay)
}
