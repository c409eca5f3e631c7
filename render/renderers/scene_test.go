package renderers

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-racer/component"
	"github.com/lixenwraith/lane-racer/engine"
	"github.com/lixenwraith/lane-racer/input"
	"github.com/lixenwraith/lane-racer/render"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func runningFrame() engine.Frame {
	return engine.Frame{
		Snapshot: engine.Snapshot{
			State:        engine.StateRunning,
			Score:        42,
			Speed:        7.5,
			DisplaySpeed: 7,
			MaxSpeed:     100,
			LaneWidth:    4,
		},
	}
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func screenContains(screen tcell.Screen, s string) bool {
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(screen, y), s) {
			return true
		}
	}
	return false
}

func TestSceneHUD(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	scene := NewScene(screen, nil)

	scene.Present(runningFrame())

	row := rowText(screen, 0)
	if !strings.HasPrefix(row[1:], "Score: 42  Speed: 7") {
		t.Errorf("HUD row = %q", strings.TrimSpace(row))
	}
}

func TestSceneLayers(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	scene := NewScene(screen, nil)

	obstacle := component.ObstacleComponent{ID: 1, Lane: 4, Depth: -20}
	frame := runningFrame()
	frame.Snapshot.Obstacles = []component.ObstacleComponent{obstacle}
	scene.Present(frame)

	rect := render.NewProjector(80, 24).ProjectBox(obstacle.Box())

	tests := []struct {
		name   string
		x, y   int
		fg     bool
		wantFg tcell.Color
		wantBg tcell.Color
	}{
		{name: "sky", x: 79, y: 1, wantBg: render.RgbSky},
		{name: "road", x: 40, y: 23, wantBg: render.RgbRoad},
		{name: "vehicle", x: 40, y: 12, fg: true, wantFg: render.RgbVehicle},
		{name: "obstacle", x: (rect.X0 + rect.X1) / 2, y: (rect.Y0 + rect.Y1) / 2, fg: true, wantFg: render.RgbObstacle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, style, _ := screen.GetContent(tt.x, tt.y)
			fg, bg, _ := style.Decompose()
			if tt.fg {
				if fg != tt.wantFg {
					t.Errorf("fg at (%d, %d) = %v, want %v", tt.x, tt.y, fg, tt.wantFg)
				}
				return
			}
			if bg != tt.wantBg {
				t.Errorf("bg at (%d, %d) = %v, want %v", tt.x, tt.y, bg, tt.wantBg)
			}
		})
	}
}

func TestSceneGameOverOverlay(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	scene := NewScene(screen, nil)

	frame := runningFrame()
	frame.Snapshot.State = engine.StateOver
	frame.Snapshot.Score = 123
	scene.Present(frame)

	for _, want := range []string{"GAME OVER", "Final score: 123", "press r to restart, q to quit"} {
		if !screenContains(screen, want) {
			t.Errorf("overlay missing %q", want)
		}
	}
}

func TestScenePausedOverlay(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	scene := NewScene(screen, nil)

	frame := runningFrame()
	scene.Present(frame)
	if screenContains(screen, "PAUSED") {
		t.Fatal("running frame should not show the pause overlay")
	}

	frame.Paused = true
	scene.Present(frame)
	if !screenContains(screen, "PAUSED") {
		t.Error("paused frame should show the pause overlay")
	}
}

func reboundKeys(t *testing.T, bindings map[string]string) *input.KeyTable {
	t.Helper()
	over, err := input.LoadKeyConfig(bindings)
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}
	kt := input.DefaultKeyTable()
	kt.Merge(over)
	return kt
}

func TestSceneOverlayNamesBoundKeys(t *testing.T) {
	keys := reboundKeys(t, map[string]string{
		"r":     "none",
		"n":     "restart",
		"p":     "none",
		"space": "pause",
	})
	screen := newTestScreen(t, 80, 24)
	scene := NewScene(screen, keys)

	frame := runningFrame()
	frame.Snapshot.State = engine.StateOver
	scene.Present(frame)
	if !screenContains(screen, "press n to restart, q to quit") {
		t.Error("game over hint should name the rebound restart key")
	}
	if screenContains(screen, "r to restart") {
		t.Error("game over hint should not name the unbound r key")
	}

	frame = runningFrame()
	frame.Paused = true
	scene.Present(frame)
	if !screenContains(screen, "press space to resume") {
		t.Error("pause hint should name the rebound pause key")
	}
}

func TestSceneOverlayOmitsUnboundHints(t *testing.T) {
	keys := reboundKeys(t, map[string]string{
		"r":      "none",
		"enter":  "none",
		"q":      "none",
		"esc":    "none",
		"ctrl-c": "none",
	})
	screen := newTestScreen(t, 80, 24)
	scene := NewScene(screen, keys)

	frame := runningFrame()
	frame.Snapshot.State = engine.StateOver
	frame.Snapshot.Score = 7
	scene.Present(frame)

	if !screenContains(screen, "Final score: 7") {
		t.Error("overlay should still show the final score")
	}
	if screenContains(screen, "press") {
		t.Error("overlay should not show a hint when restart and quit are unbound")
	}
}

func TestSceneTooSmall(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	scene := NewScene(screen, nil)

	screen.SetSize(20, 8)
	scene.Resize(20, 8)
	scene.Present(runningFrame())

	if !screenContains(screen, "too small") {
		t.Error("undersized screen should show the resize hint")
	}
	if screenContains(screen, "Score:") {
		t.Error("HUD should be hidden on an undersized screen")
	}
}

func TestDashPhase(t *testing.T) {
	tests := []struct {
		z, distance, want float64
	}{
		{0, 0, 0},
		{-5, 0, 15},
		{3, 3, 0},
		{-18, 2, 0},
		{25, 0, 5},
	}
	for _, tt := range tests {
		if got := dashPhase(tt.z, tt.distance); got != tt.want {
			t.Errorf("dashPhase(%v, %v) = %v, want %v", tt.z, tt.distance, got, tt.want)
		}
	}
}

func TestHUDLine(t *testing.T) {
	if got := HUDLine(1234, 99); got != "Score: 1234  Speed: 99" {
		t.Errorf("HUDLine = %q", got)
	}
}
