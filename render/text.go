package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawText writes s starting at (x, y), clipped to the screen width
// Returns the column after the last cell written
func DrawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range s {
		if x >= w {
			break
		}
		if x >= 0 {
			screen.SetContent(x, y, r, nil, style)
		}
		x += runewidth.RuneWidth(r)
	}
	return x
}

// DrawCentered writes s centred horizontally on row y
func DrawCentered(screen tcell.Screen, y int, s string, style tcell.Style) {
	w, _ := screen.Size()
	DrawText(screen, (w-runewidth.StringWidth(s))/2, y, s, style)
}

// FillRow paints row y from x0 to x1 (exclusive) with spaces
func FillRow(screen tcell.Screen, x0, x1, y int, style tcell.Style) {
	for x := x0; x < x1; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}
