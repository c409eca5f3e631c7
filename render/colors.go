package render

import "github.com/gdamore/tcell/v2"

// Scene palette
var (
	RgbSky      = tcell.NewHexColor(0x87CEEB)
	RgbRoad     = tcell.NewHexColor(0x404040)
	RgbMarking  = tcell.NewHexColor(0xFFFFFF)
	RgbVehicle  = tcell.NewHexColor(0xFF0000)
	RgbWheel    = tcell.NewHexColor(0x202020)
	RgbObstacle = tcell.NewHexColor(0x00FF00)
	RgbHUD      = tcell.NewHexColor(0x000000)
	RgbOverlay  = tcell.NewHexColor(0x202020)
	RgbAlert    = tcell.NewHexColor(0xFF5050)
)

// Styles derived from the palette
var (
	StyleSky      = tcell.StyleDefault.Background(RgbSky)
	StyleRoad     = tcell.StyleDefault.Background(RgbRoad)
	StyleMarking  = tcell.StyleDefault.Foreground(RgbMarking).Background(RgbRoad)
	StyleVehicle  = tcell.StyleDefault.Foreground(RgbVehicle).Background(RgbRoad)
	StyleWheel    = tcell.StyleDefault.Foreground(RgbWheel).Background(RgbRoad)
	StyleObstacle = tcell.StyleDefault.Foreground(RgbObstacle).Background(RgbRoad)
	StyleHUD      = tcell.StyleDefault.Foreground(RgbHUD).Background(RgbSky).Bold(true)
	StyleOverlay  = tcell.StyleDefault.Foreground(RgbMarking).Background(RgbOverlay)
	StyleAlert    = tcell.StyleDefault.Foreground(RgbAlert).Background(RgbOverlay).Bold(true)
)
