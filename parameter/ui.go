package parameter

// HUD layout
const (
	// HUDRow is the screen row of the score/speed line
	HUDRow = 0

	// HUDMargin is the left padding of the HUD
	HUDMargin = 1

	// MinScreenWidth and MinScreenHeight below which only a resize hint is drawn
	MinScreenWidth  = 30
	MinScreenHeight = 12
)

// HUD and overlay text
const (
	GameOverTitle   = "GAME OVER"
	PausedTitle     = "PAUSED"
	TooSmallMessage = "terminal too small"
)
