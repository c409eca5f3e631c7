package parameter

import "time"

// Frame loop timing
const (
	// FrameInterval is the host frame cadence (~60 FPS), one tick per frame
	FrameInterval = 16 * time.Millisecond

	// MinFrameInterval guards against configs that would spin the loop
	MinFrameInterval = time.Millisecond
)

// Input
const (
	// AccelerateReleaseDelay synthesizes key release: terminals only report presses,
	// auto-repeat arrives faster than this while the key is held
	AccelerateReleaseDelay = 300 * time.Millisecond

	// InputEventBuffer is the capacity of the terminal event channel
	InputEventBuffer = 256
)

// Event queue
const (
	// EventQueueCapacity is the initial capacity of the per-tick event buffer
	EventQueueCapacity = 64
)
