package event

// EventType represents the type of game event
type EventType int

const (
	// EventObstacleSpawned announces a new obstacle
	// Trigger: Session spawn roll, ObstacleRegistry.Place
	// Consumer: Renderer | Fields: ObstacleID, Lane, Depth
	EventObstacleSpawned EventType = iota

	// EventObstacleRemoved asks the presentation to release an obstacle's visual
	// Trigger: cull past the passed threshold, reset
	// Consumer: Renderer | Fields: ObstacleID, Lane, Depth
	EventObstacleRemoved

	// EventCollision reports the obstacle that ended the run
	// Trigger: Session tick | Fields: ObstacleID, Lane, Depth
	EventCollision

	// EventGameOver marks the RUNNING -> OVER transition
	// Trigger: Session tick, once per session
	// Consumer: Renderer, SoundManager, FrameDriver | Fields: Score
	EventGameOver

	// EventSessionReset marks a fresh session
	// Trigger: Session.Reset
	// Consumer: Renderer, SoundManager
	EventSessionReset
)

var eventTypeNames = map[EventType]string{
	EventObstacleSpawned: "obstacle_spawned",
	EventObstacleRemoved: "obstacle_removed",
	EventCollision:       "collision",
	EventGameOver:        "game_over",
	EventSessionReset:    "session_reset",
}

// String returns the event name used in logs and metric attributes
func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a notification produced by a tick for the presentation layer
type GameEvent struct {
	Type       EventType
	ObstacleID uint64
	Lane       float64
	Depth      float64
	Score      int64
}
