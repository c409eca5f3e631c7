package engine

import (
	"math"

	"github.com/lixenwraith/lane-racer/component"
	"github.com/lixenwraith/lane-racer/event"
)

// State is the session state machine position
type State uint8

const (
	StateRunning State = iota
	StateOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// Session owns the vehicle, the obstacle registry and the score
// Not safe for concurrent use: input handlers and Tick must run on one goroutine
type Session struct {
	cfg      Config
	handling component.Handling

	vehicle  component.VehicleComponent
	registry *ObstacleRegistry
	policy   *SpawnPolicy
	events   *event.EventQueue

	state    State
	score    int64
	tick     uint64
	distance float64
}

// NewSession creates a running session seeded from cfg.Seed
func NewSession(cfg Config) *Session {
	return NewSessionWithSource(cfg, NewRandomSource(cfg.Seed))
}

// NewSessionWithSource creates a running session drawing spawn rolls from rng
func NewSessionWithSource(cfg Config, rng RandomSource) *Session {
	events := event.NewEventQueue()
	return &Session{
		cfg:      cfg,
		handling: cfg.Handling(),
		registry: NewObstacleRegistry(cfg.SpawnDepth, events),
		policy:   NewSpawnPolicy(cfg.SpawnChance, cfg.LaneWidth, rng),
		events:   events,
		state:    StateRunning,
	}
}

// Accelerate raises speed by one increment; no-op once over
func (s *Session) Accelerate() {
	if s.state == StateOver {
		return
	}
	s.vehicle.Accelerate(s.handling)
}

// Decelerate lowers speed by one decrement, modelling the accelerator release
func (s *Session) Decelerate() {
	if s.state == StateOver {
		return
	}
	s.vehicle.Decelerate(s.handling)
}

// SteerLeft shifts the vehicle one step left; no-op once over
func (s *Session) SteerLeft() {
	if s.state == StateOver {
		return
	}
	s.vehicle.SteerLeft(s.handling)
}

// SteerRight shifts the vehicle one step right; no-op once over
func (s *Session) SteerRight() {
	if s.state == StateOver {
		return
	}
	s.vehicle.SteerRight(s.handling)
}

// Spawn adds one obstacle at a random lane at the far spawn depth
func (s *Session) Spawn() component.ObstacleComponent {
	return s.registry.Spawn(s.policy.Lane())
}

// Tick advances the session by one frame
// Score accrues first, then each obstacle moves and is tested against the
// vehicle in order. The first hit ends the session and stops the frame there;
// otherwise passed obstacles are culled and a new one may spawn
func (s *Session) Tick() {
	if s.state == StateOver {
		return
	}

	s.tick++
	s.score += int64(math.Floor(s.vehicle.Speed))

	delta := s.vehicle.Speed * s.cfg.AdvanceFactor
	s.distance += delta

	vehicleBox := s.vehicle.Box()
	hit, collided := s.registry.AdvanceUntil(delta, func(o component.ObstacleComponent) bool {
		return vehicleBox.Intersects(o.Box())
	})
	if collided {
		s.state = StateOver
		s.events.Push(event.GameEvent{
			Type:       event.EventCollision,
			ObstacleID: hit.ID,
			Lane:       hit.Lane,
			Depth:      hit.Depth,
		})
		s.events.Push(event.GameEvent{Type: event.EventGameOver, Score: s.score})
		return
	}

	s.registry.Cull(s.cfg.PassedDepth)

	if s.policy.ShouldSpawn() {
		s.Spawn()
	}
}

// Reset starts a fresh session from any state
func (s *Session) Reset() {
	s.registry.Clear()
	s.vehicle = component.VehicleComponent{}
	s.score = 0
	s.tick = 0
	s.distance = 0
	s.state = StateRunning
	s.events.Push(event.GameEvent{Type: event.EventSessionReset})
}

// DrainEvents returns the events produced since the last drain
func (s *Session) DrainEvents() []event.GameEvent {
	return s.events.Consume()
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) IsOver() bool {
	return s.state == StateOver
}

func (s *Session) Score() int64 {
	return s.score
}

// Ticks returns the number of ticks since the last reset
func (s *Session) Ticks() uint64 {
	return s.tick
}

// Vehicle returns a copy of the vehicle state
func (s *Session) Vehicle() component.VehicleComponent {
	return s.vehicle
}

// Registry exposes the obstacle registry for placement by tools and tests
func (s *Session) Registry() *ObstacleRegistry {
	return s.registry
}

func (s *Session) Config() Config {
	return s.cfg
}
