package engine

import (
	"github.com/lixenwraith/lane-racer/component"
	"github.com/lixenwraith/lane-racer/event"
)

// ObstacleRegistry holds the live obstacles in spawn order
// Every insertion and removal is announced on the event queue so the
// presentation layer can create or release the matching visual
type ObstacleRegistry struct {
	obstacles  []component.ObstacleComponent
	nextID     uint64
	spawnDepth float64
	events     *event.EventQueue
}

func NewObstacleRegistry(spawnDepth float64, events *event.EventQueue) *ObstacleRegistry {
	return &ObstacleRegistry{
		obstacles:  make([]component.ObstacleComponent, 0, 16),
		spawnDepth: spawnDepth,
		events:     events,
	}
}

// Spawn adds an obstacle in lane at the far spawn depth
func (r *ObstacleRegistry) Spawn(lane float64) component.ObstacleComponent {
	return r.Place(lane, r.spawnDepth)
}

// Place adds an obstacle at an explicit lane and depth
func (r *ObstacleRegistry) Place(lane, depth float64) component.ObstacleComponent {
	r.nextID++
	o := component.ObstacleComponent{ID: r.nextID, Lane: lane, Depth: depth}
	r.obstacles = append(r.obstacles, o)
	r.events.Push(event.GameEvent{
		Type:       event.EventObstacleSpawned,
		ObstacleID: o.ID,
		Lane:       o.Lane,
		Depth:      o.Depth,
	})
	return o
}

// Advance moves every obstacle delta closer to the viewer
func (r *ObstacleRegistry) Advance(delta float64) {
	r.AdvanceUntil(delta, nil)
}

// AdvanceUntil moves obstacles in order, testing each right after it moves
// Stops at the first obstacle for which hit returns true and returns it;
// obstacles after it keep their previous depth
func (r *ObstacleRegistry) AdvanceUntil(delta float64, hit func(component.ObstacleComponent) bool) (component.ObstacleComponent, bool) {
	for i := range r.obstacles {
		r.obstacles[i].Depth += delta
		if hit != nil && hit(r.obstacles[i]) {
			return r.obstacles[i], true
		}
	}
	return component.ObstacleComponent{}, false
}

// Cull removes every obstacle deeper than threshold and returns the count removed
func (r *ObstacleRegistry) Cull(threshold float64) int {
	kept := r.obstacles[:0]
	removed := 0
	for _, o := range r.obstacles {
		if o.Depth > threshold {
			r.announceRemoval(o)
			removed++
			continue
		}
		kept = append(kept, o)
	}
	r.obstacles = kept
	return removed
}

// Clear removes all obstacles
func (r *ObstacleRegistry) Clear() {
	for _, o := range r.obstacles {
		r.announceRemoval(o)
	}
	r.obstacles = r.obstacles[:0]
}

// Len returns the number of live obstacles
func (r *ObstacleRegistry) Len() int {
	return len(r.obstacles)
}

// All returns a copy of the live obstacles
func (r *ObstacleRegistry) All() []component.ObstacleComponent {
	out := make([]component.ObstacleComponent, len(r.obstacles))
	copy(out, r.obstacles)
	return out
}

func (r *ObstacleRegistry) announceRemoval(o component.ObstacleComponent) {
	r.events.Push(event.GameEvent{
		Type:       event.EventObstacleRemoved,
		ObstacleID: o.ID,
		Lane:       o.Lane,
		Depth:      o.Depth,
	})
}
