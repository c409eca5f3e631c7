package event

import "github.com/lixenwraith/lane-racer/parameter"

// EventQueue buffers events produced during a tick
// Single-threaded: the session pushes while it ticks, the frame driver consumes after
type EventQueue struct {
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, parameter.EventQueueCapacity)}
}

// Push appends an event
func (eq *EventQueue) Push(event GameEvent) {
	eq.events = append(eq.events, event)
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	result := make([]GameEvent, len(eq.events))
	copy(result, eq.events)
	eq.events = eq.events[:0]
	return result
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return len(eq.events)
}
