package timer

import "time"

// Status represents the current engine mode.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
)

// EventType defines the type of engine event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventComplete    EventType = "complete"
)

// Event represents an engine update for observers.
type Event struct {
	Type  EventType
	State State
	At    time.Time
}
