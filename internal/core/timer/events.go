package timer

import (
	"time"

	"pomotick/internal/core/model"
)

// EventType defines the type of timer event.
type EventType string

const (
	// EventRunningChanged fires when the timer starts or stops counting.
	EventRunningChanged EventType = "running_changed"
	// EventTick carries a display update. One is emitted at least every
	// tick interval while running and once after every command.
	EventTick EventType = "tick"
	// EventCompleted fires when a countdown reaches zero.
	EventCompleted EventType = "completed"
)

// Event represents a timer update for observers.
type Event struct {
	Type      EventType
	Mode      model.Mode
	Remaining time.Duration
	Running   bool
	Sessions  int

	// PreviousMode is set on EventCompleted: the mode whose countdown
	// just finished. The timer does not advance mode on its own.
	PreviousMode model.Mode

	At time.Time
}

// Snapshot is a point-in-time view of the timer state.
type Snapshot struct {
	Mode      model.Mode
	Remaining time.Duration
	Running   bool
	Sessions  int
}
