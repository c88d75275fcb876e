package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type EventKind string

const (
	EventDied            EventKind = "died"
	EventRespawned       EventKind = "respawned"
	EventCollected       EventKind = "collected"
	EventFooled          EventKind = "fooled"
	EventHesitated       EventKind = "hesitated"
	EventGreeted         EventKind = "greeted"
	EventControlsSwapped EventKind = "controls_swapped"
	EventGoalRevealed    EventKind = "goal_revealed"
	EventGravityFlipped  EventKind = "gravity_flipped"
	EventCompleted       EventKind = "completed"
)

// Event is emitted by systems during a tick and drained by the session.
type Event struct {
	Kind EventKind `json:"kind"`
	// ID names the hazard, collectible or zone involved, or the death cause.
	ID string    `json:"id,omitempty"`
	At time.Time `json:"at"`
}

type EventsData struct {
	Pending []Event
}

var Events = donburi.NewComponentType[EventsData]()
