package components

import (
	"time"

	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

type ScheduledKind int

const (
	ScheduledGreetingEnd ScheduledKind = iota
	ScheduledRespawn
	ScheduledSwapMessageEnd
)

var scheduledKindNames = map[ScheduledKind]string{
	ScheduledGreetingEnd:    "greeting_end",
	ScheduledRespawn:        "respawn",
	ScheduledSwapMessageEnd: "swap_message_end",
}

func (k ScheduledKind) String() string {
	if name, ok := scheduledKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// LifeScoped reports whether the event is dropped when the player dies
// before it fires. Other events only need the level instance to match.
func (k ScheduledKind) LifeScoped() bool {
	return k != ScheduledSwapMessageEnd
}

// ScheduledEvent is a deferred effect. It only applies while Instance, and
// Life for life-scoped kinds, still match the running level.
type ScheduledEvent struct {
	Kind     ScheduledKind
	Instance uuid.UUID
	Life     int
	FireAt   time.Time
}

type SchedulerData struct {
	Queue []ScheduledEvent
}

var Scheduler = donburi.NewComponentType[SchedulerData]()
