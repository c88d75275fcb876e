package systems

import (
	"github.com/automoto/homebound/components"
	"github.com/yohamta/donburi/ecs"
)

func emit(e *ecs.ECS, kind components.EventKind, id string) {
	events := components.Events.Get(getLevelEntry(e))
	events.Pending = append(events.Pending, components.Event{
		Kind: kind,
		ID:   id,
		At:   now(e),
	})
	debugf("event %s %s", kind, id)
}

// DrainEvents returns and clears the events emitted since the last call.
func DrainEvents(e *ecs.ECS) []components.Event {
	events := components.Events.Get(getLevelEntry(e))
	out := events.Pending
	events.Pending = nil
	return out
}
