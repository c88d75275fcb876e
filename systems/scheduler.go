package systems

import (
	"log"
	"time"

	"github.com/automoto/homebound/components"
	cfg "github.com/automoto/homebound/config"
	"github.com/yohamta/donburi/ecs"
)

// Schedule queues a deferred effect tagged with the current level instance
// and life.
func Schedule(e *ecs.ECS, kind components.ScheduledKind, delay time.Duration) {
	level := getLevel(e)
	sched := getScheduler(e)

	if len(sched.Queue) >= cfg.Session.MaxPendingEvents {
		log.Printf("Warning: %d scheduled events pending, queueing %s anyway", len(sched.Queue), kind)
	}
	sched.Queue = append(sched.Queue, components.ScheduledEvent{
		Kind:     kind,
		Instance: level.Instance,
		Life:     level.Life,
		FireAt:   level.Clock.Now().Add(delay),
	})
}

// UpdateScheduler fires every due event in the order it was queued. Events
// from another level instance, or from an earlier life for life-scoped
// kinds, are dropped.
func UpdateScheduler(e *ecs.ECS) {
	level := getLevel(e)
	sched := getScheduler(e)
	t := level.Clock.Now()

	var due []components.ScheduledEvent
	pending := sched.Queue[:0]
	for _, ev := range sched.Queue {
		if !reached(t.Sub(ev.FireAt), 0) {
			pending = append(pending, ev)
			continue
		}
		due = append(due, ev)
	}
	sched.Queue = pending

	for _, ev := range due {
		if isStale(level, ev) {
			debugf("dropping stale %s (life %d, now %d)", ev.Kind, ev.Life, level.Life)
			continue
		}
		fire(e, ev)
	}
}

func isStale(level *components.LevelData, ev components.ScheduledEvent) bool {
	if ev.Instance != level.Instance {
		return true
	}
	return ev.Kind.LifeScoped() && ev.Life != level.Life
}

func fire(e *ecs.ECS, ev components.ScheduledEvent) {
	switch ev.Kind {
	case components.ScheduledGreetingEnd:
		endGreeting(e)
	case components.ScheduledRespawn:
		respawnPlayer(e)
	case components.ScheduledSwapMessageEnd:
		getLevel(e).SwapMessage = false
	}
}

// FlushScheduler drops every pending event. Called when the level exits.
func FlushScheduler(e *ecs.ECS) int {
	sched := getScheduler(e)
	n := len(sched.Queue)
	sched.Queue = sched.Queue[:0]
	return n
}

// PendingEvents reports how many events are queued.
func PendingEvents(e *ecs.ECS) int {
	return len(getScheduler(e).Queue)
}
