package systems

import (
	"time"

	"github.com/automoto/homebound/components"
	"github.com/automoto/homebound/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTelemetry counts hesitation. Standing still on the ground with the
// player's centre inside a zone runs that zone's timer. Every full
// threshold counts once and restarts the timer.
func UpdateTelemetry(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	telemetry := getTelemetry(ecs)
	t := now(ecs)

	still := false
	var x, y float64
	if !playerEntry.HasComponent(components.Death) {
		player := components.Player.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)
		pos := components.Transform.Get(playerEntry).Position
		still = physics.OnGround && !isMoving(player)
		x, y = pos.X, pos.Y
	}

	tags.HesitationZone.Each(ecs.World, func(e *donburi.Entry) {
		zone := components.HesitationZone.Get(e)
		if !still || !components.Object.Get(e).Box().Contains(x, y) {
			zone.Timing = false
			return
		}
		if !zone.Timing {
			zone.Timing = true
			zone.StartedAt = t
			return
		}
		// The timer advances by whole thresholds so it does not drift
		// behind the clock.
		for zone.Threshold > 0 && reached(t.Sub(zone.StartedAt), zone.Threshold) {
			telemetry.HesitationCount++
			zone.StartedAt = zone.StartedAt.Add(zone.Threshold)
			emit(ecs, components.EventHesitated, zone.ID)
		}
	})
}

// markFooled counts a decoy once per life.
func markFooled(e *ecs.ECS, id string) {
	telemetry := getTelemetry(e)
	if telemetry.FooledBy[id] {
		return
	}
	telemetry.FooledBy[id] = true
	telemetry.TimesFooled++
	emit(e, components.EventFooled, id)
}

// TimeSpent is the elapsed time of the level, frozen at completion.
func TimeSpent(e *ecs.ECS) time.Duration {
	telemetry := getTelemetry(e)
	if telemetry.Frozen {
		return telemetry.TimeSpent
	}
	return now(e).Sub(telemetry.StartedAt)
}
