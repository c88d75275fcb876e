package systems

import (
	"log"
	"time"

	"github.com/automoto/homebound/components"
	cfg "github.com/automoto/homebound/config"
	"github.com/automoto/homebound/progression"
	"github.com/automoto/homebound/shared/gamemath"
	"github.com/automoto/homebound/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Death causes for leaving the playfield
const (
	CauseFell    = "fell"
	CauseCeiling = "ceiling"
	CauseTapped  = "tapped"
)

// UpdateDeaths kills a player who has left the level vertically: below the
// floor limit, or above the ceiling line while airborne.
func UpdateDeaths(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}
	level := getLevel(ecs).Config
	y := components.Transform.Get(playerEntry).Position.Y
	physics := components.Physics.Get(playerEntry)

	switch {
	case y > level.FloorLimit():
		KillPlayer(ecs, CauseFell)
	case level.CeilingDeathY != 0 && y < level.CeilingDeathY && !physics.OnGround:
		KillPlayer(ecs, CauseCeiling)
	}
}

// KillPlayer ends the current life. It records the death with telemetry
// and the progression store and schedules the respawn after the death
// overlay. It reports false when the player was already dead or the level
// is complete.
func KillPlayer(e *ecs.ECS, cause string) bool {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok || playerEntry.HasComponent(components.Death) || IsLevelComplete(e) {
		return false
	}
	level := getLevel(e)
	telemetry := getTelemetry(e)
	t := level.Clock.Now()

	donburi.Add(playerEntry, components.Death, &components.DeathData{
		DiedAt: t,
		Cause:  cause,
		Life:   level.Life,
	})
	level.Life++

	player := components.Player.Get(playerEntry)
	player.MovingLeft, player.MovingRight = false, false
	components.Physics.Get(playerEntry).VelocityY = 0

	telemetry.LevelDeaths++
	number := level.Config.Number
	level.Store.IncrementDeathCount(number)
	level.Store.AddDeathMarker(number, newMarker(level, telemetry.LevelDeaths))

	overlay := level.Config.DeathOverlay
	if overlay <= 0 {
		overlay = cfg.Session.DeathOverlay
	}
	Schedule(e, components.ScheduledRespawn, overlay)
	emit(e, components.EventDied, cause)

	log.Printf("Level %d: player died (%s), %d deaths this level", number, cause, telemetry.LevelDeaths)
	return true
}

// newMarker places a death note somewhere in the marker area with a small
// random tilt. The variant cycles with the level's death count.
func newMarker(level *components.LevelData, deaths int) progression.Marker {
	variant := 0
	if cfg.Telemetry.NoteVariants > 0 {
		variant = deaths % cfg.Telemetry.NoteVariants
	}
	r := level.Rand
	return progression.Marker{
		Variant:  variant,
		X:        r.Float64() * cfg.Telemetry.MarkerAreaWidth,
		Y:        r.Float64() * cfg.Telemetry.MarkerAreaHeight,
		Rotation: (r.Float64()*2 - 1) * cfg.Telemetry.MarkerRotation,
	}
}

// respawnPlayer brings the player back at the level's respawn point and
// clears every per-life latch. Counters persist.
func respawnPlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok || !playerEntry.HasComponent(components.Death) {
		return
	}
	level := getLevel(e)
	t := level.Clock.Now()

	donburi.Remove[components.DeathData](playerEntry, components.Death)

	spawn := level.Config.RespawnPoint()
	resetPlayerAtPosition(playerEntry, spawn.X, spawn.Y, !level.Config.SpawnFacingLeft, t)

	telemetry := getTelemetry(e)
	clear(telemetry.FooledBy)

	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		components.Hazard.Get(entry).Triggered = false
		if level.Config.ResetHazardsOnDeath {
			resetHazard(entry)
		}
	})
	if level.Config.ResetCollectiblesOnDeath {
		tags.Collectible.Each(e.World, func(entry *donburi.Entry) {
			components.Collectible.Get(entry).Collected = false
		})
	}

	tags.HesitationZone.Each(e.World, func(entry *donburi.Entry) {
		components.HesitationZone.Get(entry).Timing = false
	})

	emit(e, components.EventRespawned, "")
	log.Printf("Level %d: player respawned (life %d)", level.Config.Number, level.Life)
}

func resetPlayerAtPosition(e *donburi.Entry, x, y float64, facingRight bool, t time.Time) {
	pos := math.NewVec2(x, y)

	transform := components.Transform.Get(e)
	transform.Position = pos
	transform.Rotation = 0

	physics := components.Physics.Get(e)
	*physics = components.PhysicsData{
		CandidateY: y,
		Previous:   pos,
	}

	player := components.Player.Get(e)
	player.FacingRight = facingRight
	player.MovingLeft, player.MovingRight = false, false
	player.Taps = 0
	player.Greeting = false
	player.FlipPending = false
	player.WalkFrame = 1
	player.LastFrameAt = t
	player.IdleSince = t

	*components.Flip.Get(e) = components.FlipData{}

	state := components.State.Get(e)
	state.PreviousState = state.CurrentState
	state.CurrentState = cfg.Idle
	state.EnteredAt = t

	components.Object.Get(e).SetBox(gamemath.FromCenter(x, y, player.Width, player.Height))
}
