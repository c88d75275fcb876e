package systems

import (
	"log"
	"time"

	"github.com/automoto/homebound/components"
	cfg "github.com/automoto/homebound/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// getLevelEntry returns the entry that carries every per-level singleton.
// Systems are only added once the level exists, so a missing entry is a
// wiring bug.
func getLevelEntry(e *ecs.ECS) *donburi.Entry {
	entry, ok := components.Level.First(e.World)
	if !ok {
		panic("systems: no level entity in world")
	}
	return entry
}

func getLevel(e *ecs.ECS) *components.LevelData {
	return components.Level.Get(getLevelEntry(e))
}

func getInput(e *ecs.ECS) *components.InputData {
	return components.Input.Get(getLevelEntry(e))
}

func getTelemetry(e *ecs.ECS) *components.TelemetryData {
	return components.Telemetry.Get(getLevelEntry(e))
}

func getScheduler(e *ecs.ECS) *components.SchedulerData {
	return components.Scheduler.Get(getLevelEntry(e))
}

func now(e *ecs.ECS) time.Time {
	return getLevel(e).Clock.Now()
}

// tickSeconds is the fixed timestep used by tweens and angular motion.
func tickSeconds() float64 {
	return cfg.TickDuration().Seconds()
}

// tickTolerance absorbs the truncation in TickDuration, so a duration that
// is a whole number of ticks (1s at 60 Hz) elapses on that tick and not the
// next one.
func tickTolerance() time.Duration {
	return cfg.TickDuration() / 2
}

// reached reports whether elapsed covers d, within tickTolerance.
func reached(elapsed, d time.Duration) bool {
	return elapsed+tickTolerance() >= d
}

func debugf(format string, args ...any) {
	if cfg.Session.Debug {
		log.Printf("[debug] "+format, args...)
	}
}

// Register adds the gameplay systems in tick order. Everything but the
// scheduler stops once the level is complete.
func Register(e *ecs.ECS) {
	e.AddSystem(WithLevelCompleteCheck(UpdateInput))
	e.AddSystem(WithLevelCompleteCheck(UpdatePhysics))
	e.AddSystem(WithLevelCompleteCheck(UpdateCollisions))
	e.AddSystem(WithLevelCompleteCheck(UpdateDeaths))
	e.AddSystem(WithLevelCompleteCheck(UpdatePlayerState))
	e.AddSystem(WithLevelCompleteCheck(UpdateHazards))
	e.AddSystem(WithLevelCompleteCheck(UpdateTelemetry))
	e.AddSystem(UpdateScheduler)
}
