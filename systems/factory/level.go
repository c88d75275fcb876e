package factory

import (
	"fmt"

	"github.com/automoto/homebound/archetypes"
	"github.com/automoto/homebound/components"
	cfg "github.com/automoto/homebound/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel validates data.Config and spawns the level singleton, the
// broad-phase space, the player and every static and moving entity.
// Callers discard the world when it returns an error.
func CreateLevel(ecs *ecs.ECS, data components.LevelData) (*donburi.Entry, error) {
	level := data.Config
	if level == nil {
		return nil, fmt.Errorf("create level: no configuration")
	}
	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}

	resolvePhysics(&data)

	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &data)

	now := data.Clock.Now()
	components.Telemetry.SetValue(entry, components.TelemetryData{
		FooledBy:  make(map[string]bool),
		StartedAt: now,
	})
	components.Scheduler.SetValue(entry, components.SchedulerData{
		Queue: make([]components.ScheduledEvent, 0, cfg.Session.MaxPendingEvents),
	})

	cell := cfg.Player.SpaceCellSize
	CreateSpace(ecs, levelBounds(level), cell, cell)

	for _, s := range level.Surfaces {
		if _, err := CreateSurface(ecs, s); err != nil {
			return nil, fmt.Errorf("create level %d: %w", level.Number, err)
		}
	}
	for _, h := range level.Hazards {
		CreateHazard(ecs, h)
	}
	for _, c := range level.Collectibles {
		CreateCollectible(ecs, c)
	}
	CreateGoal(ecs, *level.Goal)
	for _, z := range level.HesitationZones {
		CreateHesitationZone(ecs, z)
	}

	CreatePlayer(ecs, level.Spawn.X, level.Spawn.Y, !level.SpawnFacingLeft, now)
	return entry, nil
}

// resolvePhysics fills per-level physics from the level overrides, falling
// back to config.Physics.
func resolvePhysics(data *components.LevelData) {
	level := data.Config
	data.Gravity = cfg.Physics.Gravity
	if level.Gravity != 0 {
		data.Gravity = level.Gravity
	}
	data.JumpForce = cfg.Physics.JumpForce
	if level.JumpForce != 0 {
		data.JumpForce = level.JumpForce
	}
	data.HeightenedJumpForce = cfg.Physics.HeightenedJumpForce
	if level.HeightenedJumpForce != 0 {
		data.HeightenedJumpForce = level.HeightenedJumpForce
	}
}
