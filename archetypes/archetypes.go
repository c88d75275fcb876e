package archetypes

import (
	"github.com/automoto/homebound/components"
	"github.com/automoto/homebound/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Physics,
		components.State,
		components.Object,
		components.Flip,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Surface,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Surface,
		components.Object,
	)
	Roof = newArchetype(
		tags.Roof,
		components.Surface,
		components.Object,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
		components.Transform,
		components.Object,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Collectible,
		components.Object,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Goal,
		components.Object,
	)
	HesitationZone = newArchetype(
		tags.HesitationZone,
		components.HesitationZone,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	// Level holds every per-instance singleton.
	Level = newArchetype(
		components.Level,
		components.Input,
		components.Telemetry,
		components.Scheduler,
		components.Events,
		components.LevelComplete,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	return ecs.World.Entry(ecs.World.Create(append(a.components, cs...)...))
}
