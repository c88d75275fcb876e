package factory

import (
	"github.com/automoto/homebound/archetypes"
	"github.com/automoto/homebound/components"
	cfg "github.com/automoto/homebound/config"
	"github.com/automoto/homebound/shared/leveldata"
	"github.com/automoto/homebound/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGoal creates the goal zone. A goal with a reveal line starts hidden.
func CreateGoal(ecs *ecs.ECS, g leveldata.Goal) *donburi.Entry {
	goal := archetypes.Goal.Spawn(ecs)

	obj := newObject(ecs, goal, g.Rect.X, g.Rect.Y, g.Rect.W, g.Rect.H, tags.ResolvGoal)

	var revealLeftOf *float64
	if g.RevealLeftOf != nil {
		v := *g.RevealLeftOf
		revealLeftOf = &v
	}
	components.Goal.SetValue(goal, components.GoalData{
		Revealed:     revealLeftOf == nil,
		RevealLeftOf: revealLeftOf,
	})

	addToSpace(ecs, obj)
	return goal
}

// CreateHesitationZone creates a zone used only by telemetry. It is not
// added to the space. A zero threshold uses the configured default.
func CreateHesitationZone(ecs *ecs.ECS, z leveldata.HesitationZone) *donburi.Entry {
	zone := archetypes.HesitationZone.Spawn(ecs)
	newObject(ecs, zone, z.Rect.X, z.Rect.Y, z.Rect.W, z.Rect.H)

	threshold := z.Threshold
	if threshold == 0 {
		threshold = cfg.Telemetry.HesitationThreshold
	}
	components.HesitationZone.SetValue(zone, components.HesitationZoneData{
		ID:        z.ID,
		Threshold: threshold,
	})
	return zone
}
