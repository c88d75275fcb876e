package factory

import (
	"github.com/automoto/homebound/archetypes"
	"github.com/automoto/homebound/components"
	"github.com/automoto/homebound/shared/leveldata"
	"github.com/automoto/homebound/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateHazard(ecs *ecs.ECS, h leveldata.Hazard) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)

	obj := newObject(ecs, hazard, h.Rect.X, h.Rect.Y, h.Rect.W, h.Rect.H, tags.ResolvHazard)

	c := h.Rect.Center()
	direction := 1.0
	if h.Motion.Backward {
		direction = -1
	}
	motion := h.Motion
	if motion.Kind == "" {
		motion.Kind = leveldata.MotionStationary
	}

	components.Transform.SetValue(hazard, components.TransformData{
		Position: math.NewVec2(c.X, c.Y),
	})
	components.Hazard.SetValue(hazard, components.HazardData{
		ID:        h.ID,
		Lethal:    h.Lethal,
		Fools:     h.Fools,
		Width:     h.Rect.W,
		Height:    h.Rect.H,
		Motion:    motion,
		Initial:   math.NewVec2(c.X, c.Y),
		Direction: direction,
	})

	addToSpace(ecs, obj)
	return hazard
}

func CreateCollectible(ecs *ecs.ECS, c leveldata.Collectible) *donburi.Entry {
	collectible := archetypes.Collectible.Spawn(ecs)

	obj := newObject(ecs, collectible, c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H, tags.ResolvCollectible)
	components.Collectible.SetValue(collectible, components.CollectibleData{
		ID:            c.ID,
		Lethal:        c.Lethal,
		Fools:         c.Fools,
		SwapsControls: c.SwapsControls,
	})

	addToSpace(ecs, obj)
	return collectible
}
