package factory

import (
	"math"

	"github.com/automoto/homebound/archetypes"
	"github.com/automoto/homebound/components"
	"github.com/automoto/homebound/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds a broad-phase grid covering bounds. Objects outside
// it are not registered in any cell.
func CreateSpace(ecs *ecs.ECS, bounds gamemath.AABB, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	width := int(math.Ceil(bounds.Width()))
	height := int(math.Ceil(bounds.Height()))
	components.Space.SetValue(space, components.SpaceData{
		Space:  resolv.NewSpace(width, height, cellWidth, cellHeight),
		Bounds: bounds,
	})
	return space
}

// addToSpace registers obj with the level's space, if there is one.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// newObject builds a resolv object for a top-left anchored rect in level
// space and points its Data back at entry.
func newObject(ecs *ecs.ECS, entry *donburi.Entry, x, y, w, h float64, tags ...string) *resolv.Object {
	var originX, originY float64
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		b := components.Space.Get(spaceEntry).Bounds
		originX, originY = b.MinX, b.MinY
	}
	obj := resolv.NewObject(x-originX, y-originY, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{
		Object:  obj,
		OriginX: originX,
		OriginY: originY,
	})
	return obj
}
