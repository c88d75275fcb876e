package factory

import (
	"fmt"

	"github.com/automoto/homebound/archetypes"
	"github.com/automoto/homebound/components"
	"github.com/automoto/homebound/shared/leveldata"
	"github.com/automoto/homebound/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSurface spawns a static platform, wall or roof.
func CreateSurface(ecs *ecs.ECS, s leveldata.Surface) (*donburi.Entry, error) {
	var (
		entry    *donburi.Entry
		resolvTag string
	)
	switch s.Kind {
	case leveldata.SurfacePlatform:
		entry, resolvTag = archetypes.Platform.Spawn(ecs), tags.ResolvPlatform
	case leveldata.SurfaceWall:
		entry, resolvTag = archetypes.Wall.Spawn(ecs), tags.ResolvWall
	case leveldata.SurfaceRoof:
		entry, resolvTag = archetypes.Roof.Spawn(ecs), tags.ResolvRoof
	default:
		return nil, fmt.Errorf("surface %q: %w %q", s.ID, leveldata.ErrInvalidSurface, s.Kind)
	}

	obj := newObject(ecs, entry, s.Rect.X, s.Rect.Y, s.Rect.W, s.Rect.H, resolvTag)
	components.Surface.SetValue(entry, components.SurfaceData{
		ID:   s.ID,
		Kind: s.Kind,
	})
	addToSpace(ecs, obj)
	return entry, nil
}
