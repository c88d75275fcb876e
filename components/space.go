package components

import (
	"github.com/automoto/homebound/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData is the level's broad-phase grid. resolv cells start at zero, so
// the grid is shifted to begin at Bounds.MinX, Bounds.MinY in level space.
type SpaceData struct {
	*resolv.Space
	Bounds gamemath.AABB
}

var Space = donburi.NewComponentType[SpaceData]()
