package components

import (
	"github.com/automoto/homebound/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its broad-phase object in the resolv space.
// The object's own coordinates are grid-relative; OriginX and OriginY map
// them back to level space.
type ObjectData struct {
	*resolv.Object
	OriginX, OriginY float64
}

// Box returns the object's bounds in level space.
func (o *ObjectData) Box() gamemath.AABB {
	return gamemath.FromRect(o.X+o.OriginX, o.Y+o.OriginY, o.W, o.H)
}

// SetBox moves and resizes the object and re-registers it with its space.
func (o *ObjectData) SetBox(b gamemath.AABB) {
	o.X, o.Y = b.MinX-o.OriginX, b.MinY-o.OriginY
	o.W, o.H = b.Width(), b.Height()
	if o.Space != nil {
		o.Update()
	}
}

var Object = donburi.NewComponentType[ObjectData]()
