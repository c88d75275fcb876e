package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData is the centre position and rotation of an entity. Rotation
// is in degrees.
type TransformData struct {
	Position math.Vec2
	Rotation float64
}

var Transform = donburi.NewComponentType[TransformData]()
