package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlipData drives the player's rotation while gravity flips.
type FlipData struct {
	Tween *gween.Tween
	// Wrap snaps the rotation back to 0 when a 180 to 360 turn finishes.
	Wrap bool
}

var Flip = donburi.NewComponentType[FlipData]()
