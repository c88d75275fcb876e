package components

import (
	"github.com/automoto/homebound/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type HazardData struct {
	ID     string
	Lethal bool
	Fools  bool
	Width  float64
	Height float64
	Motion leveldata.Motion

	// Initial centre, restored when the level resets hazards on death.
	Initial math.Vec2
	// Direction is +1 toward Max and -1 toward Min for patrols.
	Direction float64
	// Armed is set once a proximity hazard has seen the player.
	Armed   bool
	Arrived bool

	// Triggered latches contact for the current life.
	Triggered bool
}

var Hazard = donburi.NewComponentType[HazardData]()
