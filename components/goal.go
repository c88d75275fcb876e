package components

import "github.com/yohamta/donburi"

type GoalData struct {
	Activated bool
	Revealed  bool
	// RevealLeftOf hides the goal until the player is at or left of it.
	RevealLeftOf *float64
}

var Goal = donburi.NewComponentType[GoalData]()
