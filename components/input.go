package components

import "github.com/yohamta/donburi"

// InputData is the control state seen by the current tick. Left, Right and
// Jump are held flags; JumpPressed and Taps are edges consumed by the tick.
type InputData struct {
	Left        bool
	Right       bool
	Jump        bool
	JumpPressed bool
	Taps        int
}

var Input = donburi.NewComponentType[InputData]()
