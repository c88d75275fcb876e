package components

import "github.com/yohamta/donburi"

type CollectibleData struct {
	ID            string
	Lethal        bool
	Fools         bool
	SwapsControls bool
	Collected     bool
}

var Collectible = donburi.NewComponentType[CollectibleData]()
