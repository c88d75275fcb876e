package components

import (
	"time"

	"github.com/automoto/homebound/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	EnteredAt     time.Time
}

var State = donburi.NewComponentType[StateData]()
