package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// HesitationZoneData tracks how long the player has stood still inside a
// zone. Timing is false whenever the dwell timer is not running.
type HesitationZoneData struct {
	ID        string
	Threshold time.Duration
	Timing    bool
	StartedAt time.Time
}

var HesitationZone = donburi.NewComponentType[HesitationZoneData]()
