package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// DeathData marks a player that has died and is waiting to respawn. The
// respawn itself is a scheduled event.
type DeathData struct {
	DiedAt time.Time
	Cause  string
	// Life is the life that ended.
	Life int
}

var Death = donburi.NewComponentType[DeathData]()
