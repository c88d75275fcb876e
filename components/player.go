package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Width       float64
	Height      float64
	FacingRight bool
	// Effective movement this tick, after any control swap.
	MovingLeft  bool
	MovingRight bool
	Taps        int // Taps received during the current life
	Greeting    bool
	// FlipPending is set by a flip jump until the apex reverses gravity
	// or the player lands.
	FlipPending bool
	WalkFrame   int // 1-based
	LastFrameAt time.Time
	IdleSince   time.Time
}

var Player = donburi.NewComponentType[PlayerData]()
