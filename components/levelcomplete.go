package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// LevelCompleteData is set once the goal is reached. It never resets for
// the lifetime of a level instance.
type LevelCompleteData struct {
	IsComplete  bool
	CompletedAt time.Time
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
