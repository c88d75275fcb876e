package components

import (
	"math/rand"

	"github.com/automoto/homebound/progression"
	"github.com/automoto/homebound/shared/clock"
	"github.com/automoto/homebound/shared/leveldata"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// LevelData is the singleton describing the running level instance and
// the collaborators its systems need.
type LevelData struct {
	Config   *leveldata.Level
	Instance uuid.UUID
	// Life increments on every death. Scheduled events from an older life
	// are dropped.
	Life  int
	Clock clock.Clock
	Store progression.Store
	Rand  *rand.Rand

	// Resolved physics for this level.
	Gravity             float64
	JumpForce           float64
	HeightenedJumpForce float64

	ControlsSwapped bool
	SwapMessage     bool
}

var Level = donburi.NewComponentType[LevelData]()
