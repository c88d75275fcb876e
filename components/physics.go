package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PhysicsData struct {
	VelocityY float64
	// CandidateY is the integrated y before collision resolution.
	CandidateY      float64
	Previous        math.Vec2 // Centre at the start of the tick
	OnGround        bool
	GravityReversed bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
