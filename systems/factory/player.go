package factory

import (
	"time"

	"github.com/automoto/homebound/archetypes"
	"github.com/automoto/homebound/components"
	cfg "github.com/automoto/homebound/config"
	"github.com/automoto/homebound/shared/gamemath"
	"github.com/automoto/homebound/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player centred on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64, facingRight bool, now time.Time) *donburi.Entry {
	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	if w <= 0 || h <= 0 {
		panic("player collision size must be positive")
	}
	gamemath.MustFinite("player spawn", x, y)

	player := archetypes.Player.Spawn(ecs)

	box := gamemath.FromCenter(x, y, w, h)
	obj := newObject(ecs, player, box.MinX, box.MinY, w, h, tags.ResolvPlayer)

	components.Transform.SetValue(player, components.TransformData{
		Position: math.NewVec2(x, y),
	})
	components.Player.SetValue(player, components.PlayerData{
		Width:       w,
		Height:      h,
		FacingRight: facingRight,
		WalkFrame:   1,
		LastFrameAt: now,
		IdleSince:   now,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		CandidateY: y,
		Previous:   math.NewVec2(x, y),
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		EnteredAt:     now,
	})

	addToSpace(ecs, obj)
	return player
}
