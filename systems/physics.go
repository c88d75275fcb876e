package systems

import (
	"github.com/automoto/homebound/components"
	cfg "github.com/automoto/homebound/config"
	"github.com/automoto/homebound/shared/gamemath"
	"github.com/automoto/homebound/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates the player for one tick: gravity while airborne,
// horizontal movement, then a candidate y for the collision pass.
func UpdatePhysics(ecs *ecs.ECS) {
	level := getLevel(ecs)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		// Freeze in place during the death overlay
		if e.HasComponent(components.Death) {
			return
		}

		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		transform := components.Transform.Get(e)

		physics.Previous = transform.Position

		if !physics.OnGround {
			physics.VelocityY = gamemath.ApplyGravity(physics.VelocityY, level.Gravity, physics.GravityReversed, cfg.Physics.MaxFallSpeed)
		}

		if player.MovingLeft {
			transform.Position.X -= cfg.Physics.MoveSpeed
		}
		if player.MovingRight {
			transform.Position.X += cfg.Physics.MoveSpeed
		}

		physics.CandidateY = transform.Position.Y + physics.VelocityY
		gamemath.MustFinite("player position", transform.Position.X, physics.CandidateY, physics.VelocityY)
	})
}
