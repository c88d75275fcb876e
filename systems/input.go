package systems

import (
	"github.com/automoto/homebound/components"
	cfg "github.com/automoto/homebound/config"
	"github.com/automoto/homebound/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput turns the held controls into movement for this tick and
// applies the edge-triggered jump and tap.
func UpdateInput(e *ecs.ECS) {
	input := getInput(e)
	defer func() {
		input.JumpPressed = false
		input.Taps = 0
	}()

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if playerEntry.HasComponent(components.Death) {
		player.MovingLeft, player.MovingRight = false, false
		return
	}

	level := getLevel(e)
	left, right := input.Left, input.Right
	if level.ControlsSwapped {
		left, right = right, left
	}
	player.MovingLeft, player.MovingRight = left, right

	for i := 0; i < input.Taps; i++ {
		TapPlayer(e, playerEntry)
		if playerEntry.HasComponent(components.Death) {
			return
		}
	}

	if input.JumpPressed {
		jump(e, playerEntry)
	}
}

// jump applies the jump impulse to a grounded player. Gravity-flip levels
// use the heightened force, and a jump while reversed drops back down and
// restores normal gravity.
func jump(e *ecs.ECS, playerEntry *donburi.Entry) {
	physics := components.Physics.Get(playerEntry)
	if !physics.OnGround {
		return
	}
	level := getLevel(e)
	player := components.Player.Get(playerEntry)

	switch {
	case level.Config.GravityFlip && physics.GravityReversed:
		physics.VelocityY = level.HeightenedJumpForce * cfg.Physics.ReturnJumpScale
		physics.GravityReversed = false
		startFlip(playerEntry, 180, 360, true)
		emit(e, components.EventGravityFlipped, "normal")
	case level.Config.GravityFlip:
		physics.VelocityY = level.HeightenedJumpForce
		player.FlipPending = true
	default:
		physics.VelocityY = level.JumpForce
	}
	physics.OnGround = false
}
