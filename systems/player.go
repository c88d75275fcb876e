package systems

import (
	"time"

	"github.com/automoto/homebound/components"
	cfg "github.com/automoto/homebound/config"
	"github.com/automoto/homebound/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerState advances the flip rotation, facing, the discrete state
// and the walk cycle. A dead player is left untouched.
func UpdatePlayerState(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}

	level := getLevel(ecs)
	t := level.Clock.Now()
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)

	updateFlip(playerEntry)

	// Gravity reverses at the apex of a flip jump
	if player.FlipPending && !physics.OnGround && !physics.GravityReversed &&
		physics.VelocityY >= cfg.Physics.ApexVelocity {
		player.FlipPending = false
		physics.GravityReversed = true
		player.FacingRight = false
		startFlip(playerEntry, 0, 180, false)
		emit(ecs, components.EventGravityFlipped, "reversed")
	}
	if physics.OnGround {
		player.FlipPending = false
	}

	updateFacing(level, player, physics)

	if isMoving(player) || !physics.OnGround {
		player.IdleSince = t
	}

	if !player.Greeting {
		transitionToMovementState(player, physics, state, t)
	}
	updateWalkFrame(player, state, t)
}

// isMoving reports net horizontal movement. Holding both directions
// cancels out.
func isMoving(player *components.PlayerData) bool {
	return player.MovingLeft != player.MovingRight
}

func updateFacing(level *components.LevelData, player *components.PlayerData, physics *components.PhysicsData) {
	if !isMoving(player) {
		return
	}
	facingRight := player.MovingRight
	if level.Config.InvertFacingWhenReversed && physics.GravityReversed {
		facingRight = !facingRight
	}
	player.FacingRight = facingRight
}

// transitionToMovementState picks the state implied by the physics and
// movement flags.
func transitionToMovementState(player *components.PlayerData, physics *components.PhysicsData, state *components.StateData, t time.Time) {
	switch {
	case !physics.OnGround:
		setState(state, cfg.Jumping, t)
	case isMoving(player):
		setState(state, cfg.Walking, t)
	case state.CurrentState == cfg.UsingPhone:
		// stays until the player moves or leaves the ground
	case state.CurrentState == cfg.Idle &&
		reached(t.Sub(latest(player.IdleSince, state.EnteredAt)), cfg.StateMachine.IdleToPhone):
		setState(state, cfg.UsingPhone, t)
	default:
		setState(state, cfg.Idle, t)
	}
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func setState(state *components.StateData, next cfg.StateID, t time.Time) {
	if state.CurrentState == next {
		return
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.EnteredAt = t
}

// updateWalkFrame cycles the walk animation on clock time while walking
// and parks it on the first frame otherwise.
func updateWalkFrame(player *components.PlayerData, state *components.StateData, t time.Time) {
	if state.CurrentState != cfg.Walking {
		player.WalkFrame = 1
		player.LastFrameAt = t
		return
	}
	interval := cfg.StateMachine.WalkFrameInterval
	if !reached(t.Sub(player.LastFrameAt), interval) {
		return
	}
	count := cfg.StateMachine.WalkFrameCount
	if count <= 0 {
		count = 1
	}
	player.WalkFrame = player.WalkFrame%count + 1
	// Frames keep the interval's cadence unless the clock jumped ahead.
	player.LastFrameAt = player.LastFrameAt.Add(interval)
	if reached(t.Sub(player.LastFrameAt), interval) {
		player.LastFrameAt = t
	}
}

// TapPlayer handles a direct tap on the player. On tap-penalty levels the
// last allowed tap of a life kills the player. Otherwise the player greets
// for a while. Taps during a greeting are ignored.
func TapPlayer(e *ecs.ECS, playerEntry *donburi.Entry) {
	if playerEntry.HasComponent(components.Death) {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Greeting {
		return
	}
	level := getLevel(e)

	player.Taps++
	if level.Config.TapPenalty && player.Taps >= cfg.StateMachine.TapsToDie {
		player.Taps = 0
		KillPlayer(e, CauseTapped)
		return
	}

	player.Greeting = true
	setState(components.State.Get(playerEntry), cfg.Greeting, level.Clock.Now())
	Schedule(e, components.ScheduledGreetingEnd, cfg.StateMachine.GreetingHold)
	emit(e, components.EventGreeted, "")
}

// endGreeting releases the greeting hold and falls back to the state the
// physics implies.
func endGreeting(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}
	player := components.Player.Get(playerEntry)
	if !player.Greeting {
		return
	}
	player.Greeting = false
	t := now(e)
	player.IdleSince = t
	transitionToMovementState(player, components.Physics.Get(playerEntry), components.State.Get(playerEntry), t)
}

// startFlip tweens the player's rotation between two angles over the
// configured flip duration. With wrap the rotation snaps to 0 at the end.
func startFlip(playerEntry *donburi.Entry, from, to float64, wrap bool) {
	flip := components.Flip.Get(playerEntry)
	flip.Tween = gween.New(float32(from), float32(to), float32(cfg.Player.FlipDuration), ease.Linear)
	flip.Wrap = wrap
	components.Transform.Get(playerEntry).Rotation = from
}

func updateFlip(playerEntry *donburi.Entry) {
	flip := components.Flip.Get(playerEntry)
	if flip.Tween == nil {
		return
	}
	rotation, done := flip.Tween.Update(float32(tickSeconds()))
	transform := components.Transform.Get(playerEntry)
	transform.Rotation = float64(rotation)
	if done {
		if flip.Wrap {
			transform.Rotation = 0
		}
		flip.Tween = nil
	}
}
