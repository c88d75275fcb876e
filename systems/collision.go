package systems

import (
	"log"
	"math"

	"github.com/automoto/homebound/components"
	cfg "github.com/automoto/homebound/config"
	"github.com/automoto/homebound/shared/gamemath"
	"github.com/automoto/homebound/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactEpsilon absorbs float error when a resting player's bottom edge is
// compared against the surface it was snapped to.
const contactEpsilon = 1e-6

// broadPhaseMargin pads the swept player box used to query the space.
const broadPhaseMargin = 2

// UpdateCollisions resolves the integrated player against walls, platforms
// and roofs, then applies hazard, collectible and goal contact.
func UpdateCollisions(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}

	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	transform := components.Transform.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	prev := gamemath.FromCenter(physics.Previous.X, physics.Previous.Y, player.Width, player.Height)
	cand := gamemath.FromCenter(transform.Position.X, physics.CandidateY, player.Width, player.Height)
	sweep := prev.Union(cand).Inflate(broadPhaseMargin)

	resolveWalls(physics, transform, player, nearby(ecs, obj, sweep, tags.ResolvWall))
	resolveVertical(physics, transform, player,
		nearby(ecs, obj, sweep, tags.ResolvPlatform),
		nearby(ecs, obj, sweep, tags.ResolvRoof),
	)

	box := gamemath.FromCenter(transform.Position.X, transform.Position.Y, player.Width, player.Height)
	obj.SetBox(box)

	if checkHazards(ecs, box, nearby(ecs, obj, box.Inflate(broadPhaseMargin), tags.ResolvHazard)) {
		return
	}
	if checkCollectibles(ecs, playerEntry, box, nearby(ecs, obj, box.Inflate(broadPhaseMargin), tags.ResolvCollectible)) {
		return
	}
	checkGoal(ecs, playerEntry, box)
}

// nearby returns the entries whose objects share a cell with query. The
// player's own object is stretched over query for the lookup and restored
// afterwards. Queries that reach outside the grid scan every tagged object
// instead.
func nearby(e *ecs.ECS, obj *components.ObjectData, query gamemath.AABB, resolvTag string) []*donburi.Entry {
	if spaceEntry, ok := components.Space.First(e.World); !ok || !components.Space.Get(spaceEntry).Bounds.ContainsBox(query) {
		return scanTagged(e, query, resolvTag)
	}

	saved := obj.Box()
	obj.SetBox(query)
	defer obj.SetBox(saved)

	check := obj.Check(0, 0, resolvTag)
	if check == nil {
		return nil
	}

	var out []*donburi.Entry
	for _, o := range check.ObjectsByTags(resolvTag) {
		if entry, ok := o.Data.(*donburi.Entry); ok && entry != nil && entry.Valid() {
			out = append(out, entry)
		}
	}
	return out
}

// scanTagged is the grid-free lookup: every object carrying resolvTag whose
// box touches query.
func scanTagged(e *ecs.ECS, query gamemath.AABB, resolvTag string) []*donburi.Entry {
	var out []*donburi.Entry
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		if !o.HasTags(resolvTag) {
			return
		}
		b := o.Box()
		if b.MinX <= query.MaxX && b.MaxX >= query.MinX && b.MinY <= query.MaxY && b.MaxY >= query.MinY {
			out = append(out, entry)
		}
	})
	return out
}

// resolveWalls pushes the player out of any wall it overlaps, to the side
// it came from.
func resolveWalls(physics *components.PhysicsData, transform *components.TransformData, player *components.PlayerData, walls []*donburi.Entry) {
	halfW := player.Width / 2
	dx := transform.Position.X - physics.Previous.X

	for _, wallEntry := range walls {
		wall := components.Object.Get(wallEntry).Box()
		cand := gamemath.FromCenter(transform.Position.X, physics.CandidateY, player.Width, player.Height)
		if !cand.Intersects(wall) {
			continue
		}

		switch {
		case dx > 0:
			transform.Position.X = wall.MinX - halfW
		case dx < 0:
			transform.Position.X = wall.MaxX + halfW
		default:
			wx, _ := wall.Center()
			if transform.Position.X < wx {
				transform.Position.X = wall.MinX - halfW
			} else {
				transform.Position.X = wall.MaxX + halfW
			}
		}
	}
}

// resolveVertical settles the candidate y against one-way platforms and
// solid roofs. Moving down onto a top face stops there, and moving up into
// a roof's bottom face stops below it. The player is only supported by the
// face gravity pulls toward, so a reversed player stands on roof
// undersides and a normal one bumps its head. Platforms are passed through
// from below. With no contact the candidate is accepted and the player is
// airborne.
func resolveVertical(physics *components.PhysicsData, transform *components.TransformData, player *components.PlayerData, platforms, roofs []*donburi.Entry) {
	halfH := player.Height / 2
	vy := physics.VelocityY
	x := transform.Position.X

	prev := gamemath.FromCenter(x, physics.Previous.Y, player.Width, player.Height)
	cand := gamemath.FromCenter(x, physics.CandidateY, player.Width, player.Height)

	if vy >= 0 {
		top, found := math.Inf(1), false
		for _, entries := range [][]*donburi.Entry{platforms, roofs} {
			for _, entry := range entries {
				s := components.Object.Get(entry).Box()
				if !prev.OverlapsX(s) {
					continue
				}
				if prev.MaxY <= s.MinY+contactEpsilon && cand.MaxY >= s.MinY-contactEpsilon && s.MinY < top {
					top, found = s.MinY, true
				}
			}
		}
		if found {
			transform.Position.Y = top - halfH
			physics.VelocityY = 0
			physics.OnGround = !physics.GravityReversed
			return
		}
	}

	if vy <= 0 {
		bottom, found := math.Inf(-1), false
		for _, entry := range roofs {
			s := components.Object.Get(entry).Box()
			if !prev.OverlapsX(s) {
				continue
			}
			if prev.MinY >= s.MaxY-contactEpsilon && cand.MinY <= s.MaxY+contactEpsilon && s.MaxY > bottom {
				bottom, found = s.MaxY, true
			}
		}
		if found {
			transform.Position.Y = bottom + halfH
			physics.VelocityY = 0
			physics.OnGround = physics.GravityReversed
			return
		}
	}

	transform.Position.Y = physics.CandidateY
	physics.OnGround = false
}

// checkHazards applies hazard contact and reports whether the player died.
func checkHazards(e *ecs.ECS, box gamemath.AABB, hazards []*donburi.Entry) bool {
	for _, hazardEntry := range hazards {
		if !components.Object.Get(hazardEntry).Box().Intersects(box) {
			continue
		}
		hazard := components.Hazard.Get(hazardEntry)
		if hazard.Fools {
			markFooled(e, hazard.ID)
		}
		if hazard.Lethal && !hazard.Triggered {
			hazard.Triggered = true
			if KillPlayer(e, "hazard:"+hazard.ID) {
				return true
			}
		}
	}
	return false
}

// checkCollectibles applies collectible contact and reports whether the
// player died. Decoys are never collected.
func checkCollectibles(e *ecs.ECS, playerEntry *donburi.Entry, box gamemath.AABB, collectibles []*donburi.Entry) bool {
	for _, entry := range collectibles {
		c := components.Collectible.Get(entry)
		if c.Collected || !components.Object.Get(entry).Box().Intersects(box) {
			continue
		}
		if c.Lethal {
			if KillPlayer(e, "collectible:"+c.ID) {
				return true
			}
			continue
		}
		if c.SwapsControls {
			swapControls(e, playerEntry)
		}
		if c.Fools {
			markFooled(e, c.ID)
			continue
		}
		c.Collected = true
		emit(e, components.EventCollected, c.ID)
	}
	return false
}

// swapControls exchanges Left and Right for the rest of the level and
// stops the player while the message shows.
func swapControls(e *ecs.ECS, playerEntry *donburi.Entry) {
	level := getLevel(e)
	if level.ControlsSwapped {
		return
	}
	level.ControlsSwapped = true
	level.SwapMessage = true

	player := components.Player.Get(playerEntry)
	player.MovingLeft, player.MovingRight = false, false

	Schedule(e, components.ScheduledSwapMessageEnd, cfg.Session.SwapMessageDuration)
	emit(e, components.EventControlsSwapped, "")
	log.Printf("Level %d: controls swapped", level.Config.Number)
}

// checkGoal reveals a hidden goal once the player crosses its reveal line,
// then completes the level on contact with a revealed goal.
func checkGoal(e *ecs.ECS, playerEntry *donburi.Entry, box gamemath.AABB) {
	goalEntry, ok := tags.Goal.First(e.World)
	if !ok {
		return
	}
	goal := components.Goal.Get(goalEntry)

	if !goal.Revealed {
		x, _ := box.Center()
		if goal.RevealLeftOf == nil || x > *goal.RevealLeftOf {
			return
		}
		goal.Revealed = true
		emit(e, components.EventGoalRevealed, "")
	}

	if goal.Activated || !components.Object.Get(goalEntry).Box().Intersects(box) {
		return
	}
	goal.Activated = true
	CompleteLevel(e, playerEntry)
}
