package systems

import (
	"github.com/automoto/homebound/components"
	"github.com/automoto/homebound/shared/gamemath"
	"github.com/automoto/homebound/shared/leveldata"
	"github.com/automoto/homebound/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards advances every hazard's motion controller by one tick and
// syncs its broad-phase object. Proximity hazards only arm while the
// player is alive.
func UpdateHazards(ecs *ecs.ECS) {
	var px, py float64
	alive := false
	if playerEntry, ok := tags.Player.First(ecs.World); ok && !playerEntry.HasComponent(components.Death) {
		pos := components.Transform.Get(playerEntry).Position
		px, py, alive = pos.X, pos.Y, true
	}
	dt := tickSeconds()

	tags.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		hazard := components.Hazard.Get(e)
		transform := components.Transform.Get(e)
		m := hazard.Motion

		switch m.Kind {
		case leveldata.MotionPatrol:
			transform.Position.X, hazard.Direction = patrol(transform.Position.X, hazard.Direction, m)
		case leveldata.MotionPatrolVertical:
			transform.Position.Y, hazard.Direction = patrol(transform.Position.Y, hazard.Direction, m)
		case leveldata.MotionProximity:
			if !hazard.Armed && alive &&
				gamemath.Distance(px, py, transform.Position.X, transform.Position.Y) < m.Radius {
				hazard.Armed = true
				debugf("hazard %s armed", hazard.ID)
			}
			if hazard.Armed && !hazard.Arrived {
				transform.Position.X, hazard.Arrived = gamemath.Approach(transform.Position.X, m.TargetX, m.Speed)
			}
		}

		if m.AngularSpeed != 0 {
			transform.Rotation = gamemath.WrapDegrees(transform.Rotation + m.AngularSpeed*dt)
		}

		gamemath.MustFinite("hazard position", transform.Position.X, transform.Position.Y)
		components.Object.Get(e).SetBox(gamemath.FromCenter(
			transform.Position.X, transform.Position.Y, hazard.Width, hazard.Height))
	})
}

// patrol moves v one step toward the bound it is heading for and turns
// around on reaching or passing it.
func patrol(v, dir float64, m leveldata.Motion) (float64, float64) {
	v += dir * m.Speed
	if v >= m.Max {
		return m.Max, -1
	}
	if v <= m.Min {
		return m.Min, 1
	}
	return v, dir
}

// resetHazard restores a hazard's starting position and motion state.
func resetHazard(e *donburi.Entry) {
	hazard := components.Hazard.Get(e)
	transform := components.Transform.Get(e)

	transform.Position = hazard.Initial
	transform.Rotation = 0
	hazard.Direction = 1
	if hazard.Motion.Backward {
		hazard.Direction = -1
	}
	hazard.Armed = false
	hazard.Arrived = false

	components.Object.Get(e).SetBox(gamemath.FromCenter(
		transform.Position.X, transform.Position.Y, hazard.Width, hazard.Height))
}
