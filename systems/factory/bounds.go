package factory

import (
	cfg "github.com/automoto/homebound/config"
	"github.com/automoto/homebound/shared/gamemath"
	"github.com/automoto/homebound/shared/leveldata"
)

// levelBounds covers the playfield and every piece of level geometry,
// including the full travel of moving hazards and the death lines, padded
// by a player size on every side.
func levelBounds(level *leveldata.Level) gamemath.AABB {
	width, height := level.Width, level.Height
	if width <= 0 {
		width = leveldata.DefaultWidth
	}
	if height <= 0 {
		height = leveldata.DefaultHeight
	}
	b := gamemath.FromRect(0, 0, width, height)

	pw, ph := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	addPoint := func(p leveldata.Point) {
		b = b.Union(gamemath.FromCenter(p.X, p.Y, pw, ph))
	}
	addRect := func(r leveldata.Rect) {
		b = b.Union(r.AABB())
	}

	addPoint(level.Spawn)
	if level.Respawn != nil {
		addPoint(*level.Respawn)
	}
	for _, s := range level.Surfaces {
		addRect(s.Rect)
	}
	for _, h := range level.Hazards {
		addRect(h.Rect)
		c := h.Rect.Center()
		m := h.Motion
		switch m.Kind {
		case leveldata.MotionPatrol:
			addRect(leveldata.Centered(m.Min, c.Y, h.Rect.W, h.Rect.H))
			addRect(leveldata.Centered(m.Max, c.Y, h.Rect.W, h.Rect.H))
		case leveldata.MotionPatrolVertical:
			addRect(leveldata.Centered(c.X, m.Min, h.Rect.W, h.Rect.H))
			addRect(leveldata.Centered(c.X, m.Max, h.Rect.W, h.Rect.H))
		case leveldata.MotionProximity:
			addRect(leveldata.Centered(m.TargetX, c.Y, h.Rect.W, h.Rect.H))
		}
	}
	for _, c := range level.Collectibles {
		addRect(c.Rect)
	}
	if level.Goal != nil {
		addRect(level.Goal.Rect)
	}
	for _, z := range level.HesitationZones {
		addRect(z.Rect)
	}

	// Down to the floor death line so falling players stay on the grid.
	b = b.Union(gamemath.AABB{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: level.FloorLimit()})
	if level.CeilingDeathY != 0 {
		b = b.Union(gamemath.AABB{MinX: b.MinX, MinY: level.CeilingDeathY, MaxX: b.MaxX, MaxY: b.MaxY})
	}

	return gamemath.AABB{
		MinX: b.MinX - pw,
		MinY: b.MinY - ph,
		MaxX: b.MaxX + pw,
		MaxY: b.MaxY + ph,
	}
}
