// Package leveldata describes level layouts: surfaces, hazards, collectibles,
// the goal, hesitation zones and per-level rule overrides. It has no
// dependency on donburi or resolv. Pure data plus validation and loaders.
package leveldata

import (
	"time"

	"github.com/automoto/homebound/shared/gamemath"
)

// Playfield size used when a level leaves it unset.
const (
	DefaultWidth  = 1366
	DefaultHeight = 1024
)

// Point is a position in level space. Y grows downward.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Rect is a top-left anchored rectangle, the convention Tiled uses.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Centered builds a Rect from a centre point and a size.
func Centered(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// AABB converts the rect to a collision box.
func (r Rect) AABB() gamemath.AABB {
	return gamemath.FromRect(r.X, r.Y, r.W, r.H)
}

// Center returns the midpoint of the rect.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// SurfaceKind selects how a static surface blocks the player.
type SurfaceKind string

const (
	SurfacePlatform SurfaceKind = "platform" // one-way, lands only when falling onto the top
	SurfaceWall     SurfaceKind = "wall"     // blocks horizontal movement from both sides
	SurfaceRoof     SurfaceKind = "roof"     // solid from above and below
)

type Surface struct {
	ID   string      `yaml:"id"`
	Kind SurfaceKind `yaml:"kind"`
	Rect Rect        `yaml:"rect"`
}

// MotionKind selects a hazard motion controller.
type MotionKind string

const (
	MotionStationary     MotionKind = "stationary"
	MotionPatrol         MotionKind = "patrol"
	MotionPatrolVertical MotionKind = "patrol_vertical"
	MotionProximity      MotionKind = "proximity"
	MotionRotating       MotionKind = "rotating"
)

// Motion parameterises a hazard's controller. Bounds and targets refer to
// the hazard's centre. Unused fields are ignored by the selected kind.
type Motion struct {
	Kind MotionKind `yaml:"kind"`

	// patrol / patrol_vertical
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Speed float64 `yaml:"speed"`
	// Backward starts the patrol moving toward Min.
	Backward bool `yaml:"backward"`

	// proximity
	Radius  float64 `yaml:"radius"`
	TargetX float64 `yaml:"target_x"`

	// Degrees per second. Negative spins counter-clockwise. Applies to every kind.
	AngularSpeed float64 `yaml:"angular_speed"`
}

type Hazard struct {
	ID     string `yaml:"id"`
	Rect   Rect   `yaml:"rect"`
	Lethal bool   `yaml:"lethal"`
	// Fools marks a decoy: touching it counts as being fooled once per life.
	Fools  bool   `yaml:"fools"`
	Motion Motion `yaml:"motion"`
}

type Collectible struct {
	ID     string `yaml:"id"`
	Rect   Rect   `yaml:"rect"`
	Lethal bool   `yaml:"lethal"`
	Fools  bool   `yaml:"fools"`
	// SwapsControls exchanges Left and Right for the rest of the level.
	SwapsControls bool `yaml:"swaps_controls"`
}

type Goal struct {
	Rect Rect `yaml:"rect"`
	// RevealLeftOf hides the goal until the player's x is at or below it.
	RevealLeftOf *float64 `yaml:"reveal_left_of"`
}

type HesitationZone struct {
	ID        string        `yaml:"id"`
	Rect      Rect          `yaml:"rect"`
	Threshold time.Duration `yaml:"threshold"`
}

// Level is the static configuration of one level. It is immutable once a
// session has loaded it.
type Level struct {
	Number int     `yaml:"number"`
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Spawn           Point  `yaml:"spawn"`
	Respawn         *Point `yaml:"respawn"`
	SpawnFacingLeft bool   `yaml:"spawn_facing_left"`

	Surfaces        []Surface        `yaml:"surfaces"`
	Hazards         []Hazard         `yaml:"hazards"`
	Collectibles    []Collectible    `yaml:"collectibles"`
	Goal            *Goal            `yaml:"goal"`
	HesitationZones []HesitationZone `yaml:"hesitation_zones"`

	// Zero values fall back to config.Physics.
	Gravity             float64 `yaml:"gravity"`
	JumpForce           float64 `yaml:"jump_force"`
	HeightenedJumpForce float64 `yaml:"heightened_jump_force"`

	GravityFlip              bool `yaml:"gravity_flip"`
	InvertFacingWhenReversed bool `yaml:"invert_facing_when_reversed"`
	TapPenalty               bool `yaml:"tap_penalty"`

	// FloorDeathY kills the player below this y. Zero means Height+100.
	FloorDeathY float64 `yaml:"floor_death_y"`
	// CeilingDeathY kills an airborne player above this y. Zero disables it.
	CeilingDeathY float64 `yaml:"ceiling_death_y"`

	// Zero falls back to config.Session.DeathOverlay.
	DeathOverlay time.Duration `yaml:"death_overlay"`

	ResetCollectiblesOnDeath bool `yaml:"reset_collectibles_on_death"`
	ResetHazardsOnDeath      bool `yaml:"reset_hazards_on_death"`

	// TracksFooled is false for levels without decoys; scoring then
	// estimates the fooled count from the other signals.
	TracksFooled bool `yaml:"tracks_fooled"`
}

// RespawnPoint returns where the player reappears after a death.
func (l *Level) RespawnPoint() Point {
	if l.Respawn != nil {
		return *l.Respawn
	}
	return l.Spawn
}

// FloorLimit returns the y below which the player dies.
func (l *Level) FloorLimit() float64 {
	if l.FloorDeathY != 0 {
		return l.FloorDeathY
	}
	h := l.Height
	if h == 0 {
		h = DefaultHeight
	}
	return h + 100
}
