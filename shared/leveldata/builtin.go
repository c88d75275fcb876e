package leveldata

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownLevel = errors.New("unknown level")

// Screen size the built-in layouts were authored for.
const (
	builtinWidth  = DefaultWidth
	builtinHeight = DefaultHeight
)

var builtins = []func() *Level{
	coffeeRun,
	upsideDown,
	spikeHall,
	rejection,
}

// BuiltinCount is the number of levels shipped with the game.
func BuiltinCount() int {
	return len(builtins)
}

// Builtin returns a fresh copy of built-in level n (1-based).
func Builtin(n int) (*Level, error) {
	if n < 1 || n > len(builtins) {
		return nil, fmt.Errorf("builtin %d: %w", n, ErrUnknownLevel)
	}
	return builtins[n-1](), nil
}

func ptr(v float64) *float64 {
	return &v
}

// Level 1: walk along a single platform collecting coffee on the way home.
// Poking the player three times kills them.
func coffeeRun() *Level {
	l := &Level{
		Number: 1,
		Name:   "Coffee Run",
		Width:  builtinWidth,
		Height: builtinHeight,
		Spawn:  Point{X: 200, Y: 510},
		Surfaces: []Surface{
			{ID: "platform", Kind: SurfacePlatform, Rect: Centered(670, 600, 1000, 50)},
		},
		Goal:                     &Goal{Rect: Centered(1100, 535, 95, 80)},
		TapPenalty:               true,
		FloorDeathY:              600,
		DeathOverlay:             2 * time.Second,
		ResetCollectiblesOnDeath: true,
	}
	for i, x := range []float64{350, 455, 560, 665, 770, 875, 980} {
		l.Collectibles = append(l.Collectibles, Collectible{
			ID:   fmt.Sprintf("coffee%d", i+1),
			Rect: Centered(x, 550, 22, 35),
		})
	}
	return l
}

// Level 2: a heightened jump flips gravity at its apex so the player walks
// along the underside of two roofs while spinners sweep the gap below.
func upsideDown() *Level {
	return &Level{
		Number:  2,
		Name:    "Upside Down",
		Width:   builtinWidth,
		Height:  builtinHeight,
		Spawn:   Point{X: 110, Y: 590},
		Respawn: &Point{X: 110, Y: 510},
		Surfaces: []Surface{
			{ID: "start", Kind: SurfacePlatform, Rect: Centered(50, 650, 200, 50)},
			{ID: "end", Kind: SurfacePlatform, Rect: Centered(1120, 650, 200, 50)},
			{ID: "return", Kind: SurfacePlatform, Rect: Centered(590, 650, 100, 50)},
			{ID: "roof1", Kind: SurfaceRoof, Rect: Centered(380, 150, 300, 50)},
			{ID: "roof2", Kind: SurfaceRoof, Rect: Centered(830, 150, 300, 50)},
		},
		Hazards: []Hazard{
			{
				ID:     "spinner1",
				Rect:   Centered(100, 450, 100, 80),
				Lethal: true,
				Motion: Motion{Kind: MotionPatrol, Min: 100, Max: 1300, Speed: 5, AngularSpeed: 360},
			},
			{
				ID:     "spinner2",
				Rect:   Centered(1300, 350, 100, 80),
				Lethal: true,
				Motion: Motion{Kind: MotionPatrol, Min: 100, Max: 1300, Speed: 7, Backward: true, AngularSpeed: -540},
			},
		},
		Goal: &Goal{Rect: Centered(1110, 585, 80, 80)},
		HesitationZones: []HesitationZone{
			{ID: "roof1-approach", Rect: Rect{X: 400, Y: 105, W: 130, H: 120}, Threshold: time.Second},
			{ID: "roof2-approach", Rect: Rect{X: 850, Y: 105, W: 130, H: 120}, Threshold: time.Second},
			{ID: "return", Rect: Rect{X: 515, Y: 560, W: 150, H: 120}, Threshold: time.Second},
		},
		GravityFlip:              true,
		InvertFacingWhenReversed: true,
		CeilingDeathY:            50,
		DeathOverlay:             time.Second,
	}
}

// Level 3: three stacked platforms boxed in by walls and a roof, with
// spikes on the middle floor. The last spike slides toward the player.
func spikeHall() *Level {
	return &Level{
		Number: 3,
		Name:   "Spike Hall",
		Width:  builtinWidth,
		Height: builtinHeight,
		Spawn:  Point{X: 200, Y: 300},
		Surfaces: []Surface{
			{ID: "bottom", Kind: SurfacePlatform, Rect: Centered(595, 680, 1140, 50)},
			{ID: "middle", Kind: SurfacePlatform, Rect: Centered(720, 520, 800, 50)},
			{ID: "top", Kind: SurfacePlatform, Rect: Centered(475, 360, 800, 50)},
			{ID: "wall-left", Kind: SurfaceWall, Rect: Centered(50, 420, 50, 490)},
			{ID: "wall-right", Kind: SurfaceWall, Rect: Centered(1140, 420, 50, 490)},
			{ID: "roof", Kind: SurfaceRoof, Rect: Centered(600, 200, 1100, 50)},
		},
		Hazards: []Hazard{
			{ID: "spike1", Rect: Centered(800, 485, 50, 35), Lethal: true},
			{ID: "spike2", Rect: Centered(600, 485, 50, 35), Lethal: true},
			{
				ID:     "spike3",
				Rect:   Centered(400, 485, 50, 35),
				Lethal: true,
				Fools:  true,
				Motion: Motion{Kind: MotionProximity, Radius: 100, TargetX: 300, Speed: 10},
			},
		},
		Goal: &Goal{Rect: Centered(1050, 605, 100, 100)},
		HesitationZones: []HesitationZone{
			{ID: "spike3-approach", Rect: Rect{X: 370, Y: 380, W: 130, H: 120}, Threshold: time.Second},
			{ID: "spike2-approach", Rect: Rect{X: 570, Y: 380, W: 130, H: 120}, Threshold: time.Second},
			{ID: "spike1-approach", Rect: Rect{X: 770, Y: 380, W: 130, H: 120}, Threshold: time.Second},
		},
		DeathOverlay:        400 * time.Millisecond,
		ResetHazardsOnDeath: true,
		TracksFooled:        true,
	}
}

// Level 4: the exit is behind the player. One coffee swaps the controls,
// another is a decoy, and rejection letters drop across the path home.
func rejection() *Level {
	return &Level{
		Number:          4,
		Name:            "Rejection",
		Width:           builtinWidth,
		Height:          builtinHeight,
		Spawn:           Point{X: 1200, Y: 300},
		SpawnFacingLeft: true,
		Surfaces: []Surface{
			{ID: "platform", Kind: SurfacePlatform, Rect: Centered(650, 550, 1200, 50)},
		},
		Collectibles: []Collectible{
			{ID: "coffee1", Rect: Centered(850, 500, 22, 35), Fools: true, SwapsControls: true},
			{ID: "coffee2", Rect: Centered(950, 500, 22, 35)},
			{ID: "coffee3", Rect: Centered(1050, 500, 22, 35), Fools: true},
		},
		Hazards: []Hazard{
			{
				ID:     "rejected1",
				Rect:   Centered(300, 400, 210, 100),
				Lethal: true,
				Motion: Motion{Kind: MotionPatrolVertical, Min: 200, Max: 650, Speed: 9, Backward: true},
			},
			{
				ID:     "rejected2",
				Rect:   Centered(500, 400, 210, 100),
				Lethal: true,
				Motion: Motion{Kind: MotionPatrolVertical, Min: 200, Max: 650, Speed: 7, Backward: true},
			},
			{
				ID:     "rejected3",
				Rect:   Centered(700, 400, 210, 100),
				Fools:  true,
				Motion: Motion{Kind: MotionPatrolVertical, Min: 200, Max: 650, Speed: 5, Backward: true},
			},
		},
		Goal:         &Goal{Rect: Centered(120, 480, 80, 80), RevealLeftOf: ptr(300)},
		DeathOverlay: 2 * time.Second,
		TracksFooled: true,
	}
}
