package systems

import (
	"testing"
	"time"

	"github.com/automoto/homebound/components"
	"github.com/automoto/homebound/shared/gamemath"
	"github.com/automoto/homebound/shared/leveldata"
	"github.com/automoto/homebound/tags"
)

func TestStartPlatformSupportsPastLeftEdgeOfPlayfield(t *testing.T) {
	level, err := leveldata.Builtin(2)
	if err != nil {
		t.Fatalf("Builtin(2): %v", err)
	}
	h := newHarness(t, level)
	h.run(1)
	if _, y := h.position(); y != 590 || !h.physics().OnGround {
		t.Fatalf("y = %v, OnGround = %v, want resting at 590", y, h.physics().OnGround)
	}

	start := leveldata.Centered(50, 650, 200, 50).AABB() // x -50 to 150
	h.input().Left = true
	fell := false
	for i := 1; i <= 40; i++ {
		h.run(1)
		x, y := h.position()
		box := gamemath.FromCenter(x, y, h.player().Width, h.player().Height)
		if box.OverlapsX(start) {
			if y != 590 || !h.physics().OnGround {
				t.Fatalf("tick %d: x = %v, y = %v, OnGround = %v, want supported by the start platform", i, x, y, h.physics().OnGround)
			}
			continue
		}
		if y > 590 {
			fell = true
		}
	}
	if x, _ := h.position(); x >= -75 {
		t.Fatalf("x = %v, want player walked past the platform edge", x)
	}
	if !fell {
		t.Errorf("player did not fall after leaving the start platform")
	}
}

func TestPlatformOutsidePlayfieldSupportsPlayer(t *testing.T) {
	level := &leveldata.Level{
		Number: 1,
		Spawn:  leveldata.Point{X: -300, Y: 565},
		Surfaces: []leveldata.Surface{
			{ID: "ledge", Kind: leveldata.SurfacePlatform, Rect: leveldata.Centered(-300, 625, 200, 50)},
			{ID: "floor", Kind: leveldata.SurfacePlatform, Rect: leveldata.Centered(670, 625, 1000, 50)},
		},
		Goal:         &leveldata.Goal{Rect: leveldata.Centered(1100, 565, 50, 70)},
		DeathOverlay: 500 * time.Millisecond,
	}
	h := newHarness(t, level)
	h.run(20)

	if _, y := h.position(); y != 565 || !h.physics().OnGround {
		t.Errorf("y = %v, OnGround = %v, want resting on the ledge at 565", y, h.physics().OnGround)
	}
	if h.dead() {
		t.Errorf("player died on a ledge left of the playfield")
	}
}

func TestNearbyOutsideGridScansTaggedObjects(t *testing.T) {
	h := newHarness(t, floorLevel())
	obj := components.Object.Get(h.playerEntry())
	before := obj.Box()

	tests := []struct {
		name  string
		query gamemath.AABB
		want  int
	}{
		{"overlaps floor", gamemath.AABB{MinX: -5000, MinY: 590, MaxX: 300, MaxY: 610}, 1},
		{"left of floor", gamemath.AABB{MinX: -5000, MinY: 590, MaxX: -4000, MaxY: 610}, 0},
		{"below everything", gamemath.AABB{MinX: 0, MinY: 9000, MaxX: 100, MaxY: 9100}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nearby(h.ecs, obj, tt.query, tags.ResolvPlatform)
			if len(got) != tt.want {
				t.Errorf("nearby = %d entries, want %d", len(got), tt.want)
			}
		})
	}
	if obj.Box() != before {
		t.Errorf("player box = %v, want untouched %v", obj.Box(), before)
	}
}

func TestNearbyInsideGridUsesSpace(t *testing.T) {
	h := newHarness(t, floorLevel())
	obj := components.Object.Get(h.playerEntry())

	got := nearby(h.ecs, obj, gamemath.AABB{MinX: 180, MinY: 590, MaxX: 260, MaxY: 610}, tags.ResolvPlatform)
	if len(got) != 1 {
		t.Fatalf("nearby = %d entries, want 1", len(got))
	}
	if id := components.Surface.Get(got[0]).ID; id != "floor" {
		t.Errorf("surface = %q, want floor", id)
	}
}
