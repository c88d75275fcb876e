package systems

import (
	"testing"
	"time"

	"github.com/automoto/homebound/components"
	"github.com/automoto/homebound/shared/leveldata"
)

func hesitationLevel(threshold time.Duration) *leveldata.Level {
	level := floorLevel()
	level.HesitationZones = []leveldata.HesitationZone{
		{ID: "ledge", Rect: leveldata.Rect{X: 150, Y: 500, W: 100, H: 100}, Threshold: threshold},
	}
	return level
}

func TestHesitationCountsOncePerThreshold(t *testing.T) {
	h := newHarness(t, hesitationLevel(time.Second))
	h.run(1) // timer starts here

	h.runFor(2 * time.Second)
	if got := h.telemetry().HesitationCount; got != 2 {
		t.Errorf("HesitationCount after 2x threshold = %d, want 2", got)
	}

	h.runFor(500 * time.Millisecond)
	if got := h.telemetry().HesitationCount; got != 2 {
		t.Errorf("HesitationCount mid-threshold = %d, want 2", got)
	}
	if got := h.events(components.EventHesitated); got != 2 {
		t.Errorf("hesitated events = %d, want 2", got)
	}
}

func TestMovingResetsHesitationTimer(t *testing.T) {
	h := newHarness(t, hesitationLevel(time.Second))
	h.run(1)

	h.runFor(900 * time.Millisecond)
	h.input().Right = true
	h.run(1)
	h.input().Right = false

	h.runFor(900 * time.Millisecond)
	if got := h.telemetry().HesitationCount; got != 0 {
		t.Errorf("HesitationCount = %d, want 0 after moving", got)
	}
	h.runFor(200 * time.Millisecond)
	if got := h.telemetry().HesitationCount; got != 1 {
		t.Errorf("HesitationCount = %d, want 1", got)
	}
}

func TestHesitationNeedsGround(t *testing.T) {
	h := newHarness(t, hesitationLevel(100*time.Millisecond))
	h.run(1)

	h.jump()
	h.runFor(300 * time.Millisecond)
	if got := h.telemetry().HesitationCount; got != 0 {
		t.Errorf("HesitationCount while airborne = %d, want 0", got)
	}
}

func TestZoneWithoutThresholdUsesDefault(t *testing.T) {
	h := newHarness(t, hesitationLevel(0))
	h.run(1)

	h.runFor(990 * time.Millisecond)
	if got := h.telemetry().HesitationCount; got != 0 {
		t.Errorf("HesitationCount = %d, want 0 before the default threshold", got)
	}
	h.run(1)
	if got := h.telemetry().HesitationCount; got != 1 {
		t.Errorf("HesitationCount = %d, want 1", got)
	}
}

func TestDeathMarkersCycleVariants(t *testing.T) {
	h := newHarness(t, floorLevel())
	h.run(1)

	for i := 0; i < 6; i++ {
		if !KillPlayer(h.ecs, "test") {
			t.Fatalf("death %d refused", i+1)
		}
		if KillPlayer(h.ecs, "again") {
			t.Fatalf("second kill in the same life accepted")
		}
		h.runFor(600 * time.Millisecond)
	}

	markers := h.store.DeathMarkers(1)
	if len(markers) != 6 {
		t.Fatalf("markers = %d, want 6", len(markers))
	}
	for i, m := range markers {
		if want := (i + 1) % 5; m.Variant != want {
			t.Errorf("marker %d variant = %d, want %d", i, m.Variant, want)
		}
		if m.Rotation < -30 || m.Rotation > 30 {
			t.Errorf("marker %d rotation = %v, want within ±30", i, m.Rotation)
		}
	}
	if got := h.level().Life; got != 6 {
		t.Errorf("Life = %d, want 6", got)
	}
}
