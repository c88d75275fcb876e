package systems

import (
	"testing"
	"time"

	"github.com/automoto/homebound/components"
	"github.com/automoto/homebound/config"
	"github.com/automoto/homebound/shared/leveldata"
)

// These tests step the clock by config.TickDuration(), which truncates
// 1/60 s, so whole-second rules must still land on whole ticks.

func TestHesitationAtTickRate(t *testing.T) {
	level := floorLevel()
	level.HesitationZones = []leveldata.HesitationZone{
		{ID: "spawn", Rect: leveldata.Rect{X: 100, Y: 500, W: 200, H: 120}, Threshold: time.Second},
	}
	h := newHarness(t, level)

	// The first tick grounds the player and starts the zone timer.
	h.tick(1)
	h.tick(59)
	if got := h.telemetry().HesitationCount; got != 0 {
		t.Fatalf("hesitation after 59 ticks = %d, want 0", got)
	}
	h.tick(1)
	if got := h.telemetry().HesitationCount; got != 1 {
		t.Fatalf("hesitation after 60 ticks = %d, want 1", got)
	}
	h.tick(60)
	if got := h.telemetry().HesitationCount; got != 2 {
		t.Errorf("hesitation after 120 ticks = %d, want 2", got)
	}

	h.tick(600)
	if got := h.telemetry().HesitationCount; got != 12 {
		t.Errorf("hesitation after 720 ticks = %d, want 12", got)
	}
}

func TestGreetingHoldAtTickRate(t *testing.T) {
	h := newHarness(t, floorLevel())
	h.tick(1)

	h.input().Taps++
	h.tick(1)
	if h.state() != config.Greeting {
		t.Fatalf("state after tap = %v, want %v", h.state(), config.Greeting)
	}

	h.tick(59)
	if !h.player().Greeting {
		t.Fatalf("greeting ended after 59 ticks, want it held for 60")
	}
	h.tick(1)
	if h.player().Greeting || h.state() == config.Greeting {
		t.Errorf("greeting still held after 60 ticks, state = %v", h.state())
	}
}

func TestIdleToPhoneAtTickRate(t *testing.T) {
	h := newHarness(t, floorLevel())

	h.tick(179)
	if h.state() != config.Idle {
		t.Fatalf("state after 179 ticks = %v, want %v", h.state(), config.Idle)
	}
	h.tick(1)
	if h.state() != config.UsingPhone {
		t.Errorf("state after 180 ticks = %v, want %v", h.state(), config.UsingPhone)
	}
}

func TestDeathOverlayAtTickRate(t *testing.T) {
	h := newHarness(t, floorLevel()) // 500ms overlay, 30 ticks
	h.tick(1)

	if !KillPlayer(h.ecs, "test") {
		t.Fatalf("KillPlayer = false, want true")
	}
	h.tick(29)
	if !h.dead() {
		t.Fatalf("respawned after 29 ticks, want 30")
	}
	h.tick(1)
	if h.dead() {
		t.Errorf("still dead after 30 ticks")
	}
}

func TestScheduledEventsLandOnWholeTicks(t *testing.T) {
	tests := []struct {
		delay time.Duration
		ticks int
	}{
		{time.Second, 60},
		{2 * time.Second, 120},
		{500 * time.Millisecond, 30},
		{400 * time.Millisecond, 24},
	}
	for _, tt := range tests {
		t.Run(tt.delay.String(), func(t *testing.T) {
			h := newHarness(t, floorLevel())
			h.tick(1)
			h.level().SwapMessage = true
			Schedule(h.ecs, components.ScheduledSwapMessageEnd, tt.delay)

			h.tick(tt.ticks - 1)
			if !h.level().SwapMessage {
				t.Fatalf("fired after %d ticks, want %d", tt.ticks-1, tt.ticks)
			}
			h.tick(1)
			if h.level().SwapMessage {
				t.Errorf("not fired after %d ticks", tt.ticks)
			}
		})
	}
}
