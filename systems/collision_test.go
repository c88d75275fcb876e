package systems

import (
	"testing"
	"time"

	"github.com/automoto/homebound/components"
	"github.com/automoto/homebound/shared/leveldata"
)

func TestSpawnOnPlatformIsGrounded(t *testing.T) {
	h := newHarness(t, floorLevel())
	h.run(1)

	_, y := h.position()
	if y != 565 {
		t.Errorf("y = %v, want 565", y)
	}
	if !h.physics().OnGround || h.physics().VelocityY != 0 {
		t.Errorf("OnGround = %v, VelocityY = %v, want grounded at rest", h.physics().OnGround, h.physics().VelocityY)
	}
}

func TestFallingLandsExactlyOnTop(t *testing.T) {
	for _, spawnY := range []float64{300, 411.3, 520} {
		level := floorLevel()
		level.Spawn.Y = spawnY
		h := newHarness(t, level)
		h.run(120)

		_, y := h.position()
		if y != 565 {
			t.Errorf("spawn %v: y = %v, want 565", spawnY, y)
		}
		if h.physics().VelocityY != 0 {
			t.Errorf("spawn %v: VelocityY = %v, want 0", spawnY, h.physics().VelocityY)
		}
		if !h.physics().OnGround {
			t.Errorf("spawn %v: expected OnGround", spawnY)
		}
	}
}

func TestJumpReturnsToRestingHeight(t *testing.T) {
	h := newHarness(t, floorLevel())
	h.run(1)
	x0, y0 := h.position()

	h.jump()
	if h.physics().OnGround {
		t.Fatalf("expected player airborne after jump")
	}
	minY := y0
	for i := 0; i < 80; i++ {
		h.run(1)
		if _, y := h.position(); y < minY {
			minY = y
		}
	}

	x, y := h.position()
	if y != y0 || x != x0 {
		t.Errorf("position = (%v, %v), want (%v, %v)", x, y, x0, y0)
	}
	if !h.physics().OnGround || h.physics().VelocityY != 0 {
		t.Errorf("OnGround = %v, VelocityY = %v, want grounded at rest", h.physics().OnGround, h.physics().VelocityY)
	}
	if minY >= y0-100 {
		t.Errorf("apex y = %v, want well above %v", minY, y0)
	}
}

func TestPlatformPassThroughFromBelow(t *testing.T) {
	level := floorLevel()
	// Top at 480, bottom at 500; the player's head starts at 530.
	level.Surfaces = append(level.Surfaces, leveldata.Surface{
		ID: "ledge", Kind: leveldata.SurfacePlatform, Rect: leveldata.Centered(200, 490, 200, 20),
	})
	h := newHarness(t, level)
	h.run(1)

	h.jump()
	passed := false
	for i := 0; i < 80; i++ {
		h.run(1)
		physics := h.physics()
		_, y := h.position()
		if physics.VelocityY < 0 && physics.OnGround {
			t.Fatalf("tick %d: grounded while rising at y=%v", i, y)
		}
		if y+35 < 480 {
			passed = true
		}
	}
	if !passed {
		t.Errorf("player never rose past the ledge")
	}

	_, y := h.position()
	if y != 445 || !h.physics().OnGround {
		t.Errorf("y = %v, OnGround = %v, want standing on ledge at 445", y, h.physics().OnGround)
	}
}

func TestRoofBlocksHeadWithoutGrounding(t *testing.T) {
	level := floorLevel()
	// Bottom face at 480, 50 above the player's head.
	level.Surfaces = append(level.Surfaces, leveldata.Surface{
		ID: "roof", Kind: leveldata.SurfaceRoof, Rect: leveldata.Centered(200, 455, 300, 50),
	})
	h := newHarness(t, level)
	h.run(1)

	h.jump()
	for i := 0; i < 10; i++ {
		h.run(1)
		if _, y := h.position(); y-35 < 480 {
			t.Fatalf("tick %d: head at %v went through the roof", i, y-35)
		}
	}
	h.run(60)

	_, y := h.position()
	if y != 565 || !h.physics().OnGround {
		t.Errorf("y = %v, OnGround = %v, want back on the floor", y, h.physics().OnGround)
	}
}

func TestWallClampsHorizontalMovement(t *testing.T) {
	level := floorLevel()
	level.Surfaces = append(level.Surfaces, leveldata.Surface{
		ID: "wall", Kind: leveldata.SurfaceWall, Rect: leveldata.Centered(300, 565, 20, 200),
	})
	h := newHarness(t, level)
	h.run(1)

	h.input().Right = true
	h.run(30)

	x, _ := h.position()
	if x != 265 {
		t.Errorf("x = %v, want 265 (flush with the wall)", x)
	}

	h.input().Right = false
	h.input().Left = true
	h.run(1)
	if x, _ := h.position(); x != 258 {
		t.Errorf("after moving away x = %v, want 258", x)
	}
}

func TestWalkingOffPlatformFalls(t *testing.T) {
	level := floorLevel()
	level.Spawn.X = 190
	h := newHarness(t, level)
	h.run(1)

	h.input().Left = true
	h.run(10)

	if h.physics().OnGround {
		t.Errorf("expected player airborne past the platform edge")
	}
}

func TestHazardDeathIsIdempotent(t *testing.T) {
	level := floorLevel()
	level.Hazards = []leveldata.Hazard{
		{ID: "spike1", Rect: leveldata.Centered(200, 565, 40, 40), Lethal: true},
		{ID: "spike2", Rect: leveldata.Centered(210, 565, 40, 40), Lethal: true},
	}
	h := newHarness(t, level)

	h.run(30) // 300ms, inside the death overlay
	if got := h.telemetry().LevelDeaths; got != 1 {
		t.Errorf("LevelDeaths = %d, want 1", got)
	}
	if got := h.events(components.EventDied); got != 1 {
		t.Errorf("died events = %d, want 1", got)
	}
	if !h.dead() {
		t.Errorf("expected player dead during overlay")
	}

	// Respawn lands back on the spikes: a new life dies once more.
	h.runFor(500 * time.Millisecond)
	if got := h.telemetry().LevelDeaths; got != 2 {
		t.Errorf("LevelDeaths after respawn = %d, want 2", got)
	}
	if got := h.store.TotalDeathCount(); got != 2 {
		t.Errorf("TotalDeathCount = %d, want 2", got)
	}
	if got := len(h.store.DeathMarkers(1)); got != 2 {
		t.Errorf("markers = %d, want 2", got)
	}
}

func TestTouchingHazardDoesNotKill(t *testing.T) {
	level := floorLevel()
	// Player spans x 175..225 and y 530..600.
	level.Hazards = []leveldata.Hazard{
		{ID: "right", Rect: leveldata.Rect{X: 225, Y: 530, W: 40, H: 70}, Lethal: true},
		{ID: "above", Rect: leveldata.Rect{X: 175, Y: 490, W: 50, H: 40}, Lethal: true},
	}
	h := newHarness(t, level)
	h.run(20)

	if h.dead() || h.telemetry().LevelDeaths != 0 {
		t.Errorf("touching edges killed the player (deaths %d)", h.telemetry().LevelDeaths)
	}
}

func TestFooledOncePerLife(t *testing.T) {
	level := floorLevel()
	level.Hazards = []leveldata.Hazard{
		{ID: "decoy", Rect: leveldata.Centered(200, 565, 40, 40), Fools: true},
	}
	h := newHarness(t, level)

	h.run(20)
	if got := h.telemetry().TimesFooled; got != 1 {
		t.Errorf("TimesFooled = %d, want 1", got)
	}

	// Step off and back on within the same life.
	h.input().Right = true
	h.run(10)
	h.input().Right = false
	h.input().Left = true
	h.run(10)
	h.input().Left = false
	if got := h.telemetry().TimesFooled; got != 1 {
		t.Errorf("TimesFooled after re-entering = %d, want 1", got)
	}

	if !KillPlayer(h.ecs, "test") {
		t.Fatalf("KillPlayer returned false")
	}
	h.runFor(600 * time.Millisecond)
	if h.dead() {
		t.Fatalf("expected respawn after the overlay")
	}
	if got := h.telemetry().TimesFooled; got != 2 {
		t.Errorf("TimesFooled after respawn = %d, want 2", got)
	}
}

func TestCollectiblesAndDecoys(t *testing.T) {
	level := floorLevel()
	level.Collectibles = []leveldata.Collectible{
		{ID: "coffee", Rect: leveldata.Centered(260, 580, 22, 35)},
		{ID: "fake", Rect: leveldata.Centered(320, 580, 22, 35), Fools: true},
	}
	h := newHarness(t, level)
	h.run(1)

	h.input().Right = true
	h.run(20)

	if !collectibleByID(h.ecs, "coffee").Collected {
		t.Errorf("coffee should be collected")
	}
	if collectibleByID(h.ecs, "fake").Collected {
		t.Errorf("decoy should never be collected")
	}
	if got := h.telemetry().TimesFooled; got != 1 {
		t.Errorf("TimesFooled = %d, want 1", got)
	}
}

func TestLethalCollectibleKills(t *testing.T) {
	level := floorLevel()
	level.Collectibles = []leveldata.Collectible{
		{ID: "bad", Rect: leveldata.Centered(200, 580, 22, 35), Lethal: true},
	}
	h := newHarness(t, level)
	h.run(1)

	if !h.dead() {
		t.Errorf("expected death from lethal collectible")
	}
	if collectibleByID(h.ecs, "bad").Collected {
		t.Errorf("lethal collectible should not be collected")
	}
}

func TestCollectiblesResetOnDeath(t *testing.T) {
	level := floorLevel()
	level.ResetCollectiblesOnDeath = true
	level.Collectibles = []leveldata.Collectible{
		{ID: "coffee", Rect: leveldata.Centered(260, 580, 22, 35)},
	}
	h := newHarness(t, level)
	h.run(1)
	h.input().Right = true
	h.run(10)
	h.input().Right = false
	if !collectibleByID(h.ecs, "coffee").Collected {
		t.Fatalf("coffee should be collected")
	}

	KillPlayer(h.ecs, "test")
	h.runFor(600 * time.Millisecond)
	if collectibleByID(h.ecs, "coffee").Collected {
		t.Errorf("coffee should be back after respawn")
	}
}

func TestControlSwapPersistsAcrossDeath(t *testing.T) {
	level := floorLevel()
	level.Collectibles = []leveldata.Collectible{
		{ID: "coffee1", Rect: leveldata.Centered(200, 580, 22, 35), Fools: true, SwapsControls: true},
	}
	h := newHarness(t, level)
	h.run(1)

	if !h.level().ControlsSwapped || !h.level().SwapMessage {
		t.Fatalf("expected controls swapped with message showing")
	}
	if got := h.telemetry().TimesFooled; got != 1 {
		t.Errorf("TimesFooled = %d, want 1", got)
	}

	x0, _ := h.position()
	h.input().Right = true
	h.run(5)
	h.input().Right = false
	if x, _ := h.position(); x != x0-35 {
		t.Errorf("x after holding Right = %v, want %v", x, x0-35)
	}

	h.runFor(2 * time.Second)
	if h.level().SwapMessage {
		t.Errorf("swap message should clear after its duration")
	}

	KillPlayer(h.ecs, "test")
	h.runFor(600 * time.Millisecond)
	if !h.level().ControlsSwapped {
		t.Errorf("controls should stay swapped after a death")
	}
}

func TestGoalCompletesLevel(t *testing.T) {
	level := floorLevel()
	level.Goal = &leveldata.Goal{Rect: leveldata.Centered(260, 565, 20, 70)}
	h := newHarness(t, level)
	h.run(1)

	h.input().Right = true
	h.run(10)

	if !IsLevelComplete(h.ecs) {
		t.Fatalf("expected level complete")
	}
	if !h.store.IsLevelUnlocked(2) {
		t.Errorf("level 2 should be unlocked")
	}
	if got := h.events(components.EventCompleted); got != 1 {
		t.Errorf("completed events = %d, want 1", got)
	}

	x, _ := h.position()
	spent := h.telemetry().TimeSpent
	h.run(10)
	if x2, _ := h.position(); x2 != x {
		t.Errorf("player moved after completion: %v -> %v", x, x2)
	}
	if h.telemetry().TimeSpent != spent || TimeSpent(h.ecs) != spent {
		t.Errorf("TimeSpent changed after completion")
	}
	if KillPlayer(h.ecs, "late") {
		t.Errorf("KillPlayer after completion should be refused")
	}
}

func TestHiddenGoalIgnoredUntilRevealed(t *testing.T) {
	level := floorLevel()
	level.Spawn.X = 400
	level.Goal = &leveldata.Goal{
		Rect:         leveldata.Centered(400, 565, 60, 70),
		RevealLeftOf: func() *float64 { v := 300.0; return &v }(),
	}
	h := newHarness(t, level)
	h.run(5)
	if IsLevelComplete(h.ecs) {
		t.Fatalf("hidden goal completed the level")
	}

	h.input().Left = true
	h.run(16) // x = 288
	if got := h.events(components.EventGoalRevealed); got != 1 {
		t.Errorf("goal_revealed events = %d, want 1", got)
	}

	h.input().Left = false
	h.input().Right = true
	h.run(10)
	if !IsLevelComplete(h.ecs) {
		t.Errorf("revealed goal should complete the level")
	}
}

func TestFallingOutOfLevelKills(t *testing.T) {
	level := floorLevel()
	level.Spawn.X = 100 // left of the platform
	h := newHarness(t, level)
	h.run(40)

	if h.telemetry().LevelDeaths == 0 {
		t.Fatalf("expected a fall death")
	}
	if got := components.Death.Get(h.playerEntry()).Cause; got != CauseFell {
		t.Errorf("cause = %q, want %q", got, CauseFell)
	}
}
