package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/homebound/components"
	"github.com/automoto/homebound/config"
	"github.com/automoto/homebound/progression"
	"github.com/automoto/homebound/shared/clock"
	"github.com/automoto/homebound/shared/leveldata"
	"github.com/automoto/homebound/systems/factory"
	"github.com/automoto/homebound/tags"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// testStep divides every threshold used in these tests evenly.
const testStep = 10 * time.Millisecond

type harness struct {
	t     *testing.T
	ecs   *ecs.ECS
	clock *clock.Manual
	store *progression.MemoryStore
}

func newHarness(t *testing.T, level *leveldata.Level) *harness {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	clk := clock.NewManual(testStart)
	store := progression.NewMemoryStore()

	_, err := factory.CreateLevel(e, components.LevelData{
		Config:   level,
		Instance: uuid.New(),
		Clock:    clk,
		Store:    store,
		Rand:     rand.New(rand.NewSource(1)),
	})
	if err != nil {
		t.Fatalf("CreateLevel: %v", err)
	}
	Register(e)
	return &harness{t: t, ecs: e, clock: clk, store: store}
}

// run advances the clock by testStep and updates the world n times.
func (h *harness) run(n int) {
	for i := 0; i < n; i++ {
		h.clock.Advance(testStep)
		h.ecs.Update()
	}
}

// tick advances the clock by the real tick duration and updates the world
// n times.
func (h *harness) tick(n int) {
	for i := 0; i < n; i++ {
		h.clock.Advance(config.TickDuration())
		h.ecs.Update()
	}
}

// runFor runs as many ticks as fit in d.
func (h *harness) runFor(d time.Duration) {
	h.run(int(d / testStep))
}

func (h *harness) playerEntry() *donburi.Entry {
	h.t.Helper()
	entry, ok := tags.Player.First(h.ecs.World)
	if !ok {
		h.t.Fatalf("no player in world")
	}
	return entry
}

func (h *harness) position() (float64, float64) {
	pos := components.Transform.Get(h.playerEntry()).Position
	return pos.X, pos.Y
}

func (h *harness) physics() *components.PhysicsData {
	return components.Physics.Get(h.playerEntry())
}

func (h *harness) player() *components.PlayerData {
	return components.Player.Get(h.playerEntry())
}

func (h *harness) state() config.StateID {
	return components.State.Get(h.playerEntry()).CurrentState
}

func (h *harness) dead() bool {
	return h.playerEntry().HasComponent(components.Death)
}

func (h *harness) input() *components.InputData {
	return getInput(h.ecs)
}

func (h *harness) telemetry() *components.TelemetryData {
	return getTelemetry(h.ecs)
}

func (h *harness) level() *components.LevelData {
	return getLevel(h.ecs)
}

func (h *harness) jump() {
	h.input().JumpPressed = true
	h.run(1)
}

func (h *harness) tap() {
	h.input().Taps++
	h.run(1)
}

func (h *harness) events(kind components.EventKind) int {
	n := 0
	for _, ev := range DrainEvents(h.ecs) {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func hazardByID(e *ecs.ECS, id string) *donburi.Entry {
	var found *donburi.Entry
	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		if components.Hazard.Get(entry).ID == id {
			found = entry
		}
	})
	return found
}

func collectibleByID(e *ecs.ECS, id string) *components.CollectibleData {
	var found *components.CollectibleData
	tags.Collectible.Each(e.World, func(entry *donburi.Entry) {
		if c := components.Collectible.Get(entry); c.ID == id {
			found = c
		}
	})
	return found
}

// floorLevel is a single platform whose top is at y=600 spanning x 170 to
// 1170. A player spawned at (200, 565) rests on it. The goal sits far to
// the right.
func floorLevel() *leveldata.Level {
	return &leveldata.Level{
		Number: 1,
		Spawn:  leveldata.Point{X: 200, Y: 565},
		Surfaces: []leveldata.Surface{
			{ID: "floor", Kind: leveldata.SurfacePlatform, Rect: leveldata.Centered(670, 625, 1000, 50)},
		},
		Goal:         &leveldata.Goal{Rect: leveldata.Centered(1100, 565, 50, 70)},
		DeathOverlay: 500 * time.Millisecond,
	}
}
