package session

import (
	"time"

	"github.com/automoto/homebound/components"
	"github.com/automoto/homebound/config"
	"github.com/automoto/homebound/systems"
	"github.com/automoto/homebound/tags"
	"github.com/yohamta/donburi"
)

// Frame is the per-tick snapshot handed to presentation sinks.
type Frame struct {
	Tick     uint64 `json:"tick"`
	Level    int    `json:"level"`
	Instance string `json:"instance"`
	Phase    Phase  `json:"phase"`

	Player       PlayerFrame        `json:"player"`
	Hazards      []HazardFrame      `json:"hazards,omitempty"`
	Collectibles []CollectibleFrame `json:"collectibles,omitempty"`
	GoalRevealed bool               `json:"goal_revealed"`

	ControlsSwapped bool `json:"controls_swapped"`
	SwapMessage     bool `json:"swap_message"`

	Telemetry TelemetryFrame     `json:"telemetry"`
	Events    []components.Event `json:"events,omitempty"`
}

type PlayerFrame struct {
	X           float64        `json:"x"`
	Y           float64        `json:"y"`
	Rotation    float64        `json:"rotation"`
	FacingRight bool           `json:"facing_right"`
	State       config.StateID `json:"state"`
	WalkFrame   int            `json:"walk_frame"`
	Dead        bool           `json:"dead"`
}

type HazardFrame struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	Lethal   bool    `json:"lethal"`
}

type CollectibleFrame struct {
	ID        string `json:"id"`
	Collected bool   `json:"collected"`
	Lethal    bool   `json:"lethal"`
}

type TelemetryFrame struct {
	LevelDeaths     int           `json:"level_deaths"`
	TotalDeaths     int           `json:"total_deaths"`
	HesitationCount int           `json:"hesitation_count"`
	TimesFooled     int           `json:"times_fooled"`
	TimeSpent       time.Duration `json:"time_spent"`
}

// Sink consumes frames. Publish is called on the ticking goroutine and must
// not block.
type Sink interface {
	Publish(Frame)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Frame)

func (f SinkFunc) Publish(frame Frame) {
	f(frame)
}

func (s *Session) frame(events []components.Event) Frame {
	world := s.ecs.World
	levelEntry := mustLevelEntry(s.ecs)
	level := components.Level.Get(levelEntry)
	t := components.Telemetry.Get(levelEntry)

	f := Frame{
		Tick:            s.tick,
		Level:           s.level.Number,
		Instance:        s.instance.String(),
		Phase:           s.Phase(),
		ControlsSwapped: level.ControlsSwapped,
		SwapMessage:     level.SwapMessage,
		Telemetry: TelemetryFrame{
			LevelDeaths:     t.LevelDeaths,
			TotalDeaths:     s.store.TotalDeathCount(),
			HesitationCount: t.HesitationCount,
			TimesFooled:     t.TimesFooled,
			TimeSpent:       systems.TimeSpent(s.ecs),
		},
		Events: events,
	}

	if playerEntry, ok := tags.Player.First(world); ok {
		transform := components.Transform.Get(playerEntry)
		player := components.Player.Get(playerEntry)
		f.Player = PlayerFrame{
			X:           transform.Position.X,
			Y:           transform.Position.Y,
			Rotation:    transform.Rotation,
			FacingRight: player.FacingRight,
			State:       components.State.Get(playerEntry).CurrentState,
			WalkFrame:   player.WalkFrame,
			Dead:        playerEntry.HasComponent(components.Death),
		}
	}

	tags.Hazard.Each(world, func(e *donburi.Entry) {
		hazard := components.Hazard.Get(e)
		transform := components.Transform.Get(e)
		f.Hazards = append(f.Hazards, HazardFrame{
			ID:       hazard.ID,
			X:        transform.Position.X,
			Y:        transform.Position.Y,
			Rotation: transform.Rotation,
			Lethal:   hazard.Lethal,
		})
	})
	tags.Collectible.Each(world, func(e *donburi.Entry) {
		c := components.Collectible.Get(e)
		f.Collectibles = append(f.Collectibles, CollectibleFrame{
			ID:        c.ID,
			Collected: c.Collected,
			Lethal:    c.Lethal,
		})
	})
	if goalEntry, ok := tags.Goal.First(world); ok {
		f.GoalRevealed = components.Goal.Get(goalEntry).Revealed
	}
	return f
}
