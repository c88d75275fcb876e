package systems

import (
	"log"

	"github.com/automoto/homebound/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateLevelComplete returns the level-complete singleton, creating it
// when the world has none.
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	if _, ok := components.LevelComplete.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.LevelComplete))
		components.LevelComplete.SetValue(ent, components.LevelCompleteData{
			IsComplete: false,
		})
	}

	ent, _ := components.LevelComplete.First(e.World)
	return components.LevelComplete.Get(ent)
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(e *ecs.ECS) bool {
	levelComplete := GetOrCreateLevelComplete(e)
	return levelComplete.IsComplete
}

// WithLevelCompleteCheck wraps a system to skip execution when level is complete
func WithLevelCompleteCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLevelComplete(e) {
			return
		}
		system(e)
	}
}

// CompleteLevel freezes the player and telemetry, unlocks the next level
// and emits the completion event. Only the first call has any effect.
func CompleteLevel(e *ecs.ECS, playerEntry *donburi.Entry) {
	levelComplete := GetOrCreateLevelComplete(e)
	if levelComplete.IsComplete {
		return
	}
	level := getLevel(e)
	t := level.Clock.Now()

	levelComplete.IsComplete = true
	levelComplete.CompletedAt = t

	components.Physics.Get(playerEntry).VelocityY = 0
	player := components.Player.Get(playerEntry)
	player.MovingLeft, player.MovingRight = false, false

	telemetry := getTelemetry(e)
	telemetry.TimeSpent = t.Sub(telemetry.StartedAt)
	telemetry.Frozen = true

	level.Store.UnlockNextLevel(level.Config.Number)
	emit(e, components.EventCompleted, "")

	log.Printf("Level %d complete in %v with %d deaths", level.Config.Number, telemetry.TimeSpent, telemetry.LevelDeaths)
}
