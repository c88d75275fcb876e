package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// TelemetryData holds the level-scoped counters. The session-wide death
// total lives in the progression store.
type TelemetryData struct {
	LevelDeaths     int
	HesitationCount int
	TimesFooled     int
	// InternalErrors feeds the error term of the frustration score. No
	// system raises it yet; it stays zero in every level.
	InternalErrors int
	// FooledBy gates each decoy to one count per life.
	FooledBy  map[string]bool
	StartedAt time.Time
	TimeSpent time.Duration
	Frozen    bool
}

var Telemetry = donburi.NewComponentType[TelemetryData]()
