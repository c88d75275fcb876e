package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	Platform       = donburi.NewTag().SetName("Platform")
	Wall           = donburi.NewTag().SetName("Wall")
	Roof           = donburi.NewTag().SetName("Roof")
	Hazard         = donburi.NewTag().SetName("Hazard")
	Collectible    = donburi.NewTag().SetName("Collectible")
	Goal           = donburi.NewTag().SetName("Goal")
	HesitationZone = donburi.NewTag().SetName("HesitationZone")
)

// Resolv tags for the broad phase
const (
	ResolvPlayer      = "player"
	ResolvPlatform    = "platform"
	ResolvWall        = "wall"
	ResolvRoof        = "roof"
	ResolvHazard      = "hazard"
	ResolvCollectible = "collectible"
	ResolvGoal        = "goal"
)
