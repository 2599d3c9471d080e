package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Pickup     = donburi.NewTag().SetName("Pickup")
	LevelState = donburi.NewTag().SetName("LevelState")
)

// Resolv tags for broadphase queries
const (
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvPickup = "Pickup"
)
