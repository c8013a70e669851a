package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Collectible = donburi.NewTag().SetName("Collectible")
	Wall        = donburi.NewTag().SetName("Wall")
)

// Resolv tags for collision objects
const (
	ResolvSolid       = "solid"
	ResolvPlayer      = "Player"
	ResolvEnemy       = "Enemy"
	ResolvCollectible = "Collectible"
)
