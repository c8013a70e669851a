package systems

import (
	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
	"github.com/automoto/gemrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollectibles advances the bob animation phase. The bob is purely
// visual; the collision object stays at the spawn position.
func UpdateCollectibles(ecs *ecs.ECS) {
	tags.Collectible.Each(ecs.World, func(entry *donburi.Entry) {
		collectible := components.Collectible.Get(entry)
		collectible.BobPhase += cfg.Collectible.BobSpeed
	})
}
