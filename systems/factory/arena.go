package factory

import (
	"log"

	"github.com/automoto/gemrush/archetypes"
	"github.com/automoto/gemrush/assets"
	"github.com/automoto/gemrush/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena registers the loaded arena layout as the singleton arena entity.
func CreateArena(ecs *ecs.ECS, arena *assets.Arena) *donburi.Entry {
	entry := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(entry, components.ArenaData{Arena: arena})
	return entry
}

// PopulateArena spawns the player, gems and initial enemies at the positions
// the map defines. Spawn points with a bad behavior property are logged and
// skipped rather than aborting the round.
func PopulateArena(ecs *ecs.ECS, arena *assets.Arena) {
	CreateArenaWalls(ecs, float64(arena.Width), float64(arena.Height))

	CreatePlayer(ecs, arena.PlayerSpawn.X, arena.PlayerSpawn.Y)

	for _, spawn := range arena.CollectibleSpawns {
		CreateCollectible(ecs, spawn.X, spawn.Y)
	}

	for _, spawn := range arena.EnemySpawns {
		if _, err := CreateEnemyFromSpawn(ecs, spawn.X, spawn.Y, spawn.Behavior); err != nil {
			log.Printf("skipping enemy spawn at (%.0f, %.0f): %v", spawn.X, spawn.Y, err)
		}
	}
}
