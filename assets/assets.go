// Package assets embeds and loads the arena layout. The playfield is a TMX
// map: the map dimensions define the arena bounds and object groups place
// the player, gem and enemy spawn points.
package assets

import (
	"embed"
	"fmt"

	"github.com/lafriks/go-tiled"
)

//go:embed arena.tmx
var assetFS embed.FS

const arenaPath = "arena.tmx"

// Spawn is a point an entity is placed at.
type Spawn struct {
	X, Y float64
}

// EnemySpawn is a spawn point with the behavior name from the map data.
// The name is resolved (and validated) by the enemy factory.
type EnemySpawn struct {
	X, Y     float64
	Behavior string
}

// Arena holds the parsed playfield layout.
type Arena struct {
	Width  int // pixels
	Height int // pixels

	PlayerSpawn       Spawn
	CollectibleSpawns []Spawn
	EnemySpawns       []EnemySpawn
}

// LoadArena parses the embedded TMX map into an Arena.
func LoadArena() (*Arena, error) {
	arenaMap, err := tiled.LoadFile(arenaPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", arenaPath, err)
	}

	arena := &Arena{
		Width:  arenaMap.Width * arenaMap.TileWidth,
		Height: arenaMap.Height * arenaMap.TileHeight,
	}

	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				arena.PlayerSpawn = Spawn{X: og.Objects[0].X, Y: og.Objects[0].Y}
			}
		case "CollectibleSpawns":
			for _, o := range og.Objects {
				arena.CollectibleSpawns = append(arena.CollectibleSpawns, Spawn{X: o.X, Y: o.Y})
			}
		case "EnemySpawns":
			for _, o := range og.Objects {
				arena.EnemySpawns = append(arena.EnemySpawns, EnemySpawn{
					X:        o.X,
					Y:        o.Y,
					Behavior: o.Properties.GetString("behavior"),
				})
			}
		}
	}

	if len(arena.CollectibleSpawns) == 0 {
		return nil, fmt.Errorf("no collectible spawns defined in %s", arenaPath)
	}
	return arena, nil
}

// MustLoadArena loads the arena and panics on failure. The map is embedded,
// so a failure is a build defect rather than a runtime condition.
func MustLoadArena() *Arena {
	arena, err := LoadArena()
	if err != nil {
		panic("failed to load arena: " + err.Error())
	}
	return arena
}
