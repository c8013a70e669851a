package factory

import (
	"fmt"
	"math/rand"

	"github.com/automoto/gemrush/archetypes"
	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
	"github.com/automoto/gemrush/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateEnemy(ecs *ecs.ECS, x, y float64, behavior components.EnemyBehavior) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Enemy.Width, cfg.Enemy.Height, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Enemy.Width, cfg.Enemy.Height))
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Enemy.SetValue(enemy, components.EnemyData{
		Behavior: behavior,
		// Stagger patrol starts so enemies spawned together don't sync up
		PatrolTimer: rand.Intn(cfg.Enemy.PatrolInterval),
	})

	addToSpace(ecs, obj)

	return enemy
}

// CreateEnemyFromSpawn creates an enemy from a map spawn point, parsing its
// behavior property. Unknown behaviors are an error so the caller can log and
// skip the spawn.
func CreateEnemyFromSpawn(ecs *ecs.ECS, x, y float64, behavior string) (*donburi.Entry, error) {
	parsed, err := parseBehavior(behavior)
	if err != nil {
		return nil, err
	}
	return CreateEnemy(ecs, x, y, parsed), nil
}

func parseBehavior(s string) (components.EnemyBehavior, error) {
	switch s {
	case "random":
		return components.BehaviorRandom, nil
	case "chaser":
		return components.BehaviorChaser, nil
	case "patrol":
		return components.BehaviorPatrol, nil
	default:
		return 0, fmt.Errorf("unknown enemy behavior %q", s)
	}
}
