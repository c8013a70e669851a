package factory

import (
	"github.com/automoto/gemrush/archetypes"
	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
	"github.com/automoto/gemrush/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCollectible(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	collectible := archetypes.Collectible.Spawn(ecs)

	size := cfg.Collectible.Radius * 2
	obj := resolv.NewObject(x, y, size, size, tags.ResolvCollectible)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = collectible
	components.Object.SetValue(collectible, components.ObjectData{Object: obj})

	components.Collectible.SetValue(collectible, components.CollectibleData{
		Value: cfg.Collectible.Value,
		// Offset the phase by position so gems don't bob in lockstep
		BobPhase: x * 0.05,
	})

	addToSpace(ecs, obj)

	return collectible
}
