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

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	addToSpace(ecs, obj)

	return wall
}

// CreateArenaWalls builds the four boundary walls around the playable area.
func CreateArenaWalls(ecs *ecs.ECS, width, height float64) {
	t := cfg.Arena.WallThickness
	CreateWall(ecs, 0, 0, width, t)
	CreateWall(ecs, 0, height-t, width, t)
	CreateWall(ecs, 0, t, t, height-2*t)
	CreateWall(ecs, width-t, t, t, height-2*t)
}
