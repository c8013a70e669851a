package systems

import (
	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
	"github.com/automoto/gemrush/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects syncs every resolv object with the collision space.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		obj.Update()
	})
}

// moveObject moves a resolv object by (dx, dy), one axis at a time so a
// blocked axis does not cancel the other. Reports whether a solid blocked
// either axis. The object always ends up inside the arena walls.
func moveObject(e *ecs.ECS, obj *resolv.Object, dx, dy float64) bool {
	blocked := false

	if dx != 0 {
		if check := obj.Check(dx, 0, tags.ResolvSolid); check == nil {
			obj.X += dx
		} else {
			blocked = true
		}
	}
	if dy != 0 {
		if check := obj.Check(0, dy, tags.ResolvSolid); check == nil {
			obj.Y += dy
		} else {
			blocked = true
		}
	}

	clampToArena(e, obj)
	obj.Update()
	return blocked
}

// clampToArena keeps an object fully inside the playable area.
func clampToArena(e *ecs.ECS, obj *resolv.Object) {
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry).Arena

	wall := cfg.Arena.WallThickness
	minX, minY := wall, wall
	maxX := float64(arena.Width) - wall - obj.W
	maxY := float64(arena.Height) - wall - obj.H

	if obj.X < minX {
		obj.X = minX
	}
	if obj.X > maxX {
		obj.X = maxX
	}
	if obj.Y < minY {
		obj.Y = minY
	}
	if obj.Y > maxY {
		obj.Y = maxY
	}
}
