package systems

import (
	"math"

	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
	"github.com/automoto/gemrush/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena renders the playfield background and boundary walls.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry).Arena

	w := float32(arena.Width)
	h := float32(arena.Height)
	t := float32(cfg.Arena.WallThickness)

	vector.FillRect(screen, 0, 0, w, h, cfg.Arena.BackgroundColor, false)

	// Boundary walls
	vector.FillRect(screen, 0, 0, w, t, cfg.Arena.BorderColor, false)
	vector.FillRect(screen, 0, h-t, w, t, cfg.Arena.BorderColor, false)
	vector.FillRect(screen, 0, 0, t, h, cfg.Arena.BorderColor, false)
	vector.FillRect(screen, w-t, 0, t, h, cfg.Arena.BorderColor, false)
}

// DrawSprites renders collectibles, enemies and the player as flat shapes.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Collectible.Each(ecs.World, func(entry *donburi.Entry) {
		collectible := components.Collectible.Get(entry)
		obj := components.Object.Get(entry).Object

		bob := math.Sin(collectible.BobPhase) * cfg.Collectible.BobAmplitude
		cx := float32(obj.X + obj.W/2)
		cy := float32(obj.Y + obj.H/2 + bob)
		vector.DrawFilledCircle(screen, cx, cy, float32(cfg.Collectible.Radius), cfg.Collectible.Color, true)
	})

	tags.Enemy.Each(ecs.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		obj := components.Object.Get(entry).Object

		clr := cfg.Enemy.RandomColor
		switch enemy.Behavior {
		case components.BehaviorChaser:
			clr = cfg.Enemy.ChaserColor
		case components.BehaviorPatrol:
			clr = cfg.Enemy.PatrolColor
		}
		vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), clr, false)
	})

	if playerEntry, ok := components.Player.First(ecs.World); ok {
		player := components.Player.Get(playerEntry)
		obj := components.Object.Get(playerEntry).Object

		// Blink while invulnerable
		if player.InvulnFrames > 0 && (player.InvulnFrames/4)%2 == 0 {
			return
		}
		vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), cfg.Player.Color, false)
	}
}
