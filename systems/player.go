package systems

import (
	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies held movement input to the player and counts down
// invulnerability frames.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}

	player := components.Player.Get(playerEntry)
	if player.InvulnFrames > 0 {
		player.InvulnFrames--
	}

	input := getOrCreateInput(ecs)

	var dx, dy float64
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		dx -= cfg.Player.Speed
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		dx += cfg.Player.Speed
	}
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		dy -= cfg.Player.Speed
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		dy += cfg.Player.Speed
	}

	if dx == 0 && dy == 0 {
		return
	}

	obj := components.Object.Get(playerEntry)
	moveObject(ecs, obj.Object, dx, dy)
}
