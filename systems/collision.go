package systems

import (
	"math"

	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
	"github.com/automoto/gemrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves player contact with collectibles and enemies.
// Contact is a center-to-center distance check.
func UpdateCollisions(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}

	player := components.Player.Get(playerEntry)
	health := components.Health.Get(playerEntry)
	playerObj := components.Object.Get(playerEntry).Object
	px := playerObj.X + playerObj.W/2
	py := playerObj.Y + playerObj.H/2

	round := GetOrCreateRound(e)

	// Collect: each gem in range scores and is removed
	var collected []*donburi.Entry
	tags.Collectible.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		cx := obj.X + obj.W/2
		cy := obj.Y + obj.H/2
		if math.Hypot(px-cx, py-cy) <= cfg.Collision.CollectRadius {
			collected = append(collected, entry)
		}
	})
	for _, entry := range collected {
		round.Score += components.Collectible.Get(entry).Value
		removeEntity(entry)
		PlaySFX(e, cfg.SoundCollect)
	}

	// Damage: first enemy contact per vulnerability window
	if health.Current <= 0 {
		return
	}
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if player.InvulnFrames > 0 {
			return
		}
		obj := components.Object.Get(entry).Object
		ex := obj.X + obj.W/2
		ey := obj.Y + obj.H/2
		if math.Hypot(px-ex, py-ey) > cfg.Collision.DamageRadius {
			return
		}

		health.Current -= cfg.Enemy.ContactDamage
		if health.Current < 0 {
			health.Current = 0
		}
		player.InvulnFrames = cfg.Player.InvulnFrames
		PlaySFX(e, cfg.SoundDamage)
	})
}

// removeEntity takes an entity out of the world and its resolv object out of
// the collision space.
func removeEntity(entry *donburi.Entry) {
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	entry.Remove()
}
