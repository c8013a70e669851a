package systems

import (
	"math/rand"

	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
	"github.com/automoto/gemrush/systems/factory"
	"github.com/automoto/gemrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRound drives the round phase machine. All round-clear effects happen
// in the same frame the last gem disappears; the banner phase only gates the
// gameplay systems while it is shown.
func UpdateRound(e *ecs.ECS) {
	round := GetOrCreateRound(e)
	round.PhaseTimer++

	switch round.Phase {
	case components.PhasePlaying:
		if playerHealth(e) <= 0 {
			round.Phase = components.PhaseGameOver
			round.PhaseTimer = 0
			PlaySFX(e, cfg.SoundGameOver)
			return
		}
		if countCollectibles(e) == 0 {
			clearRound(e, round)
		}
	case components.PhaseRoundClear:
		if round.PhaseTimer >= cfg.Round.BannerFrames {
			round.Phase = components.PhasePlaying
			round.PhaseTimer = 0
		}
	case components.PhaseGameOver:
		// Terminal; the scene switches away once PhaseTimer passes the delay
	}
}

// clearRound applies every round-clear effect at once: advance the counter,
// speed up the enemies, refill the gems and (from round 2 on) add an enemy.
func clearRound(e *ecs.ECS, round *components.RoundData) {
	round.Phase = components.PhaseRoundClear
	round.PhaseTimer = 0
	round.Round++

	if round.EnemySpeed+cfg.Enemy.SpeedIncrement <= cfg.Enemy.MaxSpeed {
		round.EnemySpeed += cfg.Enemy.SpeedIncrement
	}

	respawnCollectibles(e)
	spawnExtraEnemy(e)

	PlaySFX(e, cfg.SoundRoundClear)
}

// respawnCollectibles refills the arena's gem layout.
func respawnCollectibles(e *ecs.ECS) {
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry).Arena
	for _, spawn := range arena.CollectibleSpawns {
		factory.CreateCollectible(e, spawn.X, spawn.Y)
	}
}

// spawnExtraEnemy adds one enemy with a random behavior at one of the mapped
// enemy spawn points.
func spawnExtraEnemy(e *ecs.ECS) {
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry).Arena
	if len(arena.EnemySpawns) == 0 {
		return
	}

	spawn := arena.EnemySpawns[rand.Intn(len(arena.EnemySpawns))]
	behavior := components.EnemyBehavior(rand.Intn(3))
	factory.CreateEnemy(e, spawn.X, spawn.Y, behavior)
}

func playerHealth(e *ecs.ECS) int {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return 0
	}
	return components.Health.Get(playerEntry).Current
}

func countCollectibles(e *ecs.ECS) int {
	count := 0
	tags.Collectible.Each(e.World, func(entry *donburi.Entry) {
		count++
	})
	return count
}

// GetOrCreateRound returns the singleton round state, creating it at its
// round-one defaults if needed.
func GetOrCreateRound(e *ecs.ECS) *components.RoundData {
	entry, ok := components.Round.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Round))
		components.Round.SetValue(entry, components.RoundData{
			Round:      1,
			EnemySpeed: cfg.Enemy.BaseSpeed,
			Phase:      components.PhasePlaying,
		})
	}
	return components.Round.Get(entry)
}
