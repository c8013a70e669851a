package factory

import (
	"github.com/automoto/gemrush/archetypes"
	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRound creates the singleton round state at its round-one defaults.
func CreateRound(ecs *ecs.ECS) *donburi.Entry {
	round := archetypes.Round.Spawn(ecs)
	components.Round.SetValue(round, components.RoundData{
		Round:      1,
		EnemySpeed: cfg.Enemy.BaseSpeed,
		Phase:      components.PhasePlaying,
	})
	return round
}
