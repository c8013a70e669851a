package components

import "github.com/yohamta/donburi"

// RoundPhase is the progression state of a run.
type RoundPhase int

const (
	PhasePlaying RoundPhase = iota
	PhaseRoundClear
	PhaseGameOver
)

// RoundData is the single mutable progression record for a run. One entity
// per game scene; round and enemy speed only ever increase, and PhaseGameOver
// is terminal.
type RoundData struct {
	Score      int
	Round      int
	EnemySpeed float64

	Phase      RoundPhase
	PhaseTimer int // frames spent in the current phase
}

var Round = donburi.NewComponentType[RoundData]()
