package components

import "github.com/yohamta/donburi"

// EnemyBehavior is the movement strategy tag for an enemy.
type EnemyBehavior int

const (
	BehaviorRandom EnemyBehavior = iota
	BehaviorChaser
	BehaviorPatrol
)

func (b EnemyBehavior) String() string {
	switch b {
	case BehaviorRandom:
		return "random"
	case BehaviorChaser:
		return "chaser"
	case BehaviorPatrol:
		return "patrol"
	}
	return "unknown"
}

// PatrolDirection is the current leg of a patrol enemy's cycle.
type PatrolDirection int

const (
	PatrolRight PatrolDirection = iota
	PatrolDown
	PatrolLeft
	PatrolUp
)

// Next returns the direction after d in the patrol cycle.
func (d PatrolDirection) Next() PatrolDirection {
	return (d + 1) % 4
}

type EnemyData struct {
	Behavior EnemyBehavior

	// Random behavior state
	Heading      Vector // unit-ish direction, re-rolled on an interval
	HeadingTimer int

	// Patrol behavior state
	PatrolDir   PatrolDirection
	PatrolTimer int
}

var Enemy = donburi.NewComponentType[EnemyData]()
