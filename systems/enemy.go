package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
	"github.com/automoto/gemrush/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies steps every enemy according to its behavior. All enemies in a
// round move at the same speed, taken from the round state.
func UpdateEnemies(e *ecs.ECS) {
	var playerObj *resolv.Object
	if playerEntry, ok := components.Player.First(e.World); ok {
		playerObj = components.Object.Get(playerEntry).Object
	}

	speed := GetOrCreateRound(e).EnemySpeed

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		obj := components.Object.Get(entry).Object

		switch enemy.Behavior {
		case components.BehaviorRandom:
			updateRandomEnemy(e, enemy, obj, speed)
		case components.BehaviorChaser:
			updateChaserEnemy(e, obj, playerObj, speed)
		case components.BehaviorPatrol:
			updatePatrolEnemy(e, enemy, obj, speed)
		}
	})
}

// updateRandomEnemy drifts along a heading that is re-rolled on a timer, or
// immediately after hitting a wall.
func updateRandomEnemy(e *ecs.ECS, enemy *components.EnemyData, obj *resolv.Object, speed float64) {
	enemy.HeadingTimer--
	if enemy.HeadingTimer <= 0 || (enemy.Heading == components.Vector{}) {
		angle := rand.Float64() * 2 * math.Pi
		enemy.Heading = components.Vector{X: math.Cos(angle), Y: math.Sin(angle)}
		enemy.HeadingTimer = cfg.Enemy.HeadingInterval
	}

	if moveObject(e, obj, enemy.Heading.X*speed, enemy.Heading.Y*speed) {
		enemy.HeadingTimer = 0
	}
}

// updateChaserEnemy homes in on the player center at exactly the round speed.
func updateChaserEnemy(e *ecs.ECS, obj, playerObj *resolv.Object, speed float64) {
	if playerObj == nil {
		return
	}

	dx := (playerObj.X + playerObj.W/2) - (obj.X + obj.W/2)
	dy := (playerObj.Y + playerObj.H/2) - (obj.Y + obj.H/2)
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	if dist < speed {
		// Close enough that a full step would overshoot
		moveObject(e, obj, dx, dy)
		return
	}

	moveObject(e, obj, dx/dist*speed, dy/dist*speed)
}

// updatePatrolEnemy cycles right, down, left, up on a fixed timer, turning
// early when a wall blocks the way.
func updatePatrolEnemy(e *ecs.ECS, enemy *components.EnemyData, obj *resolv.Object, speed float64) {
	enemy.PatrolTimer++
	if enemy.PatrolTimer >= cfg.Enemy.PatrolInterval {
		enemy.PatrolDir = enemy.PatrolDir.Next()
		enemy.PatrolTimer = 0
	}

	var dx, dy float64
	switch enemy.PatrolDir {
	case components.PatrolRight:
		dx = speed
	case components.PatrolDown:
		dy = speed
	case components.PatrolLeft:
		dx = -speed
	case components.PatrolUp:
		dy = -speed
	}

	if moveObject(e, obj, dx, dy) {
		enemy.PatrolDir = enemy.PatrolDir.Next()
		enemy.PatrolTimer = 0
	}
}
