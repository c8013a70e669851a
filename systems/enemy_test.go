package systems

import (
	"math"
	"testing"

	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
	"github.com/automoto/gemrush/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestChaserMovesTowardPlayer(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 352, 16, 16)
	factory.CreatePlayer(e, 200, 100)
	enemyEntry := factory.CreateEnemy(e, 100, 100, components.BehaviorChaser)
	obj := components.Object.Get(enemyEntry).Object

	UpdateEnemies(e)

	want := 100 + cfg.Enemy.BaseSpeed
	if obj.X != want {
		t.Errorf("chaser X = %v, want %v", obj.X, want)
	}
	if obj.Y != 100 {
		t.Errorf("chaser Y = %v, want unchanged 100", obj.Y)
	}
}

func TestChaserDoesNotOvershoot(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 352, 16, 16)
	factory.CreatePlayer(e, 101, 100)
	enemyEntry := factory.CreateEnemy(e, 100, 100, components.BehaviorChaser)
	obj := components.Object.Get(enemyEntry).Object

	UpdateEnemies(e)

	// Player center is 1px away; the step must be 1px, not the full speed
	if obj.X != 101 {
		t.Errorf("chaser X = %v, want 101", obj.X)
	}
}

func TestPatrolCyclesOnTimer(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 352, 16, 16)
	enemyEntry := factory.CreateEnemy(e, 100, 100, components.BehaviorPatrol)
	enemy := components.Enemy.Get(enemyEntry)
	enemy.PatrolDir = components.PatrolRight
	enemy.PatrolTimer = 0

	for i := 0; i < cfg.Enemy.PatrolInterval; i++ {
		UpdateEnemies(e)
	}

	if enemy.PatrolDir != components.PatrolDown {
		t.Errorf("patrol direction = %v, want down after one interval", enemy.PatrolDir)
	}
}

func TestPatrolTurnsAtWall(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 352, 16, 16)
	factory.CreateWall(e, 120, 80, 16, 64)
	enemyEntry := factory.CreateEnemy(e, 103, 100, components.BehaviorPatrol)
	enemy := components.Enemy.Get(enemyEntry)
	enemy.PatrolDir = components.PatrolRight
	enemy.PatrolTimer = 0

	UpdateEnemies(e)

	// 103 + 16 wide puts the enemy 1px from the wall; a 1.5px step is blocked
	if enemy.PatrolDir != components.PatrolDown {
		t.Errorf("patrol direction = %v, want down after wall hit", enemy.PatrolDir)
	}
}

func TestRandomHeadingIsUnitVector(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 352, 16, 16)
	enemyEntry := factory.CreateEnemy(e, 100, 100, components.BehaviorRandom)
	enemy := components.Enemy.Get(enemyEntry)

	UpdateEnemies(e)

	mag := math.Hypot(enemy.Heading.X, enemy.Heading.Y)
	if math.Abs(mag-1) > 1e-9 {
		t.Errorf("heading magnitude = %v, want 1", mag)
	}
	if enemy.HeadingTimer != cfg.Enemy.HeadingInterval {
		t.Errorf("heading timer = %d, want %d", enemy.HeadingTimer, cfg.Enemy.HeadingInterval)
	}
}

func TestPlayerClampedToArena(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	arena := testArena()
	factory.CreateSpace(e, arena.Width, arena.Height, 16, 16)
	factory.CreateArena(e, arena)
	playerEntry := factory.CreatePlayer(e, 2, 2)
	obj := components.Object.Get(playerEntry).Object

	moveObject(e, obj, -50, -50)

	if obj.X != cfg.Arena.WallThickness || obj.Y != cfg.Arena.WallThickness {
		t.Errorf("player at (%v, %v), want clamped to (%v, %v)",
			obj.X, obj.Y, cfg.Arena.WallThickness, cfg.Arena.WallThickness)
	}
}
