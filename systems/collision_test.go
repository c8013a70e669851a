package systems

import (
	"testing"

	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
	"github.com/automoto/gemrush/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newCollisionWorld() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 352, 16, 16)
	factory.CreateRound(e)
	return e
}

func TestCollectGem(t *testing.T) {
	e := newCollisionWorld()
	factory.CreatePlayer(e, 100, 100)
	factory.CreateCollectible(e, 102, 102)
	round := GetOrCreateRound(e)

	UpdateCollisions(e)

	if round.Score != cfg.Collectible.Value {
		t.Errorf("score = %d, want %d", round.Score, cfg.Collectible.Value)
	}
	if got := countCollectibles(e); got != 0 {
		t.Errorf("collectibles = %d, want 0", got)
	}

	audioData := GetOrCreateAudio(e)
	found := false
	for _, id := range audioData.PendingSFX {
		if id == cfg.SoundCollect {
			found = true
		}
	}
	if !found {
		t.Error("collect sound not queued")
	}
}

func TestGemOutOfRangeStays(t *testing.T) {
	e := newCollisionWorld()
	factory.CreatePlayer(e, 100, 100)
	factory.CreateCollectible(e, 300, 300)
	round := GetOrCreateRound(e)

	UpdateCollisions(e)

	if round.Score != 0 {
		t.Errorf("score = %d, want 0", round.Score)
	}
	if got := countCollectibles(e); got != 1 {
		t.Errorf("collectibles = %d, want 1", got)
	}
}

func TestEnemyContactDamage(t *testing.T) {
	e := newCollisionWorld()
	playerEntry := factory.CreatePlayer(e, 100, 100)
	factory.CreateEnemy(e, 102, 102, components.BehaviorChaser)

	UpdateCollisions(e)

	health := components.Health.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	want := cfg.Player.Health - cfg.Enemy.ContactDamage
	if health.Current != want {
		t.Errorf("health = %d, want %d", health.Current, want)
	}
	if player.InvulnFrames != cfg.Player.InvulnFrames {
		t.Errorf("invuln frames = %d, want %d", player.InvulnFrames, cfg.Player.InvulnFrames)
	}

	// Still invulnerable, no second hit
	UpdateCollisions(e)
	if health.Current != want {
		t.Errorf("health after second frame = %d, want %d", health.Current, want)
	}
}

func TestOverlappingEnemiesHitOnce(t *testing.T) {
	e := newCollisionWorld()
	playerEntry := factory.CreatePlayer(e, 100, 100)
	factory.CreateEnemy(e, 101, 101, components.BehaviorChaser)
	factory.CreateEnemy(e, 102, 102, components.BehaviorRandom)

	UpdateCollisions(e)

	health := components.Health.Get(playerEntry)
	want := cfg.Player.Health - cfg.Enemy.ContactDamage
	if health.Current != want {
		t.Errorf("health = %d, want %d (one hit per vulnerability window)", health.Current, want)
	}
}

func TestHealthClampsAtZero(t *testing.T) {
	e := newCollisionWorld()
	playerEntry := factory.CreatePlayer(e, 100, 100)
	factory.CreateEnemy(e, 102, 102, components.BehaviorChaser)

	health := components.Health.Get(playerEntry)
	health.Current = cfg.Enemy.ContactDamage / 2

	UpdateCollisions(e)

	if health.Current != 0 {
		t.Errorf("health = %d, want clamped to 0", health.Current)
	}
}
