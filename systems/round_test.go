package systems

import (
	"testing"

	"github.com/automoto/gemrush/assets"
	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
	"github.com/automoto/gemrush/systems/factory"
	"github.com/automoto/gemrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func testArena() *assets.Arena {
	return &assets.Arena{
		Width:  640,
		Height: 352,
		PlayerSpawn: assets.Spawn{X: 312, Y: 168},
		CollectibleSpawns: []assets.Spawn{
			{X: 100, Y: 100},
			{X: 500, Y: 100},
		},
		EnemySpawns: []assets.EnemySpawn{
			{X: 50, Y: 50, Behavior: "chaser"},
		},
	}
}

func newGameWorld() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	arena := testArena()
	factory.CreateSpace(e, arena.Width, arena.Height, 16, 16)
	factory.CreateArena(e, arena)
	factory.CreateRound(e)
	factory.PopulateArena(e, arena)
	return e
}

func collectAll(e *ecs.ECS) {
	var entries []*donburi.Entry
	tags.Collectible.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	for _, entry := range entries {
		removeEntity(entry)
	}
}

func countEnemies(e *ecs.ECS) int {
	count := 0
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		count++
	})
	return count
}

func TestRoundClearAppliesAllEffects(t *testing.T) {
	e := newGameWorld()
	round := GetOrCreateRound(e)

	collectAll(e)
	UpdateRound(e)

	if round.Phase != components.PhaseRoundClear {
		t.Fatalf("phase = %v, want round clear", round.Phase)
	}
	if round.Round != 2 {
		t.Errorf("round = %d, want 2", round.Round)
	}
	want := cfg.Enemy.BaseSpeed + cfg.Enemy.SpeedIncrement
	if round.EnemySpeed != want {
		t.Errorf("enemy speed = %v, want %v", round.EnemySpeed, want)
	}
	if got := countCollectibles(e); got != 2 {
		t.Errorf("collectibles after respawn = %d, want 2", got)
	}
	if got := countEnemies(e); got != 2 {
		t.Errorf("enemies after clear = %d, want 2", got)
	}
}

func TestRoundSpeedNeverExceedsCap(t *testing.T) {
	e := newGameWorld()
	round := GetOrCreateRound(e)
	round.EnemySpeed = cfg.Enemy.MaxSpeed

	collectAll(e)
	UpdateRound(e)

	if round.EnemySpeed != cfg.Enemy.MaxSpeed {
		t.Errorf("enemy speed = %v, want capped at %v", round.EnemySpeed, cfg.Enemy.MaxSpeed)
	}
}

func TestBannerReturnsToPlaying(t *testing.T) {
	e := newGameWorld()
	round := GetOrCreateRound(e)

	collectAll(e)
	UpdateRound(e)
	if round.Phase != components.PhaseRoundClear {
		t.Fatalf("phase = %v, want round clear", round.Phase)
	}

	for i := 0; i < cfg.Round.BannerFrames; i++ {
		UpdateRound(e)
	}
	if round.Phase != components.PhasePlaying {
		t.Errorf("phase after banner = %v, want playing", round.Phase)
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	e := newGameWorld()
	round := GetOrCreateRound(e)

	playerEntry, _ := components.Player.First(e.World)
	components.Health.Get(playerEntry).Current = 0

	UpdateRound(e)
	if round.Phase != components.PhaseGameOver {
		t.Fatalf("phase = %v, want game over", round.Phase)
	}

	// Stays terminal even with gems gone
	collectAll(e)
	for i := 0; i < 200; i++ {
		UpdateRound(e)
	}
	if round.Phase != components.PhaseGameOver {
		t.Errorf("phase = %v, want game over to be terminal", round.Phase)
	}
	if round.PhaseTimer < cfg.Round.GameOverFrames {
		t.Errorf("phase timer = %d, want at least %d", round.PhaseTimer, cfg.Round.GameOverFrames)
	}
}

func TestGameOverQueuesJingle(t *testing.T) {
	e := newGameWorld()

	playerEntry, _ := components.Player.First(e.World)
	components.Health.Get(playerEntry).Current = 0
	UpdateRound(e)

	audioData := GetOrCreateAudio(e)
	for _, id := range audioData.PendingSFX {
		if id == cfg.SoundGameOver {
			return
		}
	}
	t.Error("game over jingle not queued")
}
