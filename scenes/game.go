package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/gemrush/assets"
	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
	"github.com/automoto/gemrush/systems"
	"github.com/automoto/gemrush/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene runs the gameplay loop: collect gems, dodge enemies, survive
// escalating rounds.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewGameScene creates a new gameplay scene
func NewGameScene(sc SceneChanger) *GameScene {
	return &GameScene{sceneChanger: sc}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	// Hand off to the game over scene after the short on-field card
	round := systems.GetOrCreateRound(gs.ecs)
	if round.Phase == components.PhaseGameOver && round.PhaseTimer >= cfg.Round.GameOverFrames {
		gs.sceneChanger.ChangeScene(NewGameOverScene(gs.sceneChanger, round.Score, round.Round))
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	arena := assets.MustLoadArena()

	factory.CreateSpace(gs.ecs, arena.Width, arena.Height, 16, 16)
	factory.CreateArena(gs.ecs, arena)
	factory.CreateRound(gs.ecs)
	factory.PopulateArena(gs.ecs, arena)

	// Audio system (runs first, drains the previous frame's queue)
	gs.ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause and phase checks
	gs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	gs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	gs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollectibles))
	gs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	gs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))

	// Round progression runs under pause but across all phases
	gs.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateRound))

	// Renderers
	gs.ecs.AddRenderer(cfg.Default, systems.DrawArena)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawRoundBanner)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawPause)
}
