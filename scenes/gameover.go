package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/gemrush/config"
	"github.com/automoto/gemrush/systems"
	"github.com/automoto/gemrush/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the final result with restart and title options
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	gameOverUI   *ui.GameOverUI
	finalScore   int
	finalRound   int
	once         sync.Once
}

// NewGameOverScene creates a new game over scene carrying the final result
func NewGameOverScene(sc SceneChanger, score, round int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, finalScore: score, finalRound: round}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
	gs.gameOverUI.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
	gs.gameOverUI.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	// Scene factories
	createGameScene := func() interface{} {
		return NewGameScene(gs.sceneChanger)
	}
	createIntroScene := func() interface{} {
		return NewIntroScene(gs.sceneChanger)
	}

	gs.gameOverUI = ui.NewGameOverUI(
		func() {
			systems.PlaySFXNow(cfg.SoundMenuSelect)
			gs.sceneChanger.ChangeScene(createGameScene())
		},
		func() {
			systems.PlaySFXNow(cfg.SoundMenuSelect)
			gs.sceneChanger.ChangeScene(createIntroScene())
		},
	)

	gameOver := systems.GetOrCreateGameOver(gs.ecs)
	gameOver.FinalScore = gs.finalScore
	gameOver.FinalRound = gs.finalRound

	// Audio system
	gs.ecs.AddSystem(systems.UpdateAudio)

	// Minimal systems for game over
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createGameScene, createIntroScene))

	// Renderer
	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
}
