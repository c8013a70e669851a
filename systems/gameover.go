package systems

import (
	"fmt"

	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
	"github.com/automoto/gemrush/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates the game over input system. The clickable buttons
// live in the scene's UI layer; this covers the keyboard shortcuts.
func NewUpdateGameOver(sceneChanger SceneChanger, createGameScene, createIntroScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFXNow(cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createGameScene())
			return
		}
		if GetAction(input, cfg.ActionPause).JustPressed {
			PlaySFXNow(cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createIntroScene())
		}
	}
}

// DrawGameOver renders the game over screen behind the button layer.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.GameOver.BackgroundColor, false)

	drawCenteredText(screen, "GAME OVER", fonts.Title, width/2, int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	result := fmt.Sprintf("Score: %d   Round: %d", gameOver.FinalScore, gameOver.FinalRound)
	drawCenteredText(screen, result, fonts.Bold, width/2, int(cfg.GameOver.ScoreY), cfg.GameOver.TextColor)

	hint := "Enter: Restart   Esc: Title Screen"
	drawCenteredText(screen, hint, fonts.Small, width/2, int(cfg.GameOver.HintY), cfg.GameOver.HintColor)
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
