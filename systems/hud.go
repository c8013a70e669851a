package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
	"github.com/automoto/gemrush/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the health bar, score and round counter.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	round := GetOrCreateRound(ecs)

	margin := float32(cfg.HUD.Margin)
	barW := float32(cfg.HUD.HealthBarWidth)
	barH := float32(cfg.HUD.HealthBarHeight)

	// Background (dark gray)
	vector.FillRect(screen, margin, margin, barW, barH, cfg.HUD.HealthBarBg, false)

	// Current HP, shifting to red when low
	ratio := float32(hp.Current) / float32(hp.Max)
	fg := cfg.HUD.HealthBarFg
	if ratio <= 0.3 {
		fg = cfg.HUD.HealthBarLow
	}
	vector.FillRect(screen, margin, margin, barW*ratio, barH, fg, false)

	fontFace := fonts.Bold.Get()
	width := screen.Bounds().Dx()

	hpStr := fmt.Sprintf("Health: %d", hp.Current)
	text.Draw(screen, hpStr, fontFace, int(margin+barW)+6, int(margin+barH)-1, cfg.HUD.TextColor)

	scoreStr := fmt.Sprintf("Score: %d", round.Score)
	text.Draw(screen, scoreStr, fontFace, width-170, int(margin+barH)-1, cfg.HUD.TextColor)

	roundStr := fmt.Sprintf("Round: %d", round.Round)
	text.Draw(screen, roundStr, fontFace, width/2-40, int(margin+barH)-1, cfg.HUD.TextColor)
}

// DrawRoundBanner shows the round announcement during the clear pause, and a
// brief game over card before the scene switches away.
func DrawRoundBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	round := GetOrCreateRound(ecs)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	switch round.Phase {
	case components.PhaseRoundClear:
		banner := fmt.Sprintf("ROUND %d", round.Round)
		drawCenteredText(screen, banner, fonts.Title, width/2, int(height/2), cfg.BrightOrange)
	case components.PhaseGameOver:
		vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)
		drawCenteredText(screen, "GAME OVER", fonts.Title, width/2, int(height/2), cfg.LightRed)
	}
}

// drawCenteredText draws s horizontally centered on centerX with baseline y.
func drawCenteredText(screen *ebiten.Image, s string, font fonts.FontName, centerX float64, y int, clr color.Color) {
	face := font.Get()
	bounds := text.BoundString(face, s) //nolint:staticcheck // TODO: migrate to text/v2
	x := int(centerX) - bounds.Dx()/2
	text.Draw(screen, s, face, x, y, clr)
}
