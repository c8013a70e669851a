package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
	"github.com/automoto/gemrush/fonts"
	"github.com/automoto/gemrush/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// introDT is the fixed timestep fed to the intro tweens (60 ticks/s).
const introDT float32 = 1.0 / 60.0

// NewUpdateIntro creates the system driving the scripted intro: logo fade,
// subtitle, fake loading bar, then the title screen waiting for input.
func NewUpdateIntro(sceneChanger SceneChanger, createGameScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		intro := GetOrCreateIntro(e)
		input := getOrCreateInput(e)

		stage := intro.Current()

		// Confirm during the scripted stages jumps straight to the title
		if stage != components.StageTitle && stage != components.StageDone {
			if GetAction(input, cfg.ActionConfirm).JustPressed {
				intro.SkipToTitle()
				return
			}
		}

		switch stage {
		case components.StageLogo:
			if intro.Timer == 0 {
				PlaySFX(e, cfg.SoundLogoFanfare)
			}
			intro.LogoAlphaVal, _ = intro.LogoAlpha.Update(introDT)
		case components.StageSubtitle:
			intro.LogoAlphaVal = 1
		case components.StageLoading:
			intro.BarVal, _ = intro.BarProgress.Update(introDT)
			// A tick sound every time the bar crosses a 10% mark
			decile := int(intro.BarVal * 10)
			if decile > intro.LastTick {
				intro.LastTick = decile
				PlaySFX(e, cfg.SoundLoadingTick)
			}
		case components.StageTitle:
			blinkVal, _, _ := intro.Blink.Update(introDT)
			intro.BlinkVal = blinkVal
			if GetAction(input, cfg.ActionConfirm).JustPressed {
				StartGame(sceneChanger, createGameScene)
				return
			}
		}

		intro.Advance()
	}
}

// StartGame plays the start jingle and switches to the gameplay scene. Also
// reached through the title screen's START button.
func StartGame(sceneChanger SceneChanger, createGameScene func() interface{}) {
	PlaySFXNow(cfg.SoundStart)
	sceneChanger.ChangeScene(createGameScene())
}

// DrawIntro renders whichever intro stage is active.
func DrawIntro(e *ecs.ECS, screen *ebiten.Image) {
	intro := GetOrCreateIntro(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Intro.BackgroundColor, false)

	switch intro.Current() {
	case components.StageLogo:
		clr := scaleColor(cfg.Intro.LogoColor, intro.LogoAlphaVal)
		drawCenteredText(screen, cfg.Intro.StudioName, fonts.Title, width/2, int(height/2), clr)
	case components.StageSubtitle:
		drawCenteredText(screen, cfg.Intro.StudioName, fonts.Title, width/2, int(height/2), cfg.Intro.LogoColor)
		drawCenteredText(screen, cfg.Intro.Subtitle, fonts.Main, width/2, int(height/2)+28, cfg.Intro.SubtitleColor)
	case components.StageLoading:
		drawCenteredText(screen, cfg.Intro.LoadingLabel, fonts.Bold, width/2, int(height/2)-18, cfg.Intro.LogoColor)

		barX := float32((width - cfg.Intro.BarWidth) / 2)
		barY := float32(height / 2)
		vector.FillRect(screen, barX, barY, float32(cfg.Intro.BarWidth), float32(cfg.Intro.BarHeight), cfg.Intro.BarBgColor, false)
		vector.FillRect(screen, barX, barY, float32(cfg.Intro.BarWidth)*intro.BarVal, float32(cfg.Intro.BarHeight), cfg.Intro.BarFgColor, false)

		percent := fmt.Sprintf("%d%%", int(intro.BarVal*100))
		drawCenteredText(screen, percent, fonts.Small, width/2, int(barY)+int(cfg.Intro.BarHeight)+18, cfg.Intro.SubtitleColor)
	case components.StageTitle, components.StageDone:
		drawCenteredText(screen, cfg.Intro.Title, fonts.Title, width/2, 120, cfg.Intro.TitleColor)
		if intro.BlinkVal > 0.5 {
			drawCenteredText(screen, cfg.Intro.Prompt, fonts.Bold, width/2, 200, cfg.Intro.PromptColor)
		}
	}
}

// GetOrCreateIntro returns the singleton intro sequencer, creating it if
// needed.
func GetOrCreateIntro(e *ecs.ECS) *components.IntroData {
	entry, ok := components.Intro.First(e.World)
	if !ok {
		entry = factory.CreateIntro(e)
	}
	return components.Intro.Get(entry)
}

// scaleColor fades a color toward black/transparent by alpha (premultiplied).
func scaleColor(c color.RGBA, alpha float32) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
