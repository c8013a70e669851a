package systems

import (
	"os"

	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
	"github.com/automoto/gemrush/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle and menu navigation.
// This system should run AFTER UpdateInput but BEFORE the gameplay systems.
func UpdatePause(ecs *ecs.ECS) {
	round := GetOrCreateRound(ecs)
	if round.Phase == components.PhaseGameOver {
		return
	}

	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	// Toggle pause on ESC or P
	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.Active = !pause.Active
		if pause.Active {
			pause.SelectedOption = components.PauseResume
		}
	}

	if !pause.Active {
		return
	}

	// Navigate menu with wrap-around using modulo arithmetic
	numOptions := int(components.PauseQuit) + 1
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		PlaySFX(ecs, cfg.SoundMenuSelect)
		switch pause.SelectedOption {
		case components.PauseResume:
			pause.Active = false
		case components.PauseMute:
			SetMuted(!IsMuted())
			SaveCurrentSettings()
		case components.PauseQuit:
			os.Exit(0)
		}
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.Active {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	soundLabel := "Sound: On"
	if IsMuted() {
		soundLabel = "Sound: Off"
	}
	menuOptions := []string{"Resume", soundLabel, "Quit"}

	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		drawCenteredText(screen, option, fonts.Bold, width/2, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select   Esc: Resume"
	drawCenteredText(screen, hint, fonts.Small, width/2, int(height)-12, cfg.Pause.TextColorNormal)
}

// WithPauseCheck wraps a system to skip execution while paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.Active {
			return
		}
		system(e)
	}
}

// WithPlayingCheck wraps a system to run only during the playing phase, so
// gameplay freezes under the round banner and on game over.
func WithPlayingCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if round := GetOrCreateRound(e); round.Phase != components.PhasePlaying {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system with both the pause and phase gates.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithPlayingCheck(system))
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			Active:         false,
			SelectedOption: components.PauseResume,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
