package factory

import (
	"github.com/automoto/gemrush/archetypes"
	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateIntro builds the intro sequencer with the ordered stage script and the
// tweens that drive each stage's visuals.
func CreateIntro(ecs *ecs.ECS) *donburi.Entry {
	intro := archetypes.Intro.Spawn(ecs)

	blink := gween.NewSequence(
		gween.New(1, 0, 0.5, ease.Linear),
		gween.New(0, 1, 0.5, ease.Linear),
	)
	blink.SetLoop(-1)

	components.Intro.SetValue(intro, components.IntroData{
		Stages: []components.IntroStage{
			{ID: components.StageLogo, Duration: cfg.Intro.LogoFrames},
			{ID: components.StageSubtitle, Duration: cfg.Intro.SubtitleFrames},
			{ID: components.StageLoading, Duration: cfg.Intro.LoadingFrames},
			{ID: components.StageTitle, Duration: 0}, // waits for input
		},
		LogoAlpha:   gween.New(0, 1, float32(cfg.Intro.LogoFrames)/60, ease.InOutQuad),
		BarProgress: gween.New(0, 1, float32(cfg.Intro.LoadingFrames)/60, ease.Linear),
		Blink:       blink,
		BlinkVal:    1,
	})

	return intro
}
