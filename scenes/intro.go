package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
	"github.com/automoto/gemrush/systems"
	"github.com/automoto/gemrush/systems/factory"
	"github.com/automoto/gemrush/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// IntroScene runs the scripted presentation: studio logo, subtitle, loading
// bar, then the title screen.
type IntroScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	titleUI      *ui.TitleUI
	once         sync.Once
}

// NewIntroScene creates a new intro scene
func NewIntroScene(sc SceneChanger) *IntroScene {
	return &IntroScene{sceneChanger: sc}
}

func (is *IntroScene) Update() {
	is.once.Do(is.configure)
	is.ecs.Update()

	// The UI layer only takes input on the title screen
	if is.onTitleScreen() {
		is.titleUI.Update()
	}
}

func (is *IntroScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if is.ecs == nil {
		return
	}
	is.ecs.Draw(screen)

	if is.onTitleScreen() {
		is.titleUI.Draw(screen)
	}
}

func (is *IntroScene) onTitleScreen() bool {
	if is.ecs == nil {
		return false
	}
	stage := systems.GetOrCreateIntro(is.ecs).Current()
	return stage == components.StageTitle || stage == components.StageDone
}

func (is *IntroScene) configure() {
	is.ecs = ecs.NewECS(donburi.NewWorld())

	createGameScene := func() interface{} {
		return NewGameScene(is.sceneChanger)
	}

	is.titleUI = ui.NewTitleUI(func() {
		systems.StartGame(is.sceneChanger, createGameScene)
	})

	factory.CreateIntro(is.ecs)

	// Audio system (runs first so queued jingles play the same frame)
	is.ecs.AddSystem(systems.UpdateAudio)

	is.ecs.AddSystem(systems.UpdateInput)
	is.ecs.AddSystem(systems.NewUpdateIntro(is.sceneChanger, createGameScene))

	is.ecs.AddRenderer(cfg.Default, systems.DrawIntro)
}
