package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// GameOverUI holds the ebitenui layer for the game over screen: RESTART and
// TITLE SCREEN buttons under the result text.
type GameOverUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnRestart func()
	OnTitle   func()

	buttonFace text.Face
}

// NewGameOverUI creates the game over UI
func NewGameOverUI(onRestart, onTitle func()) *GameOverUI {
	gui := &GameOverUI{
		OnRestart: onRestart,
		OnTitle:   onTitle,
	}

	gui.loadFonts()
	gui.buildUI()

	return gui
}

func (gui *GameOverUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	gui.buttonFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (gui *GameOverUI) buildUI() {
	// Transparent root; DrawGameOver paints the background
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 120}),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	restartButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 30),
		),
		widget.ButtonOpts.Image(startButtonImage()),
		widget.ButtonOpts.Text("RESTART", &gui.buttonFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if gui.OnRestart != nil {
				gui.OnRestart()
			}
		}),
	)
	contentContainer.AddChild(restartButton)

	titleButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 30),
		),
		widget.ButtonOpts.Image(menuButtonImage()),
		widget.ButtonOpts.Text("TITLE SCREEN", &gui.buttonFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{220, 220, 220, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{180, 180, 180, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if gui.OnTitle != nil {
				gui.OnTitle()
			}
		}),
	)
	contentContainer.AddChild(titleButton)

	rootContainer.AddChild(contentContainer)

	gui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Update processes pointer input for the UI layer
func (gui *GameOverUI) Update() {
	gui.UI.Update()
}

// Draw renders the UI layer on top of the game over screen
func (gui *GameOverUI) Draw(screen *ebiten.Image) {
	gui.UI.Draw(screen)
}

func menuButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}
