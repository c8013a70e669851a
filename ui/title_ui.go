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

// TitleUI holds the ebitenui layer for the title screen: a single clickable
// START button under the keyboard prompt.
type TitleUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnStart func()

	buttonFace text.Face
}

// NewTitleUI creates the title screen UI
func NewTitleUI(onStart func()) *TitleUI {
	tui := &TitleUI{
		OnStart: onStart,
	}

	tui.loadFonts()
	tui.buildUI()

	return tui
}

func (tui *TitleUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	tui.buttonFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
}

func (tui *TitleUI) buildUI() {
	// Transparent root; the intro renderer paints the background
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 150}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(140, 32),
		),
		widget.ButtonOpts.Image(startButtonImage()),
		widget.ButtonOpts.Text("START", &tui.buttonFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if tui.OnStart != nil {
				tui.OnStart()
			}
		}),
	)
	contentContainer.AddChild(startButton)

	rootContainer.AddChild(contentContainer)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Update processes pointer input for the UI layer
func (tui *TitleUI) Update() {
	tui.UI.Update()
}

// Draw renders the UI layer on top of the title screen
func (tui *TitleUI) Draw(screen *ebiten.Image) {
	tui.UI.Draw(screen)
}

func startButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}
