package components

import (
	cfg "github.com/automoto/gemrush/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions. JustPressed/JustReleased are computed on demand by comparing
// frames. Pointer clicks are tracked alongside for the UI buttons.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	MouseX, MouseY   int
	MouseJustPressed bool
}

var Input = donburi.NewComponentType[InputData]()
