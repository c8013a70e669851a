package components

import "github.com/yohamta/donburi"

// PauseOption represents the available pause menu selections
type PauseOption int

const (
	PauseResume PauseOption = iota
	PauseMute
	PauseQuit
)

// PauseData stores the current state of the pause overlay
type PauseData struct {
	Active         bool
	SelectedOption PauseOption
}

var Pause = donburi.NewComponentType[PauseData]()
