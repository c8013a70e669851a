package components

import "github.com/yohamta/donburi"

// GameOverData stores the final result shown on the game over screen
type GameOverData struct {
	FinalScore int
	FinalRound int
}

// GameOver is the component type for game over screen state
var GameOver = donburi.NewComponentType[GameOverData]()
