package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	InvulnFrames int // Invincibility frames after enemy contact
}

var Player = donburi.NewComponentType[PlayerData]()
