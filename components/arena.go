package components

import (
	"github.com/automoto/gemrush/assets"
	"github.com/yohamta/donburi"
)

type ArenaData struct {
	Arena *assets.Arena
}

var Arena = donburi.NewComponentType[ArenaData]()
