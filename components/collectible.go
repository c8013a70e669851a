package components

import "github.com/yohamta/donburi"

// CollectibleData is a gem pickup with a bob animation. The bob is a draw
// offset only; the collision object never moves.
type CollectibleData struct {
	Value    int // score awarded on pickup
	BobPhase float64
}

var Collectible = donburi.NewComponentType[CollectibleData]()
