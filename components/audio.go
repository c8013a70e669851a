package components

import (
	cfg "github.com/automoto/gemrush/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised during the frame; the audio system
// drains the queue once the context is unlocked.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
