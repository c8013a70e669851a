package systems

import (
	"testing"

	cfg "github.com/automoto/gemrush/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestQueuedSoundsDroppedBeforeUnlock(t *testing.T) {
	if AudioUnlocked() {
		t.Skip("audio already unlocked by another test")
	}

	e := ecs.NewECS(donburi.NewWorld())

	PlaySFX(e, cfg.SoundCollect)
	PlaySFX(e, cfg.SoundDamage)

	audioData := GetOrCreateAudio(e)
	if len(audioData.PendingSFX) != 2 {
		t.Fatalf("pending queue = %d sounds, want 2", len(audioData.PendingSFX))
	}

	UpdateAudio(e)

	if len(audioData.PendingSFX) != 0 {
		t.Errorf("pending queue = %d sounds after drain, want 0", len(audioData.PendingSFX))
	}
	if globalAudioContext != nil {
		t.Error("audio context created without a user gesture")
	}
}
