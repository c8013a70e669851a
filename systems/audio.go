package systems

import (
	"bytes"
	"sync"

	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
	"github.com/automoto/gemrush/synth"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioUnlocked      bool
	sfxCache           map[cfg.SoundID][]byte
	audioInitOnce      sync.Once
)

// initGlobalAudio creates the audio context and renders every configured
// melody to a PCM buffer (called once).
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		sfxCache = make(map[cfg.SoundID][]byte, len(cfg.Sound.Melodies))
		for id, melody := range cfg.Sound.Melodies {
			sfxCache[id] = synth.RenderMelody(melody, cfg.Audio.SampleRate)
		}
	})
}

// UnlockAudio initializes the audio context in response to a user gesture.
// Idempotent; until it has been called, queued sounds are dropped.
func UnlockAudio() {
	if audioUnlocked {
		return
	}
	audioUnlocked = true
	initGlobalAudio()
}

// AudioUnlocked reports whether a user gesture has enabled playback.
func AudioUnlocked() bool {
	return audioUnlocked
}

// UpdateAudio drains the pending SFX queue. Before the context is unlocked
// the queue is discarded instead of played.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)

	if !audioUnlocked {
		audioData.PendingSFX = audioData.PendingSFX[:0]
		return
	}

	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// playSFX renders one cached buffer through a fresh player. All failures are
// swallowed; the game keeps running without sound.
func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}

	buf, ok := sfxCache[soundID]
	if !ok {
		return
	}

	player, err := globalAudioContext.NewPlayer(bytes.NewReader(buf))
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}
	if volume > 1 {
		volume = 1
	}

	player.SetVolume(volume)
	player.Play()
}

// PlaySFXNow plays a sound immediately, bypassing the per-world queue. Used
// for sounds that must survive a scene change.
func PlaySFXNow(sound cfg.SoundID) {
	if audioUnlocked {
		playSFX(sound)
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// SetMuted toggles all sound output
func SetMuted(muted bool) {
	globalMuted = muted
}

// IsMuted returns whether sound output is muted
func IsMuted() bool {
	return globalMuted
}

// GetOrCreateAudio returns the singleton Audio component for this ECS,
// creating it if needed. Does not touch the audio context, so queueing is
// safe before unlock (and in headless tests).
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
