package config

import (
	"time"

	"github.com/automoto/gemrush/synth"
)

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Gameplay sounds
	SoundCollect
	SoundDamage
	SoundRoundClear
	SoundGameOver
	// Intro/UI sounds
	SoundLogoFanfare
	SoundLoadingTick
	SoundStart
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to synthesized melodies. Single tones are
// one-note melodies; everything is rendered to PCM once and cached.
type SoundConfig struct {
	Melodies          map[SoundID][]synth.Note
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

// note is a small helper to keep the melody tables readable.
func note(freq float64, dur time.Duration, wave synth.WaveType, vol float64, delay time.Duration) synth.Note {
	return synth.Note{
		Tone:  synth.Tone{Freq: freq, Duration: dur, Wave: wave, Volume: vol},
		Delay: delay,
	}
}

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		Melodies: map[SoundID][]synth.Note{
			SoundCollect: {
				note(880, 80*time.Millisecond, synth.WaveSquare, 0.4, 0),
				note(1320, 60*time.Millisecond, synth.WaveSquare, 0.3, 60*time.Millisecond),
			},
			SoundDamage: {
				note(110, 200*time.Millisecond, synth.WaveSaw, 0.5, 0),
			},
			SoundRoundClear: {
				note(523.25, 100*time.Millisecond, synth.WaveSquare, 0.35, 0),
				note(659.25, 100*time.Millisecond, synth.WaveSquare, 0.35, 80*time.Millisecond),
				note(783.99, 100*time.Millisecond, synth.WaveSquare, 0.35, 160*time.Millisecond),
				note(1046.50, 180*time.Millisecond, synth.WaveSquare, 0.4, 240*time.Millisecond),
			},
			SoundGameOver: {
				note(523.25, 220*time.Millisecond, synth.WaveTriangle, 0.4, 0),
				note(440.00, 220*time.Millisecond, synth.WaveTriangle, 0.4, 200*time.Millisecond),
				note(349.23, 220*time.Millisecond, synth.WaveTriangle, 0.4, 400*time.Millisecond),
				note(293.66, 260*time.Millisecond, synth.WaveTriangle, 0.4, 600*time.Millisecond),
				note(261.63, 400*time.Millisecond, synth.WaveTriangle, 0.45, 820*time.Millisecond),
			},
			SoundLogoFanfare: {
				note(261.63, 150*time.Millisecond, synth.WaveSine, 0.4, 0),
				note(392.00, 150*time.Millisecond, synth.WaveSine, 0.4, 120*time.Millisecond),
				note(523.25, 150*time.Millisecond, synth.WaveSine, 0.4, 240*time.Millisecond),
				note(659.25, 300*time.Millisecond, synth.WaveSine, 0.45, 360*time.Millisecond),
			},
			SoundLoadingTick: {
				note(1200, 40*time.Millisecond, synth.WaveSquare, 0.15, 0),
			},
			SoundStart: {
				note(523.25, 90*time.Millisecond, synth.WaveSquare, 0.35, 0),
				note(659.25, 90*time.Millisecond, synth.WaveSquare, 0.35, 70*time.Millisecond),
				note(783.99, 90*time.Millisecond, synth.WaveSquare, 0.35, 140*time.Millisecond),
				note(1046.50, 200*time.Millisecond, synth.WaveSquare, 0.4, 210*time.Millisecond),
			},
			SoundMenuNavigate: {
				note(440, 50*time.Millisecond, synth.WaveSquare, 0.2, 0),
			},
			SoundMenuSelect: {
				note(660, 70*time.Millisecond, synth.WaveSquare, 0.3, 0),
			},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundDamage:   1.3,
			SoundGameOver: 1.2,
		},
	}
}
