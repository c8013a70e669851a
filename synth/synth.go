// Package synth renders parametric retro tones to 16-bit PCM buffers.
// Sounds are described as oscillator settings rather than shipped as files,
// so the whole effect set lives in a few lines of configuration.
package synth

import (
	"math"
	"math/rand"
	"time"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveSaw
	WaveNoise
)

// Tone describes a single oscillator burst: frequency in Hz, total duration,
// wave shape and peak volume in [0, 1].
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     WaveType
	Volume   float64
}

// Note places a tone at a fixed offset from the start of a melody.
type Note struct {
	Tone  Tone
	Delay time.Duration
}

const (
	// Attack ramp applied to every tone. Short enough to stay percussive,
	// long enough to avoid the click of a hard onset.
	attackTime = 10 * time.Millisecond

	// Exponential decay constant. exp(-5) ~= 0.007, so a tone is near
	// silent by the end of its duration.
	decayRate = 5.0

	channels       = 2
	bytesPerSample = 2 // int16
)

// sampleCount returns the number of frames d spans at the given rate.
func sampleCount(d time.Duration, sampleRate int) int {
	return int(float64(sampleRate) * d.Seconds())
}

// oscillate produces the raw waveform value for phase in [0, 1).
func oscillate(w WaveType, phase float64) float64 {
	switch w {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	}
	return 0
}

// envelope returns the gain for sample position i of total samples:
// linear ramp up over the attack, then exponential decay to near zero
// by the end of the tone.
func envelope(i, total, attack int) float64 {
	if attack > 0 && i < attack {
		return float64(i) / float64(attack)
	}
	if total <= attack {
		return 1.0
	}
	progress := float64(i-attack) / float64(total-attack)
	return math.Exp(-decayRate * progress)
}

// renderSamples renders a tone into a float64 mono buffer.
func renderSamples(t Tone, sampleRate int) []float64 {
	total := sampleCount(t.Duration, sampleRate)
	attack := sampleCount(attackTime, sampleRate)
	if attack > total {
		attack = total
	}

	out := make([]float64, total)
	phase := 0.0
	for i := 0; i < total; i++ {
		out[i] = oscillate(t.Wave, phase) * envelope(i, total, attack) * t.Volume
		phase += t.Freq / float64(sampleRate)
		phase -= math.Floor(phase) // keep in [0, 1)
	}
	return out
}

// Render produces a single tone as 16-bit little-endian stereo PCM,
// the format ebiten's audio context consumes directly.
func Render(t Tone, sampleRate int) []byte {
	return toPCM(renderSamples(t, sampleRate))
}

// RenderMelody mixes an ordered sequence of delayed notes into one PCM
// buffer. Overlapping notes are summed and clipped, so a melody plays as a
// single buffer instead of a chain of timers.
func RenderMelody(notes []Note, sampleRate int) []byte {
	totalLen := 0
	for _, n := range notes {
		end := sampleCount(n.Delay, sampleRate) + sampleCount(n.Tone.Duration, sampleRate)
		if end > totalLen {
			totalLen = end
		}
	}

	mix := make([]float64, totalLen)
	for _, n := range notes {
		offset := sampleCount(n.Delay, sampleRate)
		for i, s := range renderSamples(n.Tone, sampleRate) {
			mix[offset+i] += s
		}
	}
	return toPCM(mix)
}

// toPCM converts mono float samples to interleaved 16-bit LE stereo bytes,
// clipping anything outside [-1, 1].
func toPCM(samples []float64) []byte {
	out := make([]byte, len(samples)*channels*bytesPerSample)
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		v := int16(s * math.MaxInt16)
		lo := byte(v)
		hi := byte(v >> 8)
		base := i * channels * bytesPerSample
		out[base] = lo
		out[base+1] = hi
		out[base+2] = lo
		out[base+3] = hi
	}
	return out
}
