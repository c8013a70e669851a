package synth

import (
	"testing"
	"time"
)

const testRate = 44100

func TestRenderLength(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     int // bytes
	}{
		{"one second", time.Second, testRate * 4},
		{"quarter second", 250 * time.Millisecond, testRate / 4 * 4},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Render(Tone{Freq: 440, Duration: tt.duration, Wave: WaveSine, Volume: 1}, testRate)
			if len(buf) != tt.want {
				t.Errorf("Render returned %d bytes, want %d", len(buf), tt.want)
			}
		})
	}
}

func TestRenderNotSilent(t *testing.T) {
	waves := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"triangle", WaveTriangle},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tt := range waves {
		t.Run(tt.name, func(t *testing.T) {
			buf := Render(Tone{Freq: 440, Duration: 100 * time.Millisecond, Wave: tt.wave, Volume: 0.8}, testRate)
			for _, b := range buf {
				if b != 0 {
					return
				}
			}
			t.Errorf("%s tone rendered all-zero PCM", tt.name)
		})
	}
}

func TestEnvelopeShape(t *testing.T) {
	total := 1000
	attack := 100

	if got := envelope(0, total, attack); got != 0 {
		t.Errorf("envelope at sample 0 = %v, want 0", got)
	}
	if got := envelope(attack, total, attack); got != 1 {
		t.Errorf("envelope at attack end = %v, want 1", got)
	}
	// Decay must be monotonically decreasing after the attack
	prev := envelope(attack, total, attack)
	for i := attack + 1; i < total; i += 50 {
		cur := envelope(i, total, attack)
		if cur > prev {
			t.Fatalf("envelope increased at sample %d: %v > %v", i, cur, prev)
		}
		prev = cur
	}
	// Near silent at the end
	if got := envelope(total-1, total, attack); got > 0.01 {
		t.Errorf("envelope at end = %v, want < 0.01", got)
	}
}

func TestRenderMelodySpansLastNote(t *testing.T) {
	notes := []Note{
		{Tone: Tone{Freq: 440, Duration: 100 * time.Millisecond, Wave: WaveSquare, Volume: 0.5}},
		{Tone: Tone{Freq: 550, Duration: 100 * time.Millisecond, Wave: WaveSquare, Volume: 0.5}, Delay: 200 * time.Millisecond},
	}

	buf := RenderMelody(notes, testRate)
	// 200ms delay + 100ms duration = 300ms total
	want := sampleCount(300*time.Millisecond, testRate) * 4
	if len(buf) != want {
		t.Errorf("RenderMelody returned %d bytes, want %d", len(buf), want)
	}
}

func TestRenderMelodyEmpty(t *testing.T) {
	if buf := RenderMelody(nil, testRate); len(buf) != 0 {
		t.Errorf("empty melody rendered %d bytes, want 0", len(buf))
	}
}

func TestToPCMClipping(t *testing.T) {
	buf := toPCM([]float64{2.0, -2.0})
	// First frame clipped to MaxInt16, second to -MaxInt16
	first := int16(buf[0]) | int16(buf[1])<<8
	second := int16(buf[4]) | int16(buf[5])<<8
	if first != 32767 {
		t.Errorf("positive overflow clipped to %d, want 32767", first)
	}
	if second != -32767 {
		t.Errorf("negative overflow clipped to %d, want -32767", second)
	}
}

func TestToPCMStereoInterleave(t *testing.T) {
	buf := toPCM([]float64{0.5})
	if len(buf) != 4 {
		t.Fatalf("one mono sample produced %d bytes, want 4", len(buf))
	}
	if buf[0] != buf[2] || buf[1] != buf[3] {
		t.Error("left and right channels differ for mono source")
	}
}
