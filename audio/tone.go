package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	// toneGain is the base amplitude of a rendered tone
	toneGain = 0.3

	// toneDecayRate is the exponential envelope constant (1/s)
	toneDecayRate = 20.0

	// toneFadeTail is the linear fade at the end of every tone,
	// long enough to kill end-of-note clicks
	toneFadeTail = 5 * time.Millisecond
)

// toneStreamer renders one tone as a finite mono-in-stereo stream.
// The waveform is a band-limited square: fundamental plus 3rd and 5th
// odd harmonics at 1, 1/3 and 1/5, scaled by 4/pi, under a 0.3*e^(-20t)
// envelope with a 5ms linear tail fade. Freq 0 streams pure silence.
type toneStreamer struct {
	freq    float64
	rate    beep.SampleRate
	pos     int
	samples int
}

// NewToneStreamer creates a finite streamer for one tone.
// Output is a pure function of (freq, d, rate); re-invoking with the
// same arguments restarts the identical stream. freq must be finite
// and >= 0, d must be >= 0 (caller-validated).
func NewToneStreamer(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &toneStreamer{
		freq:    freq,
		rate:    rate,
		samples: rate.N(d),
	}
}

// Len returns the remaining sample count
func (t *toneStreamer) Len() int {
	return t.samples - t.pos
}

func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.samples {
		return 0, false
	}

	for i := range samples {
		if t.pos >= t.samples {
			return i, true
		}
		v := toneSample(t.freq, t.pos, t.samples, t.rate)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *toneStreamer) Err() error { return nil }

// toneSample computes sample i of a tone that is total samples long
func toneSample(freq float64, i, total int, rate beep.SampleRate) float64 {
	if freq == 0 {
		return 0
	}

	ts := float64(i) / float64(rate)
	phase := 2 * math.Pi * freq * ts

	// Band-limited square approximation
	wave := (math.Sin(phase) + math.Sin(3*phase)/3 + math.Sin(5*phase)/5) * (4 / math.Pi)

	env := toneGain * math.Exp(-toneDecayRate*ts)

	// Linear fade over the final tail to avoid a discontinuity click
	tail := toneFadeTail.Seconds()
	end := float64(total) / float64(rate)
	fade := 1.0
	if remain := end - ts; remain < tail {
		fade = remain / tail
		if fade < 0 {
			fade = 0
		}
	}

	return wave * env * fade
}

// RenderTone eagerly materializes a tone as mono samples. Playback uses
// the lazy streamer; this exists for callers that need the whole
// waveform up front (tests, pre-allocation checks).
func RenderTone(freq float64, d time.Duration, rate beep.SampleRate) []float64 {
	total := rate.N(d)
	buf := make([]float64, total)
	if freq == 0 {
		return buf
	}
	for i := range buf {
		buf[i] = toneSample(freq, i, total, rate)
	}
	return buf
}
