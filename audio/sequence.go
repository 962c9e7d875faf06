package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// renderSequence turns a tone table into one finite streamer playing
// the tones back to back. Rests use beep's silence source so gaps are
// sample-exact.
func renderSequence(tones []Tone, rate beep.SampleRate) beep.Streamer {
	streamers := make([]beep.Streamer, 0, len(tones))
	for _, tone := range tones {
		if tone.Freq == 0 {
			streamers = append(streamers, beep.Silence(rate.N(tone.Duration)))
			continue
		}
		streamers = append(streamers, NewToneStreamer(tone.Freq, tone.Duration, rate))
	}
	return beep.Seq(streamers...)
}

// PlaySequence renders tones in order and appends them to the channel.
// Playback is gapless and strictly ordered. The call returns once the
// tones are queued; it never waits for playback. Callers that need to
// block until the channel is quiet wait on ch.Drained().
func PlaySequence(tones []Tone, ch *Channel, rate beep.SampleRate, volume float64) {
	if len(tones) == 0 {
		return
	}
	ch.Append(newVolume(renderSequence(tones, rate), volume))
}

// newVolume wraps a streamer with gain.
// math.Log2(0) is -Inf, so zero volume is handled as silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
