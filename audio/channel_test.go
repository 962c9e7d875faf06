package audio

import (
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// constStreamer emits n samples of a fixed value, for ordering checks
type constStreamer struct {
	val float64
	n   int
}

func (s *constStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.n <= 0 {
		return 0, false
	}
	for i := range samples {
		if s.n <= 0 {
			return i, true
		}
		samples[i][0] = s.val
		samples[i][1] = s.val
		s.n--
	}
	return len(samples), true
}

func (s *constStreamer) Err() error { return nil }

// drain pulls count samples from the channel in chunks
func drain(ch *Channel, count, chunk int) []float64 {
	out := make([]float64, 0, count)
	buf := make([][2]float64, chunk)
	for len(out) < count {
		n, _ := ch.Stream(buf)
		for i := 0; i < n && len(out) < count; i++ {
			out = append(out, buf[i][0])
		}
	}
	return out
}

// TestChannelOrdering verifies a queued streamer plays to completion
// before any sample of the next one
func TestChannelOrdering(t *testing.T) {
	ch := NewChannel()
	ch.Append(&constStreamer{val: 1.0, n: 250})
	ch.Append(&constStreamer{val: 2.0, n: 250})

	out := drain(ch, 500, 64)

	for i := 0; i < 250; i++ {
		if out[i] != 1.0 {
			t.Fatalf("Sample %d: expected first streamer value, got %f", i, out[i])
		}
	}
	for i := 250; i < 500; i++ {
		if out[i] != 2.0 {
			t.Fatalf("Sample %d: expected second streamer value, got %f", i, out[i])
		}
	}
}

// TestChannelKeepAlive verifies an empty channel streams silence and
// keeps reporting ok
func TestChannelKeepAlive(t *testing.T) {
	ch := NewChannel()

	buf := make([][2]float64, 128)
	buf[0] = [2]float64{0.5, 0.5} // Stale data must be overwritten

	n, ok := ch.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Expected full silent fill, got n=%d ok=%v", n, ok)
	}
	for i := range buf {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("Sample %d: expected silence, got %v", i, buf[i])
		}
	}
}

// TestChannelResumesAfterIdle verifies appends after an idle period
// still play
func TestChannelResumesAfterIdle(t *testing.T) {
	ch := NewChannel()

	buf := make([][2]float64, 64)
	ch.Stream(buf) // Idle silence

	ch.Append(&constStreamer{val: 0.7, n: 10})
	n, ok := ch.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Expected keep-alive fill, got n=%d ok=%v", n, ok)
	}
	for i := 0; i < 10; i++ {
		if buf[i][0] != 0.7 {
			t.Fatalf("Sample %d: expected queued value, got %f", i, buf[i][0])
		}
	}
	for i := 10; i < len(buf); i++ {
		if buf[i][0] != 0 {
			t.Fatalf("Sample %d: expected trailing silence, got %f", i, buf[i][0])
		}
	}
}

// TestChannelDisabled verifies appends on a disabled channel are no-ops
func TestChannelDisabled(t *testing.T) {
	ch := NewChannel()
	ch.Disable()

	ch.Append(&constStreamer{val: 1.0, n: 100})
	if ch.Len() != 0 {
		t.Errorf("Expected empty queue on disabled channel, got %d", ch.Len())
	}

	buf := make([][2]float64, 32)
	n, ok := ch.Stream(buf)
	if n != len(buf) || !ok {
		t.Errorf("Disabled channel should still stream silence, got n=%d ok=%v", n, ok)
	}
	for i := range buf {
		if buf[i][0] != 0 {
			t.Fatalf("Sample %d: expected silence from disabled channel", i)
		}
	}
}

// TestChannelDrained verifies drain signaling
func TestChannelDrained(t *testing.T) {
	ch := NewChannel()

	// Already empty: immediately closed
	select {
	case <-ch.Drained():
	default:
		t.Fatal("Expected Drained to be closed for an empty channel")
	}

	ch.Append(&constStreamer{val: 1.0, n: 50})
	done := ch.Drained()

	select {
	case <-done:
		t.Fatal("Expected Drained to stay open while queue is non-empty")
	default:
	}

	drain(ch, 50, 32)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Expected Drained to close once the queue emptied")
	}
}

// TestChannelConcurrentAppend verifies concurrent producers never lose
// or corrupt queued streamers
func TestChannelConcurrentAppend(t *testing.T) {
	ch := NewChannel()

	const producers = 8
	const perProducer = 25

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				ch.Append(&constStreamer{val: 1.0, n: 4})
			}
		}()
	}
	wg.Wait()

	if ch.Len() != producers*perProducer {
		t.Fatalf("Expected %d queued streamers, got %d", producers*perProducer, ch.Len())
	}

	out := drain(ch, producers*perProducer*4, 128)
	for i, v := range out {
		if v != 1.0 {
			t.Fatalf("Sample %d: expected 1.0, got %f", i, v)
		}
	}
}

// TestRenderSequenceGapless verifies sequence rendering produces the
// exact summed sample count with rests included
func TestRenderSequenceGapless(t *testing.T) {
	rate := beep.SampleRate(44100)
	tones := []Tone{
		{440.0, 50 * time.Millisecond},
		Rest(20 * time.Millisecond),
		{880.0, 30 * time.Millisecond},
	}

	want := 0
	for _, tone := range tones {
		want += rate.N(tone.Duration)
	}

	s := renderSequence(tones, rate)
	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	if total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

// TestPlaySequenceNonBlocking verifies PlaySequence only queues
func TestPlaySequenceNonBlocking(t *testing.T) {
	rate := beep.SampleRate(44100)
	ch := NewChannel()

	start := time.Now()
	PlaySequence(workCompleteCue, ch, rate, 1.0)
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("PlaySequence took %v, expected immediate return", elapsed)
	}

	if ch.Len() != 1 {
		t.Errorf("Expected one queued sequence, got %d", ch.Len())
	}
}
