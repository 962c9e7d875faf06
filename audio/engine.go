package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Engine owns the speaker and the two playback channels: melody for
// long sequences, effects for short transients, so a transient is
// never stuck behind a queued melody.
//
// Sound is best-effort. If the output device cannot be opened the
// engine enters silent mode: both channels are disabled and every
// PlayCue is a no-op, never an error.
type Engine struct {
	mu     sync.RWMutex // Protects config
	config *Config

	melody  *Channel
	effects *Channel

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool
}

// NewEngine creates an engine without touching the audio device
func NewEngine(cfg ...*Config) *Engine {
	config := DefaultConfig()
	if len(cfg) > 0 && cfg[0] != nil {
		config = cfg[0]
	}

	e := &Engine{
		config:  config,
		melody:  NewChannel(),
		effects: NewChannel(),
	}
	e.muted.Store(!config.Enabled)
	return e
}

// Start opens the speaker and registers both channels. Device failure
// switches to silent mode and is not an error.
func (e *Engine) Start() error {
	if e.running.Load() {
		return ErrEngineRunning
	}

	rate := beep.SampleRate(e.config.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		e.melody.Disable()
		e.effects.Disable()
		e.silentMode.Store(true)
		e.running.Store(true)
		return nil
	}

	speaker.Play(e.melody, e.effects)
	e.running.Store(true)
	return nil
}

// Close shuts the speaker down. Queued audio is dropped; playback is
// fire-and-forget so nothing waits for it.
func (e *Engine) Close() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	if !e.silentMode.Load() {
		speaker.Close()
	}
}

// PlayCue queues the cue's tone sequence on its channel. Returns false
// when the engine is not running, muted or in silent mode.
func (e *Engine) PlayCue(c Cue) bool {
	if !e.running.Load() || e.muted.Load() || e.silentMode.Load() {
		return false
	}

	tones := c.Sequence()
	if tones == nil {
		return false
	}

	e.mu.RLock()
	rate := beep.SampleRate(e.config.SampleRate)
	vol := e.config.MasterVolume
	e.mu.RUnlock()

	ch := e.melody
	if c.transient() {
		ch = e.effects
	}
	PlaySequence(tones, ch, rate, vol)
	return true
}

// Melody returns the melody channel
func (e *Engine) Melody() *Channel {
	return e.melody
}

// Effects returns the effects channel
func (e *Engine) Effects() *Channel {
	return e.effects
}

// ToggleMute toggles mute state, returns true if sound is now on
func (e *Engine) ToggleMute() bool {
	newMute := !e.muted.Load()
	e.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// IsEnabled returns true if running, unmuted and a device is open
func (e *Engine) IsEnabled() bool {
	return e.running.Load() && !e.muted.Load() && !e.silentMode.Load()
}

// IsRunning returns true if the engine started (even in silent mode)
func (e *Engine) IsRunning() bool {
	return e.running.Load()
}

// SetVolume updates master volume (0.0-1.0)
func (e *Engine) SetVolume(vol float64) {
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}

	e.mu.Lock()
	e.config.MasterVolume = vol
	e.mu.Unlock()
}
