package audio

import (
	"testing"
)

// TestNewEngine verifies engine construction does not touch the device
func TestNewEngine(t *testing.T) {
	e := NewEngine()

	if e == nil {
		t.Fatal("Expected non-nil engine")
	}
	if e.IsRunning() {
		t.Error("Expected engine to not be running before Start()")
	}
	if e.IsMuted() {
		t.Error("Expected engine unmuted with default config")
	}
	if e.Melody() == nil || e.Effects() == nil {
		t.Fatal("Expected both channels to exist")
	}
	if e.Melody() == e.Effects() {
		t.Error("Expected melody and effects to be independent channels")
	}
}

// TestEngineDisabledConfig verifies Enabled=false starts muted
func TestEngineDisabledConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false

	e := NewEngine(cfg)
	if !e.IsMuted() {
		t.Error("Expected engine muted when config disables audio")
	}
}

// TestEnginePlayCueBeforeStart verifies cues are rejected before Start
func TestEnginePlayCueBeforeStart(t *testing.T) {
	e := NewEngine()

	if e.PlayCue(CueWorkComplete) {
		t.Error("Expected PlayCue to return false before Start()")
	}
	if e.Melody().Len() != 0 {
		t.Error("Expected nothing queued before Start()")
	}
}

// TestEngineStartStop verifies lifecycle including silent-mode fallback.
// Speaker initialization may fail in CI without an audio device; the
// engine must still come up.
func TestEngineStartStop(t *testing.T) {
	e := NewEngine()

	if err := e.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if !e.IsRunning() {
		t.Error("Expected engine running after Start()")
	}
	if e.silentMode.Load() {
		t.Log("No audio device available, engine in silent mode (expected in CI)")
	}

	// Double start is rejected
	if err := e.Start(); err != ErrEngineRunning {
		t.Errorf("Expected ErrEngineRunning on double start, got %v", err)
	}

	e.Close()
	if e.IsRunning() {
		t.Error("Expected engine stopped after Close()")
	}

	// Idempotent close
	e.Close()
}

// TestEngineMuteToggle verifies mute round trip
func TestEngineMuteToggle(t *testing.T) {
	e := NewEngine()

	if on := e.ToggleMute(); on {
		t.Error("Expected ToggleMute to report sound off")
	}
	if !e.IsMuted() {
		t.Error("Expected muted after toggle")
	}
	if on := e.ToggleMute(); !on {
		t.Error("Expected ToggleMute to report sound on")
	}
}

// TestEngineMutedPlayCue verifies muted engines queue nothing
func TestEngineMutedPlayCue(t *testing.T) {
	e := NewEngine()
	if err := e.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	defer e.Close()

	e.ToggleMute()
	if e.PlayCue(CueWorkComplete) {
		t.Error("Expected PlayCue to return false while muted")
	}
}

// TestEngineUnknownCue verifies unknown cues are rejected
func TestEngineUnknownCue(t *testing.T) {
	e := NewEngine()
	if err := e.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	defer e.Close()

	if e.PlayCue(Cue(999)) {
		t.Error("Expected PlayCue to return false for unknown cue")
	}
}

// TestEngineSetVolume verifies clamping
func TestEngineSetVolume(t *testing.T) {
	e := NewEngine()

	e.SetVolume(1.7)
	e.mu.RLock()
	vol := e.config.MasterVolume
	e.mu.RUnlock()
	if vol != 1.0 {
		t.Errorf("Expected volume clamped to 1.0, got %f", vol)
	}

	e.SetVolume(-0.3)
	e.mu.RLock()
	vol = e.config.MasterVolume
	e.mu.RUnlock()
	if vol != 0.0 {
		t.Errorf("Expected volume clamped to 0.0, got %f", vol)
	}
}
