package audio

import (
	"testing"
)

// TestDefaultConfig verifies stock configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Enabled {
		t.Error("Expected audio enabled by default")
	}
	if cfg.MasterVolume != 1.0 {
		t.Errorf("Expected master volume 1.0, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected sample rate 44100, got %d", cfg.SampleRate)
	}
}

// TestLoadConfigEnv verifies environment variable overrides
func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("TOMATICK_AUDIO_ENABLED", "false")
	t.Setenv("TOMATICK_MASTER_VOLUME", "40")
	t.Setenv("TOMATICK_SAMPLE_RATE", "48000")

	cfg := LoadConfig()

	if cfg.Enabled {
		t.Error("Expected audio disabled via env")
	}
	if cfg.MasterVolume != 0.4 {
		t.Errorf("Expected master volume 0.4, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.SampleRate)
	}
}

// TestLoadConfigInvalidEnv verifies malformed values fall back to
// defaults
func TestLoadConfigInvalidEnv(t *testing.T) {
	t.Setenv("TOMATICK_AUDIO_ENABLED", "maybe")
	t.Setenv("TOMATICK_MASTER_VOLUME", "loud")
	t.Setenv("TOMATICK_SAMPLE_RATE", "-1")

	cfg := LoadConfig()

	if !cfg.Enabled {
		t.Error("Expected default enabled for malformed bool")
	}
	if cfg.MasterVolume != 1.0 {
		t.Errorf("Expected default volume for malformed value, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate for invalid value, got %d", cfg.SampleRate)
	}
}

// TestLoadConfigVolumeClamp verifies out-of-range volumes clamp
func TestLoadConfigVolumeClamp(t *testing.T) {
	t.Setenv("TOMATICK_MASTER_VOLUME", "250")
	if cfg := LoadConfig(); cfg.MasterVolume != 1.0 {
		t.Errorf("Expected volume clamped to 1.0, got %f", cfg.MasterVolume)
	}

	t.Setenv("TOMATICK_MASTER_VOLUME", "-10")
	if cfg := LoadConfig(); cfg.MasterVolume != 0.0 {
		t.Errorf("Expected volume clamped to 0.0, got %f", cfg.MasterVolume)
	}
}
