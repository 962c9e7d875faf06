package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestLoadMissingFile verifies defaults come back without error
func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error for missing file: %v", err)
	}
	if settings != DefaultSettings() {
		t.Errorf("Expected defaults, got %+v", settings)
	}
}

// TestSaveLoadRoundTrip verifies persistence
func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	want := Settings{
		WorkDuration:  50 * time.Minute,
		BreakDuration: 10 * time.Minute,
		AutoCycle:     false,
		MasterVolume:  0.6,
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("Round trip mismatch: got %+v, want %+v", got, want)
	}
}

// TestLoadPartialFile verifies unset fields keep defaults
func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := []byte("work_minutes: 45\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.WorkDuration != 45*time.Minute {
		t.Errorf("Expected work 45m, got %v", settings.WorkDuration)
	}
	if settings.BreakDuration != DefaultSettings().BreakDuration {
		t.Errorf("Expected default break, got %v", settings.BreakDuration)
	}
	if !settings.AutoCycle {
		t.Error("Expected default auto-cycle")
	}
}

// TestLoadRejectsInvalidValues verifies out-of-range values fall back
func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := []byte("work_minutes: -5\nbreak_minutes: 0\nmaster_volume: 3.5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings != DefaultSettings() {
		t.Errorf("Expected defaults for invalid values, got %+v", settings)
	}
}

// TestLoadMalformedYaml verifies parse errors surface with defaults
func TestLoadMalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("work_minutes: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err == nil {
		t.Error("Expected error for malformed yaml")
	}
	if settings != DefaultSettings() {
		t.Errorf("Expected defaults alongside error, got %+v", settings)
	}
}
