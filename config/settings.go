package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	appDirName       = "tomatick"
	settingsFileName = "settings.yaml"
)

// Settings holds user preferences persisted between runs
type Settings struct {
	WorkDuration  time.Duration
	BreakDuration time.Duration
	AutoCycle     bool
	MasterVolume  float64 // 0.0-1.0
}

type yamlSettings struct {
	WorkMinutes  int     `yaml:"work_minutes"`
	BreakMinutes int     `yaml:"break_minutes"`
	AutoCycle    *bool   `yaml:"auto_cycle"`
	MasterVolume float64 `yaml:"master_volume"`
}

// DefaultSettings returns the stock preferences
func DefaultSettings() Settings {
	return Settings{
		WorkDuration:  25 * time.Minute,
		BreakDuration: 5 * time.Minute,
		AutoCycle:     true,
		MasterVolume:  1.0,
	}
}

// DefaultPath resolves the settings file under the user config dir
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appDirName, settingsFileName), nil
}

// Load reads preferences from the given path.
// A missing file yields the defaults without error.
func Load(path string) (Settings, error) {
	settings := DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// Save writes preferences to the given path, creating parent
// directories as needed
func Save(path string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	auto := settings.AutoCycle
	fileData := yamlSettings{
		WorkMinutes:  int(settings.WorkDuration / time.Minute),
		BreakMinutes: int(settings.BreakDuration / time.Minute),
		AutoCycle:    &auto,
		MasterVolume: settings.MasterVolume,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func applyYamlSettings(settings *Settings, fileData yamlSettings) {
	if fileData.WorkMinutes > 0 {
		settings.WorkDuration = time.Duration(fileData.WorkMinutes) * time.Minute
	}
	if fileData.BreakMinutes > 0 {
		settings.BreakDuration = time.Duration(fileData.BreakMinutes) * time.Minute
	}
	if fileData.AutoCycle != nil {
		settings.AutoCycle = *fileData.AutoCycle
	}
	if fileData.MasterVolume > 0 && fileData.MasterVolume <= 1 {
		settings.MasterVolume = fileData.MasterVolume
	}
}
