package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DeviceConfig says which hardware to attach to.
type DeviceConfig struct {
	// PortPrefix is matched against the start of MIDI port names.
	PortPrefix  string `json:"portPrefix"`
	AutoConnect bool   `json:"autoConnect"`
}

// MonitorConfig stores monitor UI preferences.
type MonitorConfig struct {
	// MirrorLEDs lights a pad while it is held down.
	MirrorLEDs bool `json:"mirrorLEDs"`
	Debug      bool `json:"debug,omitempty"`
}

// Config is the main configuration structure.
type Config struct {
	Device  DeviceConfig  `json:"device"`
	Monitor MonitorConfig `json:"monitor"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Device: DeviceConfig{
			PortPrefix:  "APC MINI",
			AutoConnect: true,
		},
		Monitor: MonitorConfig{
			MirrorLEDs: true,
		},
	}
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "apc-mini", "config.json"), nil
}

// Load reads the config file, falling back to defaults if it doesn't
// exist yet.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config file, creating the directory if needed.
func Save(cfg *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
