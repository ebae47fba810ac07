// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultFile is the settings file name looked up in the working directory.
const DefaultFile = "wifi_config.json"

// Config holds the application settings. Values missing from the settings
// file keep their defaults.
type Config struct {
	Interface         string `json:"interface"`
	TestHost          string `json:"test_host"`
	ScanInterval      int    `json:"scan_interval"`
	LogDir            string `json:"log_dir"`
	MaxLogAgeDays     int    `json:"max_log_age_days"`
	PingTimeout       int    `json:"ping_timeout"`
	ConnectionTimeout int    `json:"connection_timeout"`
	AutoCleanup       bool   `json:"auto_cleanup"`
	ExportFormat      string `json:"export_format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Interface:         "wlan0",
		TestHost:          "8.8.8.8",
		ScanInterval:      10,
		LogDir:            "./wifi_logs",
		MaxLogAgeDays:     30,
		PingTimeout:       5,
		ConnectionTimeout: 15,
		AutoCleanup:       true,
		ExportFormat:      "json",
	}
}

// Load reads the settings file at path, merging it over the defaults. A
// missing file is not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the settings to path atomically.
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to move config into place: %w", err)
	}
	return nil
}

// EnsureLogDir creates the log directory if needed and returns its path.
func (c Config) EnsureLogDir() (string, error) {
	if err := os.MkdirAll(c.LogDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory %s: %w", c.LogDir, err)
	}
	return filepath.Clean(c.LogDir), nil
}

// ScanIntervalDuration returns the idle delay between continuous-scan
// cycles.
func (c Config) ScanIntervalDuration() time.Duration {
	return time.Duration(c.ScanInterval) * time.Second
}

// ConnectionTimeoutDuration returns the timeout for a connect invocation.
func (c Config) ConnectionTimeoutDuration() time.Duration {
	return time.Duration(c.ConnectionTimeout) * time.Second
}

// PingTimeoutDuration returns the per-probe ping timeout.
func (c Config) PingTimeoutDuration() time.Duration {
	return time.Duration(c.PingTimeout) * time.Second
}
