package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order.
var ConfigPaths = []string{
	"./.greetcard.yaml",
	"~/.config/greetcard/config.yaml",
}

// Loader handles configuration loading with priority merging.
type Loader struct {
	configPaths []string
	getenv      func(string) string
}

// NewLoader creates a loader over ConfigPaths and the process environment.
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
		getenv:      os.Getenv,
	}
}

// LoadConfig loads configuration with this priority (highest first):
//  1. Command line flags (handled by caller)
//  2. GREETCARD_* environment variables
//  3. customPath, or else the search paths in order
//  4. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Lowest priority first so later files win.
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			path := expandPath(l.configPaths[i])
			if !fileExists(path) {
				continue
			}
			if err := loadFromFile(config, path); err != nil {
				return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
			}
		}
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// loadFromFile decodes path over config. Keys absent from the file keep
// their current values.
func loadFromFile(config *Config, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		"GREETCARD_CONTENT":         func(v string) error { config.Content = v; return nil },
		"GREETCARD_WATCH":           func(v string) error { return parseBool(v, &config.Watch) },
		"GREETCARD_TYPING_INTERVAL": func(v string) error { return parseDuration(v, &config.Typing.Interval) },
		"GREETCARD_GIFT_DELAY":      func(v string) error { return parseDuration(v, &config.Typing.GiftDelay) },
		"GREETCARD_OFFLINE":         func(v string) error { return parseBool(v, &config.Images.Offline) },
		"GREETCARD_IMAGE_TIMEOUT":   func(v string) error { return parseDuration(v, &config.Images.Timeout) },
		"GREETCARD_LOG_FILE":        func(v string) error { config.Logging.File = v; return nil },
		"GREETCARD_LOG_LEVEL":       func(v string) error { config.Logging.Level = v; return nil },
		"GREETCARD_TELEMETRY":       func(v string) error { return parseBool(v, &config.Telemetry.Enabled) },
	}

	for envVar, setter := range envMappings {
		if value := l.getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}
	return nil
}

func parseBool(v string, out *bool) error {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	*out = b
	return nil
}

func parseDuration(v string, out *time.Duration) error {
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	*out = d
	return nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
