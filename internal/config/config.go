// Package config loads greetcard settings from YAML files and the
// environment.
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings. Content and imagery live in the card file;
// this only tunes how the card plays.
type Config struct {
	// Content is the path of a card YAML file. Empty uses the built-in card.
	Content string `yaml:"content"`
	// Watch reloads Content when it changes on disk.
	Watch bool `yaml:"watch"`

	Typing    TypingConfig    `yaml:"typing"`
	Images    ImagesConfig    `yaml:"images"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

type TypingConfig struct {
	// Interval between two revealed characters.
	Interval time.Duration `yaml:"interval"`
	// GiftDelay is the pause between opening the gift and showing the cake.
	GiftDelay time.Duration `yaml:"gift_delay"`
}

type ImagesConfig struct {
	Offline bool          `yaml:"offline"`
	Timeout time.Duration `yaml:"timeout"`
}

type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

type TelemetryConfig struct {
	// Enabled exports phase spans when OTEL_EXPORTER_OTLP_ENDPOINT is set.
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Typing: TypingConfig{
			Interval:  50 * time.Millisecond,
			GiftDelay: 300 * time.Millisecond,
		},
		Images: ImagesConfig{
			Timeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Telemetry: TelemetryConfig{
			Enabled: true,
		},
	}
}

// Validate checks the configuration for values the card cannot run with.
func (c *Config) Validate() error {
	if c.Typing.Interval <= 0 {
		return errors.New("typing.interval must be positive")
	}
	if c.Typing.GiftDelay < 0 {
		return errors.New("typing.gift_delay must not be negative")
	}
	if c.Images.Timeout <= 0 {
		return errors.New("images.timeout must be positive")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("logging.level must be one of debug, info, warn, error")
	}
	return nil
}
