// Package config loads compass settings from the config file, the
// environment and command-line flags.
package config

import (
	"fmt"
	"io"
	"os"
)

type (
	// Config holds all configuration settings
	Config struct {
		Assistant     AssistantConfig    `mapstructure:"assistant"`
		Log           LogConfig          `mapstructure:"log"`
		Sound         SoundConfig        `mapstructure:"sound"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		Timer         TimerConfig        `mapstructure:"timer"`
	}

	// TimerConfig holds timer-related settings
	TimerConfig struct {
		// Minutes is the countdown length used when no saved setting exists
		Minutes           int  `mapstructure:"minutes"`
		AutoBreakReminder bool `mapstructure:"auto_break_reminder"`
	}

	// SoundConfig holds the completion alert settings
	SoundConfig struct {
		// File is an optional mp3, ogg, flac or wav file played on
		// completion. A synthesized tone is used when it is empty or
		// cannot be played
		File    string `mapstructure:"file"`
		Enabled bool   `mapstructure:"enabled"`
	}

	// NotificationConfig holds desktop notification settings
	NotificationConfig struct {
		// Cmd is an optional command run on timer completion
		Cmd     string `mapstructure:"cmd"`
		Enabled bool   `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		Theme          string `mapstructure:"theme"`
		TwentyFourHour bool   `mapstructure:"twenty_four_hour"`
	}

	// AssistantConfig holds the remote completion settings
	AssistantConfig struct {
		APIKey  string `mapstructure:"api_key"`
		BaseURL string `mapstructure:"base_url"`
		Model   string `mapstructure:"model"`
	}

	// LogConfig holds the application log settings
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.1.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Default returns the configuration used before any option is applied.
func Default() *Config {
	return &Config{
		Timer: TimerConfig{
			Minutes:           defaultMinutes,
			AutoBreakReminder: true,
		},
		Sound: SoundConfig{
			Enabled: true,
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Display: DisplayConfig{
			Theme: "default",
		},
		Assistant: AssistantConfig{
			BaseURL: defaultBaseURL,
			Model:   defaultModel,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// New creates a new Config with default values and applies options.
func New(opts ...Option) (*Config, error) {
	cfg := Default()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigValidation, err)
	}

	return cfg, nil
}
