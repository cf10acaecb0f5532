package config

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	MinMinutes = 1
	MaxMinutes = 120
)

var (
	validSoundExts = []string{".mp3", ".ogg", ".flac", ".wav"}
	validLogLevels = []string{"debug", "info", "warn", "error"}
	validThemes    = []string{"default", "light", "dark"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if c.Timer.Minutes < MinMinutes || c.Timer.Minutes > MaxMinutes {
		return errInvalidMinutes.Fmt(MinMinutes, MaxMinutes, c.Timer.Minutes)
	}

	if c.Sound.File != "" {
		if err := validateSound(c.Sound.File); err != nil {
			return err
		}
	}

	if err := ValidateTheme(c.Display.Theme); err != nil {
		return err
	}

	if !slices.Contains(validLogLevels, strings.ToLower(c.Log.Level)) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	u, err := url.Parse(c.Assistant.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errInvalidBaseURL.Fmt(c.Assistant.BaseURL)
	}

	return nil
}

func validateSound(path string) error {
	ext := strings.ToLower(filepath.Ext(path))

	if !slices.Contains(validSoundExts, ext) {
		return errInvalidSoundFormat.Fmt(path)
	}

	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return errSoundNotFound.Fmt(path)
	}

	return nil
}

// ValidateTheme reports an error unless name is a known theme.
func ValidateTheme(name string) error {
	if !slices.Contains(validThemes, name) {
		return errInvalidTheme.Fmt(name, validThemes)
	}

	return nil
}
