package shell

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ayoisaiah/compass/internal/config"
	"github.com/ayoisaiah/compass/internal/models"
	"github.com/ayoisaiah/compass/store"
	"github.com/ayoisaiah/compass/timer"
)

// NewSettingsRepository returns the settings repository backed by db. A
// nil value means nothing has been saved yet.
func NewSettingsRepository(db store.DB) store.Repository[models.Settings] {
	return store.NewJSON(db, store.KeySettings, func() models.Settings {
		return models.Settings{}
	})
}

// DefaultSettings returns the settings used on first run.
func DefaultSettings(cfg *config.Config) models.Settings {
	minutes := cfg.Timer.Minutes
	if minutes < timer.MinMinutes || minutes > timer.MaxMinutes {
		minutes = timer.DefaultMinutes
	}

	return models.Settings{
		Theme:               cfg.Display.Theme,
		SoundEnabled:        cfg.Sound.Enabled,
		AutoBreakReminder:   cfg.Timer.AutoBreakReminder,
		DefaultTimerMinutes: minutes,
		Version:             config.Version,
	}
}

func (s *Shell) loadSettings(cfg *config.Config) {
	saved, err := s.settingsRepo.Load()
	if err != nil {
		s.logger.Warn("settings reset", slog.Any("error", err))
	}

	if saved == (models.Settings{}) {
		s.settings = DefaultSettings(cfg)
		s.saveSettings()

		return
	}

	s.settings = saved
}

// Settings returns the current settings.
func (s *Shell) Settings() models.Settings {
	return s.settings
}

// UpdateSettings applies fn to the settings and saves them.
func (s *Shell) UpdateSettings(fn func(*models.Settings)) {
	fn(&s.settings)

	s.applySettings()
	s.saveSettings()
}

// MergeSettings overrides the settings keys present in raw, a JSON object.
// Keys that are absent keep their current value.
func (s *Shell) MergeSettings(raw []byte) error {
	merged, err := s.mergedSettings(raw)
	if err != nil {
		return err
	}

	s.UpdateSettings(func(st *models.Settings) {
		*st = merged
	})

	return nil
}

func (s *Shell) mergedSettings(raw []byte) (models.Settings, error) {
	merged := s.settings

	if err := json.Unmarshal(raw, &merged); err != nil {
		return models.Settings{}, errInvalidSettings.Wrap(err)
	}

	if m := merged.DefaultTimerMinutes; m < timer.MinMinutes || m > timer.MaxMinutes {
		return models.Settings{}, errInvalidSettings.Wrap(
			fmt.Errorf("defaultTimerMinutes %d is outside %d..%d", m, timer.MinMinutes, timer.MaxMinutes),
		)
	}

	return merged, nil
}

// applySettings pushes settings that components read into them.
func (s *Shell) applySettings() {
	if s.Timer != nil {
		s.Timer.SetAutoBreakReminder(s.settings.AutoBreakReminder)
	}
}

func (s *Shell) saveSettings() {
	if err := s.settingsRepo.Save(s.settings); err != nil {
		s.logger.Warn("saving settings failed", slog.Any("error", err))
	}
}
