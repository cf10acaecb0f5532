package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	keyTimerMinutes         = "timer.minutes"
	keyAutoBreakReminder    = "timer.auto_break_reminder"
	keySoundEnabled         = "sound.enabled"
	keySoundFile            = "sound.file"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsCmd     = "notifications.cmd"
	keyTheme                = "display.theme"
	keyTwentyFourHour       = "display.twenty_four_hour"
	keyAPIKey               = "assistant.api_key"
	keyBaseURL              = "assistant.base_url"
	keyModel                = "assistant.model"
	keyLogLevel             = "log.level"
)

const (
	envPrefix      = "COMPASS"
	defaultMinutes = 25
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-3.5-turbo"
)

// WithViperConfig returns an Option that loads configuration from the file
// at configPath and from COMPASS_* environment variables. The file is
// created with defaults if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return errReadConfig.Wrap(err)
			}

			// the environment is bound afterwards so secrets from it
			// never end up in the file
			if err := v.WriteConfig(); err != nil {
				return errWriteConfig.Wrap(err)
			}
		}

		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		return v.Unmarshal(c)
	}
}

// setupViper registers the current values of c as defaults.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyTimerMinutes, c.Timer.Minutes)
	v.SetDefault(keyAutoBreakReminder, c.Timer.AutoBreakReminder)
	v.SetDefault(keySoundEnabled, c.Sound.Enabled)
	v.SetDefault(keySoundFile, c.Sound.File)
	v.SetDefault(keyNotificationsEnabled, c.Notifications.Enabled)
	v.SetDefault(keyNotificationsCmd, c.Notifications.Cmd)
	v.SetDefault(keyTheme, c.Display.Theme)
	v.SetDefault(keyTwentyFourHour, c.Display.TwentyFourHour)
	v.SetDefault(keyAPIKey, c.Assistant.APIKey)
	v.SetDefault(keyBaseURL, c.Assistant.BaseURL)
	v.SetDefault(keyModel, c.Assistant.Model)
	v.SetDefault(keyLogLevel, c.Log.Level)
}
