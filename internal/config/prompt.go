package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
 ██████╗ ██████╗ ███╗   ███╗██████╗  █████╗ ███████╗███████╗
██╔════╝██╔═══██╗████╗ ████║██╔══██╗██╔══██╗██╔════╝██╔════╝
██║     ██║   ██║██╔████╔██║██████╔╝███████║███████╗███████╗
██║     ██║   ██║██║╚██╔╝██║██╔═══╝ ██╔══██║╚════██║╚════██║
╚██████╗╚██████╔╝██║ ╚═╝ ██║██║     ██║  ██║███████║███████║
 ╚═════╝ ╚═════╝ ╚═╝     ╚═╝╚═╝     ╚═╝  ╚═╝╚══════╝╚══════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Minutes           int
	SoundEnabled      bool
	AutoBreakReminder bool
}

// WithPromptConfig returns an Option that asks for the basic settings when
// no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		SoundEnabled:      true,
		AutoBreakReminder: true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Compass for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'compass edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Timer length").
				Options(
					huh.NewOption("25 minutes", 25).Selected(true),
					huh.NewOption("30 minutes", 30),
					huh.NewOption("45 minutes", 45),
					huh.NewOption("50 minutes", 50),
					huh.NewOption("90 minutes", 90),
				).
				Value(&opts.Minutes),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Play a sound when the timer completes?").
				Value(&opts.SoundEnabled),
			huh.NewConfirm().
				Title("Suggest a break after each timer?").
				Value(&opts.AutoBreakReminder),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Timer.Minutes = opts.Minutes
	c.Timer.AutoBreakReminder = opts.AutoBreakReminder
	c.Sound.Enabled = opts.SoundEnabled
}
