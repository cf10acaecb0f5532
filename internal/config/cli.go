package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	SoundFile     string
	NotifyCmd     string
	Minutes       int
	DisableSound  bool
	DisableNotify bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Minutes:       ctx.Int("minutes"),
			SoundFile:     ctx.String("sound"),
			NotifyCmd:     ctx.String("notify-cmd"),
			DisableSound:  ctx.Bool("no-sound"),
			DisableNotify: ctx.Bool("no-notify"),
		}

		applyCLIOptions(c, &opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config. Zero values leave the
// existing setting alone.
func applyCLIOptions(c *Config, opts *CLIOptions) {
	if opts.Minutes != 0 {
		c.Timer.Minutes = opts.Minutes
	}

	if opts.SoundFile != "" {
		if opts.SoundFile == "off" {
			c.Sound.Enabled = false
		} else {
			c.Sound.File = opts.SoundFile
		}
	}

	if opts.DisableSound {
		c.Sound.Enabled = false
	}

	if opts.NotifyCmd != "" {
		c.Notifications.Cmd = opts.NotifyCmd
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}
}
