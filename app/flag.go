package app

import "github.com/urfave/cli/v2"

var (
	minutesFlag = &cli.IntFlag{
		Name:    "minutes",
		Aliases: []string{"m"},
		Usage:   "Timer length in minutes, from 1 to 120 (default: 25)",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Sound file (mp3, ogg, flac or wav) to play when the timer completes. Disable sound by setting to 'off'",
	}

	noSoundFlag = &cli.BoolFlag{
		Name:  "no-sound",
		Usage: "Disable the completion sound",
	}

	notifyCmdFlag = &cli.StringFlag{
		Name:    "notify-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command when the timer completes. The title and message are appended as arguments",
	}

	noNotifyFlag = &cli.BoolFlag{
		Name:    "no-notify",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when the timer completes",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only show entries created after this time (e.g. 'yesterday', '2 hours ago')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	sortFlag = &cli.StringFlag{
		Name:  "sort",
		Usage: "Sort resources by 'id' or 'title'",
		Value: "id",
	}

	customFlag = &cli.BoolFlag{
		Name:  "custom",
		Usage: "Only list resources you added",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the export to this file, or '-' for stdout (default: productivity-data-<date>.json)",
	}

	legacyFlag = &cli.BoolFlag{
		Name:  "legacy",
		Usage: "Import a key to value dump of the browser edition's storage",
	}

	clearKeyFlag = &cli.BoolFlag{
		Name:  "clear",
		Usage: "Remove the saved API key",
	}
)

// resource fields for `resources add`
var (
	titleFlag = &cli.StringFlag{
		Name:  "title",
		Usage: "Resource title. Skips the interactive form when set",
	}

	urlFlag = &cli.StringFlag{
		Name:  "url",
		Usage: "Resource URL",
	}

	descriptionFlag = &cli.StringFlag{
		Name:  "description",
		Usage: "Short description",
	}

	categoryFlag = &cli.StringFlag{
		Name:  "category",
		Usage: "Category (default: Custom)",
	}

	difficultyFlag = &cli.StringFlag{
		Name:  "difficulty",
		Usage: "Difficulty (default: Unknown)",
	}

	estimatedTimeFlag = &cli.StringFlag{
		Name:  "estimated-time",
		Usage: "Estimated time to finish (default: Variable)",
	}

	topicsFlag = &cli.StringSliceFlag{
		Name:  "topic",
		Usage: "Topic covered. Repeat for more than one",
	}
)

// settings fields
var (
	themeFlag = &cli.StringFlag{
		Name:  "theme",
		Usage: "Colour theme: default, light or dark",
	}

	soundEnabledFlag = &cli.BoolFlag{
		Name:  "sound-enabled",
		Usage: "Play a sound when the timer completes",
	}

	autoBreakFlag = &cli.BoolFlag{
		Name:  "auto-break-reminder",
		Usage: "Have the assistant suggest a break when the timer completes",
	}

	defaultMinutesFlag = &cli.IntFlag{
		Name:  "default-minutes",
		Usage: "Timer length used at start-up",
	}

	mergeFlag = &cli.StringFlag{
		Name:  "merge",
		Usage: `Merge a JSON object into the settings (e.g. '{"theme":"dark"}')`,
	}
)
