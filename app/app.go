package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/compass/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

func logCommand() *cli.Command {
	return &cli.Command{
		Name:  "log",
		Usage: "Add to, list or clear the activity log",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add an entry to the log",
				ArgsUsage: "<message>",
				Action:    withEnv(logAddAction),
			},
			{
				Name:   "list",
				Usage:  "List log entries, newest first",
				Flags:  []cli.Flag{sinceFlag, jsonFlag},
				Action: withEnv(logListAction),
			},
			{
				Name:   "stats",
				Usage:  "Show how many entries were logged today and in total",
				Flags:  []cli.Flag{jsonFlag},
				Action: withEnv(logStatsAction),
			},
			{
				Name:   "clear",
				Usage:  "Remove every log entry",
				Flags:  []cli.Flag{yesFlag},
				Action: withEnv(logClearAction),
			},
		},
	}
}

func resourcesCommand() *cli.Command {
	return &cli.Command{
		Name:    "resources",
		Aliases: []string{"res"},
		Usage:   "Browse learning resources and track your progress",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List resources with their progress",
				Flags:  []cli.Flag{sortFlag, customFlag, jsonFlag},
				Action: withEnv(resourcesListAction),
			},
			{
				Name:      "start",
				Usage:     "Record that you opened a resource",
				ArgsUsage: "<id>",
				Action:    withEnv(resourcesStartAction),
			},
			{
				Name:      "complete",
				Usage:     "Mark a started resource as completed",
				ArgsUsage: "<id>",
				Action:    withEnv(resourcesCompleteAction),
			},
			{
				Name:  "add",
				Usage: "Add a custom resource",
				Flags: []cli.Flag{
					titleFlag,
					urlFlag,
					descriptionFlag,
					categoryFlag,
					difficultyFlag,
					estimatedTimeFlag,
					topicsFlag,
				},
				Action: withEnv(resourcesAddAction),
			},
			{
				Name:   "recommend",
				Usage:  "Suggest what to learn next",
				Action: withEnv(resourcesRecommendAction),
			},
		},
	}
}

func assistantCommand() *cli.Command {
	return &cli.Command{
		Name:  "assistant",
		Usage: "Manage the assistant's API key and conversation",
		Subcommands: []*cli.Command{
			{
				Name:      "key",
				Usage:     "Save the API key used for remote replies",
				ArgsUsage: "<key>",
				Flags:     []cli.Flag{clearKeyFlag},
				Action:    withEnv(assistantKeyAction),
			},
			{
				Name:   "history",
				Usage:  "Print the conversation",
				Flags:  []cli.Flag{jsonFlag},
				Action: withEnv(assistantHistoryAction),
			},
			{
				Name:   "reset",
				Usage:  "Clear the conversation",
				Flags:  []cli.Flag{yesFlag},
				Action: withEnv(assistantResetAction),
			},
		},
	}
}

// Get retrieves the compass app instance.
func Get() *cli.App {
	compassApp := &cli.App{
		Name: "compass",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Compass is a productivity companion for the command-line: a focus
		timer, an activity log, a learning resource tracker and an assistant
		that suggests tips and breaks.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			logCommand(),
			resourcesCommand(),
			{
				Name:      "ask",
				Usage:     "Ask the assistant a question",
				ArgsUsage: "<message>",
				Action:    withEnv(askAction),
			},
			assistantCommand(),
			{
				Name:  "settings",
				Usage: "Show or change the settings",
				Flags: []cli.Flag{
					themeFlag,
					soundEnabledFlag,
					autoBreakFlag,
					defaultMinutesFlag,
					mergeFlag,
					jsonFlag,
				},
				Action: withEnv(settingsAction),
			},
			{
				Name:   "export",
				Usage:  "Export the log, learning progress and settings to a JSON file",
				Flags:  []cli.Flag{outputFlag},
				Action: withEnv(exportAction),
			},
			{
				Name:      "import",
				Usage:     "Import a file created by export",
				ArgsUsage: "<file>",
				Flags:     []cli.Flag{legacyFlag},
				Action:    importAction,
			},
			{
				Name:   "report",
				Usage:  "Summarise your activity",
				Flags:  []cli.Flag{jsonFlag},
				Action: withEnv(reportAction),
			},
			{
				Name:   "debug",
				Usage:  "Print diagnostic information",
				Action: withEnv(debugAction),
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			minutesFlag,
			soundFlag,
			noSoundFlag,
			notifyCmdFlag,
			noNotifyFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return compassApp
}
