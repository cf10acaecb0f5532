package app

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/compass/internal/config"
	"github.com/ayoisaiah/compass/internal/models"
	"github.com/ayoisaiah/compass/internal/ui"
	"github.com/ayoisaiah/compass/report"
)

func askAction(ctx *cli.Context, e *env) error {
	msg := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if msg == "" {
		return errMissingArg.Fmt("message")
	}

	var spinner *pterm.SpinnerPrinter
	if e.shell.Assistant.Remote() {
		spinner, _ = pterm.DefaultSpinner.WithRemoveWhenDone().Start("Thinking...")
	}

	reply, err := e.shell.Assistant.SendMessage(ctx.Context, msg)

	if spinner != nil {
		_ = spinner.Stop()
	}

	pterm.Println(reply)

	return err
}

func assistantKeyAction(ctx *cli.Context, e *env) error {
	if ctx.Bool(clearKeyFlag.Name) {
		e.shell.Assistant.SetCredential("")
		report.Success("API key removed")

		return nil
	}

	key := strings.TrimSpace(ctx.Args().First())
	if key == "" {
		return errMissingArg.Fmt("key")
	}

	e.shell.Assistant.SetCredential(key)

	report.Success("API key saved! I can now provide more personalized responses using GPT.")

	return nil
}

func assistantHistoryAction(ctx *cli.Context, e *env) error {
	history := e.shell.Assistant.History()

	if ctx.Bool(jsonFlag.Name) {
		return printJSON(config.Stdout, history)
	}

	for _, t := range history {
		speaker := ui.Cyan("compass")
		if t.Role == models.RoleUser {
			speaker = ui.Green("you")
		}

		fmt.Fprintf(config.Stdout, "%s: %s\n\n", speaker, t.Content)
	}

	return nil
}

func assistantResetAction(ctx *cli.Context, e *env) error {
	ok, err := confirm(ctx, "Clear the conversation?")
	if err != nil || !ok {
		return err
	}

	e.shell.Assistant.Clear()

	report.Success("Conversation cleared")

	return nil
}
