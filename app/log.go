package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/compass/internal/config"
	"github.com/ayoisaiah/compass/internal/models"
	"github.com/ayoisaiah/compass/internal/timeutil"
	"github.com/ayoisaiah/compass/internal/ui"
	"github.com/ayoisaiah/compass/report"
)

const noEntriesMsg = "No log entries found"

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// confirm asks before a destructive change unless --yes was given.
func confirm(ctx *cli.Context, title string) (bool, error) {
	if ctx.Bool(yesFlag.Name) {
		return true, nil
	}

	var ok bool

	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()

	return ok, err
}

// printEntriesTable prints log entries, newest first.
func printEntriesTable(w io.Writer, entries []models.LogEntry) error {
	tableBody := make([][]string, len(entries))

	for i := range entries {
		e := entries[i]

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			e.CreatedAt.Local().Format("Jan 02, 2006"),
			e.TimeLabel,
			e.Message,
		}
	}

	tableBody = append([][]string{
		{"#", "DATE", "TIME", "MESSAGE"},
	}, tableBody...)

	return ui.PrintTable(tableBody, w)
}

func logAddAction(ctx *cli.Context, e *env) error {
	msg := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if msg == "" {
		return errMissingArg.Fmt("message")
	}

	entry := e.shell.Log.Append(msg)

	report.Success("Logged at %s", entry.TimeLabel)

	return nil
}

func logListAction(ctx *cli.Context, e *env) error {
	entries := e.shell.Log.Entries()

	if s := ctx.String(sinceFlag.Name); s != "" {
		since, err := timeutil.FromStr(s, time.Now())
		if err != nil {
			return err
		}

		entries = e.shell.Log.Since(since)
	}

	if ctx.Bool(jsonFlag.Name) {
		if entries == nil {
			entries = []models.LogEntry{}
		}

		return printJSON(config.Stdout, entries)
	}

	if len(entries) == 0 {
		pterm.Info.Println(noEntriesMsg)
		return nil
	}

	return printEntriesTable(config.Stdout, entries)
}

func logStatsAction(ctx *cli.Context, e *env) error {
	stats := e.shell.Log.Stats()

	if ctx.Bool(jsonFlag.Name) {
		return printJSON(config.Stdout, map[string]any{
			"totalCount":      stats.TotalCount,
			"todayCount":      stats.TodayCount,
			"mostRecentLabel": stats.MostRecentLabel,
		})
	}

	return ui.PrintPairs([][]string{
		{"Today", fmt.Sprintf("%d", stats.TodayCount)},
		{"Total", fmt.Sprintf("%d", stats.TotalCount)},
		{"Most recent", stats.MostRecentLabel},
	}, config.Stdout)
}

func logClearAction(ctx *cli.Context, e *env) error {
	n := e.shell.Log.Len()
	if n == 0 {
		pterm.Info.Println(noEntriesMsg)
		return nil
	}

	ok, err := confirm(ctx, fmt.Sprintf("Delete all %d log entries?", n))
	if err != nil || !ok {
		return err
	}

	e.shell.Log.Clear()

	report.Success("Cleared %d log entries", n)

	return nil
}
