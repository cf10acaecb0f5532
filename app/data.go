package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/compass/internal/apperr"
	"github.com/ayoisaiah/compass/internal/config"
	"github.com/ayoisaiah/compass/internal/logging"
	"github.com/ayoisaiah/compass/internal/models"
	"github.com/ayoisaiah/compass/internal/pathutil"
	"github.com/ayoisaiah/compass/internal/ui"
	"github.com/ayoisaiah/compass/report"
	"github.com/ayoisaiah/compass/store"
)

var errLegacyDump = &apperr.Error{
	Message: "%s is not a storage dump: expected a JSON object of strings",
	Kind:    apperr.Validation,
}

func printSettings(s models.Settings) error {
	return ui.PrintPairs([][]string{
		{"Theme", s.Theme},
		{"Sound", strconv.FormatBool(s.SoundEnabled)},
		{"Break reminder", strconv.FormatBool(s.AutoBreakReminder)},
		{"Default minutes", strconv.Itoa(s.DefaultTimerMinutes)},
		{"Version", s.Version},
	}, config.Stdout)
}

func settingsAction(ctx *cli.Context, e *env) error {
	if raw := ctx.String(mergeFlag.Name); raw != "" {
		if err := e.shell.MergeSettings([]byte(raw)); err != nil {
			return err
		}
	}

	if ctx.IsSet(themeFlag.Name) {
		theme := ctx.String(themeFlag.Name)
		if err := config.ValidateTheme(theme); err != nil {
			return err
		}

		e.shell.UpdateSettings(func(s *models.Settings) {
			s.Theme = theme
		})
	}

	if ctx.IsSet(soundEnabledFlag.Name) {
		e.shell.UpdateSettings(func(s *models.Settings) {
			s.SoundEnabled = ctx.Bool(soundEnabledFlag.Name)
		})
	}

	if ctx.IsSet(autoBreakFlag.Name) {
		e.shell.UpdateSettings(func(s *models.Settings) {
			s.AutoBreakReminder = ctx.Bool(autoBreakFlag.Name)
		})
	}

	if ctx.IsSet(defaultMinutesFlag.Name) {
		err := e.shell.Timer.Configure(ctx.Int(defaultMinutesFlag.Name))
		if err != nil {
			return err
		}
	}

	if ctx.Bool(jsonFlag.Name) {
		return printJSON(config.Stdout, e.shell.Settings())
	}

	return printSettings(e.shell.Settings())
}

func exportAction(ctx *cli.Context, e *env) error {
	out := ctx.String(outputFlag.Name)
	if out == "-" {
		return e.shell.Export(config.Stdout)
	}

	if out == "" {
		out = e.shell.ExportFileName()
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}

	err = e.shell.Export(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return err
	}

	report.Success("Data exported to %s", out)

	return nil
}

func importAction(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return errMissingArg.Fmt("file")
	}

	if ctx.Bool(legacyFlag.Name) {
		return importLegacy(path)
	}

	return withEnv(func(_ *cli.Context, e *env) error {
		f, err := os.Open(path)
		if err != nil {
			return err
		}

		defer f.Close()

		if err = e.shell.Import(f); err != nil {
			return err
		}

		report.Success("Data imported successfully!")

		return nil
	})(ctx)
}

// importLegacy copies a storage dump straight into the database, before
// any component has loaded state that could overwrite it.
func importLegacy(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var dump map[string]string
	if err = json.Unmarshal(b, &dump); err != nil {
		return errLegacyDump.Fmt(path).Wrap(err)
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	keys, err := store.MigrateLegacy(db, dump)
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		report.Info("Nothing to import")
		return nil
	}

	report.Success("Imported %d keys: %v", len(keys), keys)

	return nil
}

func reportAction(ctx *cli.Context, e *env) error {
	r := e.shell.Report()

	if ctx.Bool(jsonFlag.Name) {
		return printJSON(config.Stdout, r)
	}

	return ui.PrintPairs([][]string{
		{"Log entries", strconv.Itoa(r.TotalLogEntries)},
		{"Resources accessed", strconv.Itoa(r.ResourcesAccessed)},
		{"Timer sessions completed", strconv.Itoa(r.TimerSessionsCompleted)},
		{"Assistant messages", strconv.Itoa(r.AssistantTurns)},
	}, config.Stdout)
}

func debugAction(_ *cli.Context, e *env) error {
	cfg := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}

	cfg.Fdump(config.Stdout, e.shell.Debug())

	fmt.Fprintf(config.Stdout, "log level: %s\n", logging.ParseLevel(e.cfg.Log.Level))

	return nil
}
