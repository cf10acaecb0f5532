package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/compass/internal/apperr"
	"github.com/ayoisaiah/compass/internal/config"
	"github.com/ayoisaiah/compass/internal/logging"
	"github.com/ayoisaiah/compass/internal/openai"
	"github.com/ayoisaiah/compass/internal/osutil"
	"github.com/ayoisaiah/compass/internal/pathutil"
	"github.com/ayoisaiah/compass/internal/ui"
	"github.com/ayoisaiah/compass/report"
	"github.com/ayoisaiah/compass/shell"
	"github.com/ayoisaiah/compass/store"
	"github.com/ayoisaiah/compass/timer"
	"github.com/ayoisaiah/compass/tui"
)

const (
	envNoColor        = "NO_COLOR"
	envCompassNoColor = "COMPASS_NO_COLOR"
)

var errMissingArg = &apperr.Error{
	Message: "missing argument: %s",
	Kind:    apperr.Validation,
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// env is what a command needs to run against the saved state.
type env struct {
	cfg     *config.Config
	logger  *slog.Logger
	db      *store.Guard
	shell   *shell.Shell
	closers []io.Closer
}

func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		_ = e.closers[i].Close()
	}
}

func loadConfig(ctx *cli.Context, interactive bool) (*config.Config, error) {
	var opts []config.Option

	if interactive {
		opts = append(opts, config.WithPromptConfig(pathutil.ConfigFilePath()))
	}

	opts = append(
		opts,
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)

	return config.New(opts...)
}

// openStore opens the database. A database that cannot be opened, for
// example because another compass is holding it, starts the session
// without persistence.
func openStore(logger *slog.Logger) *store.Guard {
	client, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return store.Unavailable(err, logger)
	}

	return store.NewGuard(client, logger)
}

func capabilities(
	cfg *config.Config,
	logger *slog.Logger,
) (timer.Alerter, timer.Notifier, error) {
	var alerter timer.Alerter = timer.NoOp{}
	if cfg.Sound.Enabled {
		alerter = timer.NewSound(cfg.Sound.File, logger)
	}

	var notifiers timer.Notifiers

	if cfg.Notifications.Enabled {
		notifiers = append(notifiers, timer.Desktop{})
	}

	cmd, err := timer.NewCommand(cfg.Notifications.Cmd)
	if err != nil {
		return nil, nil, err
	}

	notifiers = append(notifiers, cmd)

	return alerter, notifiers, nil
}

// setup loads the configuration and builds the shell. interactive enables
// the first-run prompt.
func setup(ctx *cli.Context, interactive bool) (*env, error) {
	cfg, err := loadConfig(ctx, interactive)
	if err != nil {
		return nil, err
	}

	logger, logCloser := logging.New(pathutil.LogFilePath(), cfg.Log.Level)
	slog.SetDefault(logger)

	e := &env{
		cfg:     cfg,
		logger:  logger,
		closers: []io.Closer{logCloser},
	}

	e.db = openStore(logger)
	e.closers = append(e.closers, e.db)

	builtin, err := shell.LoadBuiltin(pathutil.DataDir(), logger)
	if err != nil {
		e.Close()
		return nil, err
	}

	alerter, notifier, err := capabilities(cfg, logger)
	if err != nil {
		e.Close()
		return nil, err
	}

	completer := openai.NewClient(
		openai.WithBaseURL(cfg.Assistant.BaseURL),
		openai.WithModel(cfg.Assistant.Model),
		openai.WithLogger(logger),
	)

	e.shell, err = shell.New(cfg, shell.Deps{
		DB:        e.db,
		Alerter:   alerter,
		Notifier:  notifier,
		Completer: completer,
		Logger:    logger,
		Builtin:   builtin,
	})
	if err != nil {
		e.Close()
		return nil, err
	}

	ui.SetTheme(e.shell.Settings().Theme)

	return e, nil
}

// withEnv runs fn against a freshly built shell and warns if nothing could
// be saved.
func withEnv(fn func(ctx *cli.Context, e *env) error) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		e, err := setup(ctx, false)
		if err != nil {
			return err
		}

		defer e.Close()

		err = fn(ctx, e)

		if storeErr := e.db.Err(); storeErr != nil {
			report.Error(storeErr)
		}

		return err
	}
}

// defaultAction opens the interactive interface.
func defaultAction(ctx *cli.Context) error {
	e, err := setup(ctx, true)
	if err != nil {
		return err
	}

	defer e.Close()

	if ctx.IsSet(minutesFlag.Name) {
		if err = e.shell.Timer.Configure(e.cfg.Timer.Minutes); err != nil {
			return err
		}
	}

	e.shell.Announce()

	return tui.Run(ctx.Context, e.shell, e.logger)
}

// editConfigAction handles the edit-config command which opens the compass
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Fprintf(
			config.Stdout,
			"https://github.com/ayoisaiah/compass/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if COMPASS_NO_COLOR is set
	if _, exists := os.LookupEnv(envCompassNoColor); exists {
		disableStyling()
	}

	if ctx.Bool(noColorFlag.Name) {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting compass")

	return nil
}
