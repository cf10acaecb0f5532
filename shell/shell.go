// Package shell wires the compass components together and owns the
// cross-cutting state: settings, import and export, and reporting.
package shell

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/compass/activity"
	"github.com/ayoisaiah/compass/assistant"
	"github.com/ayoisaiah/compass/catalog"
	"github.com/ayoisaiah/compass/internal/config"
	"github.com/ayoisaiah/compass/internal/models"
	"github.com/ayoisaiah/compass/internal/timeutil"
	"github.com/ayoisaiah/compass/store"
	"github.com/ayoisaiah/compass/timer"
)

const msgLoaded = "Compass loaded! 🚀"

// Deps are the external collaborators of a Shell. Nil capabilities are
// replaced with no-ops.
type Deps struct {
	DB        *store.Guard
	Alerter   timer.Alerter
	Notifier  timer.Notifier
	Completer assistant.Completer
	Logger    *slog.Logger
	Clock     timeutil.Clock
	Builtin   []models.Resource
}

// Shell owns the components and the settings shared between them.
type Shell struct {
	Log       *activity.Log
	Assistant *assistant.Assistant
	Catalog   *catalog.Catalog
	Timer     *timer.Timer

	db           *store.Guard
	settingsRepo store.Repository[models.Settings]
	logger       *slog.Logger
	now          timeutil.Clock
	settings     models.Settings
}

// New loads the settings and builds the components in dependency order:
// the log, the assistant, the catalog, then the timer.
func New(cfg *config.Config, deps Deps) (*Shell, error) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	if deps.Alerter == nil {
		deps.Alerter = timer.NoOp{}
	}

	if deps.Notifier == nil {
		deps.Notifier = timer.NoOp{}
	}

	s := &Shell{
		db:           deps.DB,
		settingsRepo: NewSettingsRepository(deps.DB),
		logger:       deps.Logger,
		now:          deps.Clock,
	}

	s.loadSettings(cfg)

	s.Log = activity.New(
		activity.NewRepository(deps.DB),
		activity.WithClock(deps.Clock),
		activity.WithLogger(deps.Logger),
		activity.WithTwentyFourHour(cfg.Display.TwentyFourHour),
	)

	assistantOpts := []assistant.Option{
		assistant.WithLogger(deps.Logger),
		assistant.WithConfiguredKey(cfg.Assistant.APIKey),
	}

	if deps.Completer != nil {
		assistantOpts = append(assistantOpts, assistant.WithCompleter(deps.Completer))
	}

	s.Assistant = assistant.New(assistant.NewRepositories(deps.DB), assistantOpts...)

	var err error

	s.Catalog, err = catalog.New(
		deps.Builtin,
		catalog.NewRepositories(deps.DB),
		s.Log,
		s.Assistant,
		catalog.WithClock(deps.Clock),
		catalog.WithLogger(deps.Logger),
	)
	if err != nil {
		return nil, err
	}

	s.Timer = timer.New(
		s.Log,
		timer.WithAlerter(soundGate{shell: s, alerter: deps.Alerter}),
		timer.WithNotifier(deps.Notifier),
		timer.WithBreakSuggester(s.Assistant),
		timer.WithLogger(deps.Logger),
		timer.WithMinutes(s.settings.DefaultTimerMinutes),
		timer.WithAutoBreakReminder(s.settings.AutoBreakReminder),
		timer.OnConfigure(func(minutes int) {
			s.UpdateSettings(func(st *models.Settings) {
				st.DefaultTimerMinutes = minutes
			})
		}),
	)

	return s, nil
}

// Announce adds the start-up entry to the log.
func (s *Shell) Announce() {
	s.Log.Append(msgLoaded)
}

// StorageAvailable reports whether state is still being persisted.
func (s *Shell) StorageAvailable() bool {
	return s.db.Available()
}

// StorageErr returns the error that disabled persistence, if any.
func (s *Shell) StorageErr() error {
	return s.db.Err()
}

// soundGate checks the sound setting at alert time so that changes made
// while running take effect.
type soundGate struct {
	shell   *Shell
	alerter timer.Alerter
}

func (g soundGate) Alert() error {
	if !g.shell.settings.SoundEnabled {
		return nil
	}

	return g.alerter.Alert()
}
