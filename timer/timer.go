// Package timer implements the countdown timer and the side effects that run
// when it completes.
package timer

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ayoisaiah/compass/activity"
)

// Phase is the state of the countdown.
type Phase int

const (
	Idle Phase = iota
	Running
	Paused
	Completed
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	default:
		return "idle"
	}
}

const (
	MinMinutes     = 1
	MaxMinutes     = 120
	DefaultMinutes = 25
)

const (
	msgStarted    = "Timer started! 🎯"
	msgPaused     = "Timer paused ⏸️"
	msgReset      = "Timer reset 🔄"
	msgSet        = "Timer set to %d minutes ⏱️"
	msgCompleted  = "Timer completed! Great job! 🎉"
	notifyTitle   = "Timer Complete!"
	notifyMessage = "Time to take a break! 🎉"
)

// Alerter plays the completion alert.
type Alerter interface {
	Alert() error
}

// Notifier shows a system notification.
type Notifier interface {
	Notify(title, message string) error
}

// BreakSuggester is told when a countdown completes.
type BreakSuggester interface {
	NotifyBreakSuggestion()
}

// State is a snapshot of the timer.
type State struct {
	Phase             Phase
	RemainingSeconds  int
	ConfiguredSeconds int
	Generation        uint64
}

// Timer is a countdown state machine. It does not schedule its own ticks:
// the caller delivers one Tick per second tagged with the generation that
// was current when the tick was scheduled.
type Timer struct {
	log         activity.Appender
	alerter     Alerter
	notifier    Notifier
	breaks      BreakSuggester
	logger      *slog.Logger
	onConfigure func(minutes int)

	state State

	completions int

	autoBreakReminder bool
}

// Option configures a Timer.
type Option func(*Timer)

// WithAlerter sets the completion alert. Defaults to NoOp.
func WithAlerter(a Alerter) Option {
	return func(t *Timer) {
		t.alerter = a
	}
}

// WithNotifier sets the completion notifier. Defaults to NoOp.
func WithNotifier(n Notifier) Option {
	return func(t *Timer) {
		t.notifier = n
	}
}

// WithBreakSuggester sets who is asked for a break suggestion on completion.
func WithBreakSuggester(b BreakSuggester) Option {
	return func(t *Timer) {
		t.breaks = b
	}
}

// WithLogger sets the logger for swallowed capability failures.
func WithLogger(l *slog.Logger) Option {
	return func(t *Timer) {
		t.logger = l
	}
}

// WithMinutes sets the initial countdown length. Out of range values are
// ignored.
func WithMinutes(m int) Option {
	return func(t *Timer) {
		if m >= MinMinutes && m <= MaxMinutes {
			t.state.ConfiguredSeconds = m * 60
			t.state.RemainingSeconds = m * 60
		}
	}
}

// WithAutoBreakReminder controls whether completion asks for a break
// suggestion.
func WithAutoBreakReminder(on bool) Option {
	return func(t *Timer) {
		t.autoBreakReminder = on
	}
}

// OnConfigure registers fn to run after every successful Configure.
func OnConfigure(fn func(minutes int)) Option {
	return func(t *Timer) {
		t.onConfigure = fn
	}
}

// New returns an idle timer writing to log.
func New(log activity.Appender, opts ...Option) *Timer {
	t := &Timer{
		log:      log,
		alerter:  NoOp{},
		notifier: NoOp{},
		logger:   slog.Default(),
		state: State{
			Phase:             Idle,
			ConfiguredSeconds: DefaultMinutes * 60,
			RemainingSeconds:  DefaultMinutes * 60,
		},
		autoBreakReminder: true,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// State returns a snapshot of the timer.
func (t *Timer) State() State {
	return t.state
}

// Completions returns how many countdowns completed in this session.
func (t *Timer) Completions() int {
	return t.completions
}

// SetAutoBreakReminder updates the break suggestion setting.
func (t *Timer) SetAutoBreakReminder(on bool) {
	t.autoBreakReminder = on
}

// Configure resets the timer and sets a new countdown length.
func (t *Timer) Configure(minutes int) error {
	if minutes < MinMinutes || minutes > MaxMinutes {
		return errInvalidMinutes.Fmt(MinMinutes, MaxMinutes)
	}

	t.Reset()

	t.state.ConfiguredSeconds = minutes * 60
	t.state.RemainingSeconds = t.state.ConfiguredSeconds

	t.log.Append(fmt.Sprintf(msgSet, minutes))

	if t.onConfigure != nil {
		t.onConfigure(minutes)
	}

	return nil
}

// ConfigureString parses s as a whole number of minutes and calls Configure.
func (t *Timer) ConfigureString(s string) error {
	s = strings.TrimSpace(s)

	minutes, err := strconv.Atoi(s)
	if err != nil {
		return errNotANumber.Fmt(s)
	}

	return t.Configure(minutes)
}

// Start begins or resumes the countdown. It returns false if the timer was
// not Idle or Paused.
func (t *Timer) Start() bool {
	from := t.state.Phase
	if from != Idle && from != Paused {
		return false
	}

	t.state.Phase = Running
	t.state.Generation++

	if from == Idle {
		t.log.Append(msgStarted)
	}

	return true
}

// Pause stops a running countdown.
func (t *Timer) Pause() bool {
	if t.state.Phase != Running {
		return false
	}

	t.stop(Paused)

	t.log.Append(msgPaused)

	return true
}

// Reset restores the configured length and returns to Idle from any phase.
func (t *Timer) Reset() {
	t.stop(Idle)

	t.state.RemainingSeconds = t.state.ConfiguredSeconds

	t.log.Append(msgReset)
}

// Toggle pauses a running timer and starts it otherwise. It reports whether
// the timer is running afterwards.
func (t *Timer) Toggle() bool {
	if t.state.Phase == Running {
		t.Pause()
		return false
	}

	return t.Start()
}

// Tick advances a running countdown by one second. Ticks scheduled before
// the latest Start, Pause, Reset or Configure are ignored. It reports
// whether the tick was applied, in which case the caller schedules the next
// one unless the timer has completed.
func (t *Timer) Tick(generation uint64) bool {
	if t.state.Phase != Running || generation != t.state.Generation {
		return false
	}

	t.state.RemainingSeconds--

	if t.state.RemainingSeconds <= 0 {
		t.state.RemainingSeconds = 0
		t.complete()
	}

	return true
}

// stop moves to phase and invalidates outstanding ticks.
func (t *Timer) stop(phase Phase) {
	t.state.Phase = phase
	t.state.Generation++
}

func (t *Timer) complete() {
	t.stop(Completed)
	t.completions++

	if err := t.alerter.Alert(); err != nil {
		t.logger.Warn("completion alert failed", slog.Any("error", err))
	}

	if err := t.notifier.Notify(notifyTitle, notifyMessage); err != nil {
		t.logger.Warn("completion notification failed", slog.Any("error", err))
	}

	t.log.Append(msgCompleted)

	if t.autoBreakReminder && t.breaks != nil {
		t.breaks.NotifyBreakSuggestion()
	}
}
