// Package tui is the interactive terminal interface. Every component
// method runs inside the bubbletea update loop.
package tui

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/compass/assistant"
	"github.com/ayoisaiah/compass/shell"
)

const (
	padding  = 2
	maxWidth = 80

	statusTimeout = 5 * time.Second

	visibleEntries = 8
	visibleTurns   = 6
)

type focus int

const (
	focusNone focus = iota
	focusLog
	focusChat
	focusMinutes
)

type (
	// tickMsg advances the timer generation it was scheduled for.
	tickMsg struct {
		generation uint64
	}

	replyMsg struct {
		err   error
		x     *assistant.Exchange
		reply string
	}

	clearStatusMsg struct {
		id int
	}
)

// Model is the bubbletea model for the compass interface.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	shell  *shell.Shell
	logger *slog.Logger

	help         help.Model
	progress     progress.Model
	logInput     textinput.Model
	chatInput    textinput.Model
	minutesInput textinput.Model
	style        styles

	status        string
	statusWarning bool
	statusID      int

	focus       focus
	waiting     bool
	confirmQuit bool

	storageReported bool
}

// New returns a model driving s. Cancelling ctx abandons any pending
// assistant reply.
func New(ctx context.Context, s *shell.Shell, logger *slog.Logger) *Model {
	ctx, cancel := context.WithCancel(ctx)

	m := &Model{
		ctx:      ctx,
		cancel:   cancel,
		shell:    s,
		logger:   logger,
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		style:    newStyles(s.Settings().Theme),
	}

	m.logInput = newInput("What are you working on?", 200)
	m.chatInput = newInput("Ask me anything...", 500)
	m.minutesInput = newInput("minutes", 3)
	m.minutesInput.SetValue(strconv.Itoa(s.Settings().DefaultTimerMinutes))
	m.minutesInput.Width = 4

	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = maxWidth - 10

	return in
}

func (m *Model) Init() tea.Cmd {
	return m.checkStorage()
}

// Run starts the interface and blocks until it exits.
func Run(ctx context.Context, s *shell.Shell, logger *slog.Logger) error {
	m := New(ctx, s, logger)
	defer m.cancel()

	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()

	return err
}
