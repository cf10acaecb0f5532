package tui

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/compass/internal/apperr"
	"github.com/ayoisaiah/compass/timer"
)

const (
	msgQuitConfirm = "Timer is still running. Press q again to quit."
	msgWaiting     = "Still waiting for the last reply..."
)

func tick(generation uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}

// setStatus shows text on the status line until it is replaced or five
// seconds pass.
func (m *Model) setStatus(text string, warning bool) tea.Cmd {
	m.statusID++
	m.status = text
	m.statusWarning = warning

	id := m.statusID

	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m *Model) setError(err error) tea.Cmd {
	var e *apperr.Error
	if errors.As(err, &e) {
		return m.setStatus(e.Message, true)
	}

	return m.setStatus(err.Error(), true)
}

// checkStorage reports the loss of persistence once.
func (m *Model) checkStorage() tea.Cmd {
	if m.storageReported || m.shell.StorageAvailable() {
		return nil
	}

	m.storageReported = true

	return m.setError(m.shell.StorageErr())
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.cancel()

	return m, tea.Batch(tea.ClearScreen, tea.Quit)
}

func (m *Model) toggleTimer() tea.Cmd {
	t := m.shell.Timer

	if t.State().Phase == timer.Completed {
		t.Reset()
	}

	if !t.Toggle() {
		return nil
	}

	return tick(t.State().Generation)
}

func (m *Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	t := m.shell.Timer

	if !t.Tick(msg.generation) {
		return m, nil
	}

	if t.State().Phase == timer.Completed {
		return m, m.setStatus("Timer completed! Great job! 🎉", false)
	}

	return m, tick(msg.generation)
}

func (m *Model) handleReply(msg replyMsg) (tea.Model, tea.Cmd) {
	m.waiting = false

	m.shell.Assistant.Finish(msg.x, msg.reply, msg.err)

	if msg.err != nil {
		return m, m.setError(msg.err)
	}

	return m, nil
}

func (m *Model) input() *textinput.Model {
	switch m.focus {
	case focusLog:
		return &m.logInput
	case focusChat:
		return &m.chatInput
	case focusMinutes:
		return &m.minutesInput
	}

	return nil
}

func (m *Model) setFocus(f focus) tea.Cmd {
	if in := m.input(); in != nil {
		in.Blur()
	}

	m.focus = f

	if in := m.input(); in != nil {
		return in.Focus()
	}

	return nil
}

func (m *Model) submit() tea.Cmd {
	switch m.focus {
	case focusLog:
		text := strings.TrimSpace(m.logInput.Value())
		if text == "" {
			return nil
		}

		m.shell.Log.Append(text)
		m.logInput.Reset()

	case focusMinutes:
		if err := m.shell.Timer.ConfigureString(m.minutesInput.Value()); err != nil {
			return m.setError(err)
		}

		return m.setFocus(focusNone)

	case focusChat:
		return m.sendChat()
	}

	return nil
}

func (m *Model) sendChat() tea.Cmd {
	if m.waiting {
		return m.setStatus(msgWaiting, false)
	}

	x := m.shell.Assistant.Begin(m.chatInput.Value())
	if x == nil {
		return nil
	}

	m.chatInput.Reset()

	if !x.Remote() {
		reply, err := x.Await(m.ctx)
		m.shell.Assistant.Finish(x, reply, err)

		return nil
	}

	m.waiting = true

	ctx := m.ctx

	return func() tea.Msg {
		reply, err := x.Await(ctx)

		return replyMsg{x: x, reply: reply, err: err}
	}
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.forceQuit):
		return m.requestQuit()

	case key.Matches(msg, defaultKeymap.esc):
		return m, m.setFocus(focusNone)

	case key.Matches(msg, defaultKeymap.submit):
		return m, m.submit()
	}

	in := m.input()

	var cmd tea.Cmd
	*in, cmd = in.Update(msg)

	return m, cmd
}

func (m *Model) requestQuit() (tea.Model, tea.Cmd) {
	if m.confirmQuit || m.shell.Timer.State().Phase != timer.Running {
		return m.quit()
	}

	m.confirmQuit = true

	return m, m.setStatus(msgQuitConfirm, true)
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, defaultKeymap.quit) {
		m.confirmQuit = false
	}

	if m.focus != focusNone {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return m.requestQuit()

	case key.Matches(msg, defaultKeymap.togglePlay):
		return m, m.toggleTimer()

	case key.Matches(msg, defaultKeymap.reset):
		m.shell.Timer.Reset()
		return m, nil

	case key.Matches(msg, defaultKeymap.focusLog):
		return m, m.setFocus(focusLog)

	case key.Matches(msg, defaultKeymap.focusChat):
		return m, m.setFocus(focusChat)

	case key.Matches(msg, defaultKeymap.focusMinutes):
		return m, m.setFocus(focusMinutes)
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); !ok && m.logger.Enabled(m.ctx, slog.LevelDebug) {
		m.logger.Debug("update", slog.String("msg", spew.Sdump(msg)))
	}

	model, cmd := m.update(msg)

	return model, tea.Batch(cmd, m.checkStorage())
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.handleTick(msg)

	case replyMsg:
		return m.handleReply(msg)

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
			m.confirmQuit = false
		}

		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		m.help.Width = msg.Width

		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	if in := m.input(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)

		return m, cmd
	}

	return m, nil
}
