package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/compass/internal/models"
	"github.com/ayoisaiah/compass/internal/timeutil"
	"github.com/ayoisaiah/compass/timer"
)

func (m *Model) timerView() string {
	var s strings.Builder

	st := m.shell.Timer.State()

	s.WriteString(m.style.Heading.Render("Focus timer"))
	s.WriteString(" ")
	s.WriteString(m.style.Hint.Render("[" + st.Phase.String() + "]"))
	s.WriteString("\n\n")
	s.WriteString(m.style.Countdown.Render(timeutil.Countdown(st.RemainingSeconds)))
	s.WriteString("\n\n")

	var percent float64
	if st.ConfiguredSeconds > 0 {
		percent = float64(st.RemainingSeconds) / float64(st.ConfiguredSeconds)
	}

	s.WriteString(m.progress.ViewAs(1 - percent))
	s.WriteString("\n\n")
	s.WriteString(m.style.Secondary.Render("Minutes: "))
	s.WriteString(m.minutesInput.View())

	if n := m.shell.Timer.Completions(); n > 0 {
		s.WriteString(m.style.Hint.Render(fmt.Sprintf("  %d completed this session", n)))
	}

	return m.style.Panel.Render(s.String())
}

func (m *Model) logView() string {
	var s strings.Builder

	stats := m.shell.Log.Stats()

	s.WriteString(m.style.Heading.Render("Activity"))
	s.WriteString(" ")
	s.WriteString(m.style.Hint.Render(fmt.Sprintf(
		"today %d · total %d · last %s",
		stats.TodayCount,
		stats.TotalCount,
		stats.MostRecentLabel,
	)))
	s.WriteString("\n")
	s.WriteString(m.logInput.View())

	entries := m.shell.Log.Entries()
	if len(entries) > visibleEntries {
		entries = entries[:visibleEntries]
	}

	for _, e := range entries {
		s.WriteString("\n")
		s.WriteString(m.style.Hint.Render(e.TimeLabel))
		s.WriteString("  ")
		s.WriteString(m.style.Secondary.Render(e.Message))
	}

	return m.style.Panel.Render(s.String())
}

func (m *Model) resourcesView() string {
	var s strings.Builder

	s.WriteString(m.style.Heading.Render("Up next"))

	recs := m.shell.Catalog.Recommend()
	if len(recs) == 0 {
		s.WriteString("\n")
		s.WriteString(m.style.Hint.Render("Everything started. Add more with `compass resources add`."))
	}

	for i, r := range recs {
		if i == 3 {
			break
		}

		s.WriteString("\n")
		s.WriteString(m.style.Secondary.Render(r.Resource.Title))
		s.WriteString(" ")
		s.WriteString(m.style.Hint.Render(r.Reason))
	}

	return m.style.Panel.Render(s.String())
}

func (m *Model) turnView(t models.Turn) string {
	if t.Role == models.RoleUser {
		return m.style.User.Render("you: " + t.Content)
	}

	return m.style.Reply.Render(t.Content)
}

func (m *Model) chatView() string {
	var s strings.Builder

	title := "Assistant"
	if m.shell.Assistant.Remote() {
		title += " (GPT)"
	}

	s.WriteString(m.style.Heading.Render(title))

	history := m.shell.Assistant.History()
	history = history[max(0, len(history)-visibleTurns):]

	for _, t := range history {
		s.WriteString("\n")
		s.WriteString(m.turnView(t))
	}

	if m.waiting {
		s.WriteString("\n")
		s.WriteString(m.style.Hint.Render("thinking..."))
	}

	s.WriteString("\n")
	s.WriteString(m.chatInput.View())

	return m.style.Panel.Render(lipgloss.NewStyle().Width(maxWidth).Render(s.String()))
}

func (m *Model) statusView() string {
	if m.status == "" {
		return ""
	}

	if m.statusWarning {
		return m.style.Warning.Render(m.status)
	}

	return m.style.Status.Render(m.status)
}

func (m *Model) helpView() string {
	if m.focus != focusNone {
		return m.help.ShortHelpView(defaultKeymap.editing())
	}

	return m.help.ShortHelpView(defaultKeymap.idle())
}

func (m *Model) View() string {
	phase := m.shell.Timer.State().Phase

	title := "🧭 Compass"
	if phase == timer.Running {
		title += " · " + timeutil.Countdown(m.shell.Timer.State().RemainingSeconds)
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.style.Title.Render(title),
		lipgloss.JoinHorizontal(lipgloss.Top, m.timerView(), m.resourcesView()),
		m.logView(),
		m.chatView(),
		m.statusView(),
		m.helpView(),
	)

	return m.style.Base.Render(view)
}
