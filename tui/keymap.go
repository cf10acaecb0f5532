package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay   key.Binding
	reset        key.Binding
	focusLog     key.Binding
	focusChat    key.Binding
	focusMinutes key.Binding
	submit       key.Binding
	esc          key.Binding
	quit         key.Binding
	forceQuit    key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start/pause"),
	),
	reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reset"),
	),
	focusLog: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("ctrl+f", "log"),
	),
	focusChat: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("ctrl+a", "assistant"),
	),
	focusMinutes: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "set minutes"),
	),
	submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "leave input"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	forceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

// idle are the bindings shown while no input has focus.
func (k keymap) idle() []key.Binding {
	return []key.Binding{
		k.togglePlay,
		k.reset,
		k.focusLog,
		k.focusChat,
		k.focusMinutes,
		k.quit,
	}
}

func (k keymap) editing() []key.Binding {
	return []key.Binding{k.submit, k.esc}
}

// Bindings lists every documented key binding of the interface.
func Bindings() []key.Binding {
	return append(defaultKeymap.idle(), defaultKeymap.editing()...)
}
