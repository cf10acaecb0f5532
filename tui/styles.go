package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Base      lipgloss.Style
	Title     lipgloss.Style
	Panel     lipgloss.Style
	Heading   lipgloss.Style
	Countdown lipgloss.Style
	Hint      lipgloss.Style
	Secondary lipgloss.Style
	User      lipgloss.Style
	Reply     lipgloss.Style
	Status    lipgloss.Style
	Warning   lipgloss.Style
}

type palette struct {
	primary   lipgloss.Color
	accent    lipgloss.Color
	muted     lipgloss.Color
	border    lipgloss.Color
	text      lipgloss.Color
	warning   lipgloss.Color
	userColor lipgloss.Color
}

var palettes = map[string]palette{
	"default": {
		primary:   lipgloss.Color("#F8BD96"),
		accent:    lipgloss.Color("#89DCEB"),
		muted:     lipgloss.Color("#71717a"),
		border:    lipgloss.Color("#52525b"),
		text:      lipgloss.Color("#d4d4d8"),
		warning:   lipgloss.Color("#fca5a5"),
		userColor: lipgloss.Color("#bbf7d0"),
	},
	"dark": {
		primary:   lipgloss.Color("#8BC34A"),
		accent:    lipgloss.Color("#bae6fd"),
		muted:     lipgloss.Color("#2a3850"),
		border:    lipgloss.Color("#2a3850"),
		text:      lipgloss.Color("#f2f2f2"),
		warning:   lipgloss.Color("#e53935"),
		userColor: lipgloss.Color("#fde68a"),
	},
	"light": {
		primary:   lipgloss.Color("#101F38"),
		accent:    lipgloss.Color("#2196F3"),
		muted:     lipgloss.Color("#6b7280"),
		border:    lipgloss.Color("#dce0e5"),
		text:      lipgloss.Color("#101F38"),
		warning:   lipgloss.Color("#e53935"),
		userColor: lipgloss.Color("#4d7c0f"),
	},
}

func newStyles(theme string) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes["default"]
	}

	return styles{
		Base:  lipgloss.NewStyle().Padding(1, 2),
		Title: lipgloss.NewStyle().Bold(true).Foreground(p.primary),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		Heading:   lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Countdown: lipgloss.NewStyle().Bold(true).Foreground(p.primary),
		Hint:      lipgloss.NewStyle().Foreground(p.muted).Italic(true),
		Secondary: lipgloss.NewStyle().Foreground(p.text),
		User:      lipgloss.NewStyle().Foreground(p.userColor),
		Reply:     lipgloss.NewStyle().Foreground(p.accent),
		Status:    lipgloss.NewStyle().Foreground(p.primary),
		Warning:   lipgloss.NewStyle().Foreground(p.warning),
	}
}
