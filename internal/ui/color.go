// Package ui holds the pterm helpers shared by the command-line output.
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme switches to the light variants that read better on dark
// terminals.
var DarkTheme bool

// SetTheme applies the theme setting.
func SetTheme(theme string) {
	DarkTheme = theme == "dark"
}

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}
