// Package report prints command outcomes and errors to the terminal.
package report

import (
	"errors"
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/compass/internal/apperr"
	"github.com/ayoisaiah/compass/internal/osutil"
)

// Success prints a confirmation.
func Success(format string, args ...any) {
	pterm.Success.Printfln(format, args...)
}

// Info prints a neutral notice.
func Info(format string, args ...any) {
	pterm.Info.Printfln(format, args...)
}

// Error prints err according to its kind. Validation problems and lost
// persistence are warnings; everything else is an error.
func Error(err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		pterm.Error.Println(err)
		return
	}

	switch e.Kind {
	case apperr.Validation:
		pterm.Warning.Println(e.Message)
	case apperr.StorageUnavailable:
		pterm.Warning.Println(e.Message + ". Changes made now will not be saved.")
	default:
		pterm.Error.Println(err)
	}
}

// Quit prints err and exits.
func Quit(err error) {
	Error(err)
	os.Exit(int(osutil.ExitError))
}
