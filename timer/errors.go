package timer

import "github.com/ayoisaiah/compass/internal/apperr"

var (
	errInvalidMinutes = &apperr.Error{
		Message: "Please enter a valid number between %d and %d minutes.",
		Kind:    apperr.Validation,
	}

	errNotANumber = &apperr.Error{
		Message: "%q is not a whole number of minutes",
		Kind:    apperr.Validation,
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format",
		Kind:    apperr.Validation,
	}

	errNotifyCmd = &apperr.Error{
		Message: "unable to parse notification command",
		Kind:    apperr.Validation,
	}
)
