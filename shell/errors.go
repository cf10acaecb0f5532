package shell

import "github.com/ayoisaiah/compass/internal/apperr"

var (
	errInvalidBundle = &apperr.Error{
		Message: "Invalid file format. Please select a valid backup file.",
		Kind:    apperr.Validation,
	}

	errInvalidSettings = &apperr.Error{
		Message: "invalid settings",
		Kind:    apperr.Validation,
	}

	errInvalidProgress = &apperr.Error{
		Message: "invalid learning progress for resource %d",
		Kind:    apperr.Validation,
	}
)
