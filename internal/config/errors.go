package config

import "github.com/ayoisaiah/compass/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
		Kind:    apperr.Validation,
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidMinutes = &apperr.Error{
		Message: "timer minutes must be between %d and %d, got %d",
		Kind:    apperr.Validation,
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
		Kind:    apperr.Validation,
	}

	errSoundNotFound = &apperr.Error{
		Message: "sound file not found: %s",
		Kind:    apperr.Validation,
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %s",
		Kind:    apperr.Validation,
	}

	errInvalidBaseURL = &apperr.Error{
		Message: "assistant base_url must be an absolute http(s) URL, got %q",
		Kind:    apperr.Validation,
	}

	errInvalidTheme = &apperr.Error{
		Message: "unknown theme %q (must be one of %v)",
		Kind:    apperr.Validation,
	}
)
