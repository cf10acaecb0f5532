package catalog

import "github.com/ayoisaiah/compass/internal/apperr"

var (
	errTitleRequired = &apperr.Error{
		Message: "a resource needs a title",
		Kind:    apperr.Validation,
	}

	errURLRequired = &apperr.Error{
		Message: "a resource needs a url",
		Kind:    apperr.Validation,
	}

	errEmptyCatalog = &apperr.Error{
		Message: "the built-in catalog has no resources",
		Kind:    apperr.Validation,
	}

	errDuplicateID = &apperr.Error{
		Message: "resource id %d is used more than once",
		Kind:    apperr.Validation,
	}

	errParseCatalog = &apperr.Error{
		Message: "unable to parse resource catalog",
		Kind:    apperr.Validation,
	}
)
