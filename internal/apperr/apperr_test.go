package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/compass/internal/apperr"
)

var errOutOfRange = &apperr.Error{
	Message: "value must be between %d and %d",
	Kind:    apperr.Validation,
}

func TestFmtKeepsIdentity(t *testing.T) {
	err := errOutOfRange.Fmt(1, 120)

	assert.Equal(t, "value must be between 1 and 120", err.Error())
	assert.ErrorIs(t, err, errOutOfRange)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestWrapExposesCause(t *testing.T) {
	cause := errors.New("disk on fire")

	err := fmt.Errorf("saving: %w", errOutOfRange.Wrap(cause))

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, errOutOfRange)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, apperr.Internal, apperr.KindOf(errors.New("boom")))
	assert.False(t, apperr.IsKind(nil, apperr.Internal))
}

func TestDistinctSentinels(t *testing.T) {
	other := &apperr.Error{Message: "other", Kind: apperr.Validation}

	assert.NotErrorIs(t, errOutOfRange.Fmt(1, 2), other)
}
