package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/compass/internal/apperr"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	pterm.DisableStyling()
	pterm.SetDefaultOutput(&buf)

	t.Cleanup(func() {
		pterm.EnableStyling()
		pterm.SetDefaultOutput(os.Stdout)
	})

	return &buf
}

func TestErrorByKind(t *testing.T) {
	sentinel := &apperr.Error{Message: "bad minutes", Kind: apperr.Validation}

	cases := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("wrapped: %w", sentinel.Wrap(errors.New("cause"))), "bad minutes"},
		{&apperr.Error{Message: "disk gone", Kind: apperr.StorageUnavailable}, "will not be saved"},
		{&apperr.Error{Message: "upstream", Kind: apperr.RemoteService}, "upstream"},
		{errors.New("plain"), "plain"},
	}

	for _, tc := range cases {
		buf := capture(t)

		Error(tc.err)

		assert.Contains(t, buf.String(), tc.want)
	}
}

func TestValidationHidesCause(t *testing.T) {
	buf := capture(t)

	sentinel := &apperr.Error{Message: "bad minutes", Kind: apperr.Validation}
	Error(sentinel.Wrap(errors.New("strconv detail")))

	assert.NotContains(t, buf.String(), "strconv detail")
}
