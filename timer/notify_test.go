package timer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/compass/internal/apperr"
)

type failingNotifier struct {
	err   error
	calls int
}

func (f *failingNotifier) Notify(string, string) error {
	f.calls++
	return f.err
}

func TestNewCommand(t *testing.T) {
	c, err := NewCommand(`notify-send --app-name "Compass Timer"`)
	require.NoError(t, err)

	assert.Equal(t, "notify-send", c.name)
	assert.Equal(t, []string{"--app-name", "Compass Timer"}, c.args)

	empty, err := NewCommand("")
	require.NoError(t, err)
	assert.NoError(t, empty.Notify("a", "b"))

	_, err = NewCommand(`echo "unterminated`)
	assert.ErrorIs(t, err, errNotifyCmd)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestNotifiersJoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	a := &failingNotifier{}
	b := &failingNotifier{err: boom}
	c := &failingNotifier{}

	err := Notifiers{a, b, c}.Notify("t", "m")

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
	assert.Equal(t, 1, c.calls)
}

func TestSoundRejectsUnknownFormat(t *testing.T) {
	s := &Sound{file: "alert.txt"}

	_, err := s.fileStream()
	assert.Error(t, err)
}
