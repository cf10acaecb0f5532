package timer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/compass/internal/apperr"
	"github.com/ayoisaiah/compass/internal/logging"
	"github.com/ayoisaiah/compass/internal/models"
	"github.com/ayoisaiah/compass/timer"
)

// recorder captures every side effect in the order it happened.
type recorder struct {
	alertErr error
	events   []string
}

func (r *recorder) Append(message string) models.LogEntry {
	r.events = append(r.events, "log:"+message)
	return models.LogEntry{Message: message}
}

func (r *recorder) Alert() error {
	r.events = append(r.events, "alert")
	return r.alertErr
}

func (r *recorder) Notify(title, message string) error {
	r.events = append(r.events, "notify:"+title+"|"+message)
	return nil
}

func (r *recorder) NotifyBreakSuggestion() {
	r.events = append(r.events, "break")
}

func (r *recorder) reset() {
	r.events = nil
}

func newTimer(r *recorder, opts ...timer.Option) *timer.Timer {
	opts = append([]timer.Option{
		timer.WithAlerter(r),
		timer.WithNotifier(r),
		timer.WithBreakSuggester(r),
		timer.WithLogger(logging.Discard()),
	}, opts...)

	return timer.New(r, opts...)
}

// run delivers n ticks for the current generation.
func run(t *timer.Timer, n int) {
	for range n {
		t.Tick(t.State().Generation)
	}
}

func TestInitialState(t *testing.T) {
	tm := newTimer(&recorder{})

	assert.Equal(t, timer.State{
		Phase:             timer.Idle,
		RemainingSeconds:  1500,
		ConfiguredSeconds: 1500,
	}, tm.State())
}

func TestConfigureThenReset(t *testing.T) {
	tm := newTimer(&recorder{})

	for d := timer.MinMinutes; d <= timer.MaxMinutes; d++ {
		require.NoError(t, tm.Configure(d))
		tm.Reset()

		assert.Equal(t, d*60, tm.State().RemainingSeconds)
		assert.Equal(t, timer.Idle, tm.State().Phase)
	}
}

func TestConfigureOutOfRange(t *testing.T) {
	r := &recorder{}
	tm := newTimer(r)

	require.NoError(t, tm.Configure(10))
	tm.Start()
	run(tm, 5)

	before := tm.State()
	r.reset()

	for _, m := range []int{0, 121, -5} {
		err := tm.Configure(m)

		assert.True(t, apperr.IsKind(err, apperr.Validation), m)
		assert.Equal(t, before, tm.State())
	}

	assert.Empty(t, r.events)
}

func TestConfigureString(t *testing.T) {
	testCases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "45", want: 45 * 60},
		{in: " 5 ", want: 5 * 60},
		{in: "abc", wantErr: true},
		{in: "-3", wantErr: true},
		{in: "2.5", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			tm := newTimer(&recorder{})

			err := tm.ConfigureString(tc.in)
			if tc.wantErr {
				assert.True(t, apperr.IsKind(err, apperr.Validation))
				assert.Equal(t, 1500, tm.State().ConfiguredSeconds)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, tm.State().ConfiguredSeconds)
		})
	}
}

func TestConfigureLogsAndNotifies(t *testing.T) {
	r := &recorder{}

	var mirrored int

	tm := newTimer(r, timer.OnConfigure(func(m int) { mirrored = m }))

	tm.Start()
	r.reset()

	require.NoError(t, tm.Configure(30))

	assert.Equal(t, []string{
		"log:Timer reset 🔄",
		"log:Timer set to 30 minutes ⏱️",
	}, r.events)
	assert.Equal(t, 30, mirrored)
	assert.Equal(t, timer.Idle, tm.State().Phase)
}

func TestStartLogsOnlyFromIdle(t *testing.T) {
	r := &recorder{}
	tm := newTimer(r)

	assert.True(t, tm.Start())
	assert.False(t, tm.Start())
	assert.True(t, tm.Pause())
	assert.True(t, tm.Start())

	assert.Equal(t, []string{
		"log:Timer started! 🎯",
		"log:Timer paused ⏸️",
	}, r.events)
}

func TestPauseStopsTicks(t *testing.T) {
	tm := newTimer(&recorder{})

	tm.Start()
	gen := tm.State().Generation
	run(tm, 10)

	tm.Pause()

	remaining := tm.State().RemainingSeconds

	assert.False(t, tm.Tick(gen))
	assert.False(t, tm.Tick(tm.State().Generation))
	assert.Equal(t, remaining, tm.State().RemainingSeconds)
}

func TestStaleTickAfterResume(t *testing.T) {
	tm := newTimer(&recorder{})

	tm.Start()
	stale := tm.State().Generation

	tm.Pause()
	tm.Start()

	assert.False(t, tm.Tick(stale))
	assert.Equal(t, 1500, tm.State().RemainingSeconds)

	assert.True(t, tm.Tick(tm.State().Generation))
	assert.Equal(t, 1499, tm.State().RemainingSeconds)
}

func TestReset(t *testing.T) {
	r := &recorder{}
	tm := newTimer(r)

	tm.Start()
	gen := tm.State().Generation
	run(tm, 100)

	r.reset()
	tm.Reset()

	assert.Equal(t, timer.Idle, tm.State().Phase)
	assert.Equal(t, 1500, tm.State().RemainingSeconds)
	assert.False(t, tm.Tick(gen))
	assert.Equal(t, []string{"log:Timer reset 🔄"}, r.events)
}

func TestCompletionSequence(t *testing.T) {
	r := &recorder{}
	tm := newTimer(r)

	require.NoError(t, tm.Configure(1))
	tm.Start()
	r.reset()

	run(tm, 60)

	assert.Equal(t, timer.Completed, tm.State().Phase)
	assert.Equal(t, 0, tm.State().RemainingSeconds)
	assert.Equal(t, 1, tm.Completions())
	assert.Equal(t, []string{
		"alert",
		"notify:Timer Complete!|Time to take a break! 🎉",
		"log:Timer completed! Great job! 🎉",
		"break",
	}, r.events)

	r.reset()
	run(tm, 5)
	assert.False(t, tm.Start())
	assert.Empty(t, r.events)
}

func TestCompletionSwallowsAlertFailure(t *testing.T) {
	r := &recorder{alertErr: errors.New("no audio device")}
	tm := newTimer(r, timer.WithMinutes(1))

	tm.Start()
	r.reset()
	run(tm, 60)

	assert.Len(t, r.events, 4)
	assert.Equal(t, "break", r.events[3])
}

func TestCompletionWithoutBreakReminder(t *testing.T) {
	r := &recorder{}
	tm := newTimer(r, timer.WithMinutes(1), timer.WithAutoBreakReminder(false))

	tm.Start()
	r.reset()
	run(tm, 60)

	assert.NotContains(t, r.events, "break")
	assert.Len(t, r.events, 3)
}

func TestToggle(t *testing.T) {
	tm := newTimer(&recorder{})

	assert.True(t, tm.Toggle())
	assert.Equal(t, timer.Running, tm.State().Phase)

	assert.False(t, tm.Toggle())
	assert.Equal(t, timer.Paused, tm.State().Phase)

	assert.True(t, tm.Toggle())
	assert.Equal(t, timer.Running, tm.State().Phase)
}

func TestWithMinutesIgnoresOutOfRange(t *testing.T) {
	assert.Equal(t, 3000, newTimer(&recorder{}, timer.WithMinutes(50)).State().ConfiguredSeconds)
	assert.Equal(t, 1500, newTimer(&recorder{}, timer.WithMinutes(500)).State().ConfiguredSeconds)
}
