// Package timeutil provides utility functions for working with times and
// clock labels.
package timeutil

import (
	"fmt"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

const (
	clock12 = "03:04 PM"
	clock24 = "15:04"

	// ISO8601 matches the millisecond UTC form browsers produce.
	ISO8601 = "2006-01-02T15:04:05.000Z07:00"
)

// Clock is the source of the current time. Components take one so tests can
// control time.
type Clock func() time.Time

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// Label formats t as an hour:minute clock label.
func Label(t time.Time, twentyFourHour bool) string {
	if twentyFourHour {
		return t.Format(clock24)
	}

	return t.Format(clock12)
}

// ISO formats t in UTC as an ISO-8601 timestamp with millisecond precision.
func ISO(t time.Time) string {
	return t.UTC().Format(ISO8601)
}

// MinutesAndSeconds splits a second count for an MM:SS display.
func MinutesAndSeconds(total int) (mins, secs int) {
	if total < 0 {
		total = 0
	}

	return total / 60, total % 60
}

// Countdown formats a second count as MM:SS.
func Countdown(total int) string {
	m, s := MinutesAndSeconds(total)

	return fmt.Sprintf("%02d:%02d", m, s)
}

// FromStr parses a natural language date such as "yesterday" or
// "2 hours ago" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)

	cfg := &dps.Configuration{
		CurrentTime: now,
	}

	dt, err := dps.Parse(cfg, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse %q as a date: %w", s, err)
	}

	return dt.Time, nil
}
