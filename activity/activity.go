// Package activity implements the timestamped activity log shared by the
// other components.
package activity

import (
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/compass/internal/models"
	"github.com/ayoisaiah/compass/internal/timeutil"
	"github.com/ayoisaiah/compass/store"
)

// Appender is the part of the Log that other components write to.
type Appender interface {
	Append(message string) models.LogEntry
}

// Stats summarises the log.
type Stats struct {
	MostRecentLabel string
	TotalCount      int
	TodayCount      int
}

// Log is an append-only activity feed presented newest first.
type Log struct {
	repo  store.Repository[[]models.LogEntry]
	log   *slog.Logger
	now   timeutil.Clock
	newID func() (uuid.UUID, error)

	// entries is kept oldest first so that appends don't shift the slice
	entries []models.LogEntry

	twentyFourHour bool
}

// Option configures a Log.
type Option func(*Log)

// WithClock sets the time source.
func WithClock(c timeutil.Clock) Option {
	return func(l *Log) {
		l.now = c
	}
}

// WithLogger sets the logger used to report persistence problems.
func WithLogger(log *slog.Logger) Option {
	return func(l *Log) {
		l.log = log
	}
}

// WithTwentyFourHour selects "15:04" time labels instead of "03:04 PM".
func WithTwentyFourHour(on bool) Option {
	return func(l *Log) {
		l.twentyFourHour = on
	}
}

// NewRepository returns the repository backing the activity log.
func NewRepository(db store.DB) *store.JSON[[]models.LogEntry] {
	return store.NewJSON(db, store.KeyActivity, func() []models.LogEntry {
		return nil
	})
}

// New loads the saved log from repo.
func New(repo store.Repository[[]models.LogEntry], opts ...Option) *Log {
	l := &Log{
		repo:  repo,
		log:   slog.Default(),
		now:   time.Now,
		newID: uuid.NewV7,
	}

	for _, opt := range opts {
		opt(l)
	}

	saved, err := repo.Load()
	if err != nil {
		l.log.Warn("activity log reset", slog.Any("error", err))
	}

	l.entries = chronological(saved)

	return l
}

// chronological reverses a newest-first sequence into a new slice.
func chronological(newestFirst []models.LogEntry) []models.LogEntry {
	out := slices.Clone(newestFirst)
	slices.Reverse(out)

	return out
}

// Append records message with a fresh id and the current time.
func (l *Log) Append(message string) models.LogEntry {
	now := l.now()

	id, err := l.newID()
	if err != nil {
		// NewV7 only fails if the random source does
		id = uuid.New()
	}

	entry := models.LogEntry{
		ID:        models.EntryID(id.String()),
		TimeLabel: timeutil.Label(now, l.twentyFourHour),
		Message:   message,
		CreatedAt: now,
	}

	l.entries = append(l.entries, entry)

	l.persist()

	return entry
}

// Clear removes every entry.
func (l *Log) Clear() {
	l.entries = nil

	l.persist()
}

// Replace swaps the whole log for entries, which are ordered newest first.
func (l *Log) Replace(entries []models.LogEntry) {
	l.entries = chronological(entries)

	l.persist()
}

// Entries returns a copy of the log, newest first.
func (l *Log) Entries() []models.LogEntry {
	return chronological(l.entries)
}

// Since returns the entries created at or after t, newest first.
func (l *Log) Since(t time.Time) []models.LogEntry {
	var out []models.LogEntry

	for i := len(l.entries) - 1; i >= 0; i-- {
		if !l.entries[i].CreatedAt.Before(t) {
			out = append(out, l.entries[i])
		}
	}

	return out
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Stats counts the entries and those created since local midnight.
func (l *Log) Stats() Stats {
	s := Stats{
		TotalCount:      len(l.entries),
		MostRecentLabel: "None",
	}

	if len(l.entries) == 0 {
		return s
	}

	s.MostRecentLabel = l.entries[len(l.entries)-1].TimeLabel

	midnight := timeutil.RoundToStart(l.now())

	for i := range l.entries {
		if !l.entries[i].CreatedAt.Before(midnight) {
			s.TodayCount++
		}
	}

	return s
}

func (l *Log) persist() {
	// saved newest first, matching the export format
	err := l.repo.Save(chronological(l.entries))
	if err != nil {
		l.log.Warn("saving activity log failed", slog.Any("error", err))
	}
}
