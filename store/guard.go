package store

import (
	"log/slog"

	"github.com/ayoisaiah/compass/internal/apperr"
)

var errStorageUnavailable = &apperr.Error{
	Message: "storage unavailable: persistence disabled for this session",
	Kind:    apperr.StorageUnavailable,
}

// Guard wraps a DB so that the first storage failure disables persistence
// for the remainder of the session. A disabled Guard behaves like an empty
// store that discards writes, and never returns storage errors.
type Guard struct {
	db  DB
	log *slog.Logger
	err error
}

// NewGuard wraps db.
func NewGuard(db DB, log *slog.Logger) *Guard {
	return &Guard{db: db, log: log}
}

// Unavailable returns a Guard that starts disabled, for when the DB could
// not be opened at all.
func Unavailable(cause error, log *slog.Logger) *Guard {
	g := &Guard{log: log}
	g.disable(cause)

	return g
}

// Available reports whether persistence is still active.
func (g *Guard) Available() bool {
	return g.err == nil
}

// Err returns the failure that disabled persistence, if any.
func (g *Guard) Err() error {
	return g.err
}

func (g *Guard) disable(cause error) {
	if g.err != nil {
		return
	}

	g.err = errStorageUnavailable.Wrap(cause)

	g.log.Warn("persistence disabled", slog.Any("error", g.err))
}

func (g *Guard) Get(key Key) ([]byte, error) {
	if !g.Available() {
		return nil, nil
	}

	v, err := g.db.Get(key)
	if err != nil {
		g.disable(err)
		return nil, nil
	}

	return v, nil
}

func (g *Guard) Put(key Key, value []byte) error {
	if !g.Available() {
		return nil
	}

	if err := g.db.Put(key, value); err != nil {
		g.disable(err)
	}

	return nil
}

func (g *Guard) Delete(key Key) error {
	if !g.Available() {
		return nil
	}

	if err := g.db.Delete(key); err != nil {
		g.disable(err)
	}

	return nil
}

func (g *Guard) Size() (int, error) {
	if !g.Available() {
		return 0, nil
	}

	n, err := g.db.Size()
	if err != nil {
		g.disable(err)
		return 0, nil
	}

	return n, nil
}

func (g *Guard) Close() error {
	if g.db == nil {
		return nil
	}

	return g.db.Close()
}
