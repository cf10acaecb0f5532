package store

import (
	"encoding/json"

	"github.com/ayoisaiah/compass/internal/apperr"
)

var errCorruptValue = &apperr.Error{
	Message: "saved data for %q is unreadable and was reset",
	Kind:    apperr.Internal,
}

// Repository loads and saves one persisted entity.
type Repository[T any] interface {
	// Load returns the saved value. An absent key yields the default value
	// and a nil error. An unreadable value yields the default value and a
	// non-nil error that callers are expected to log, not propagate
	Load() (T, error)
	Save(v T) error
}

// JSON is a Repository storing its value as JSON under a single key.
type JSON[T any] struct {
	db   DB
	zero func() T
	key  Key
}

// NewJSON returns a JSON repository for key. zero builds the default value.
func NewJSON[T any](db DB, key Key, zero func() T) *JSON[T] {
	return &JSON[T]{db: db, key: key, zero: zero}
}

func (r *JSON[T]) Load() (T, error) {
	b, err := r.db.Get(r.key)
	if err != nil {
		return r.zero(), err
	}

	if len(b) == 0 {
		return r.zero(), nil
	}

	var v T

	err = json.Unmarshal(b, &v)
	if err != nil {
		return r.zero(), errCorruptValue.Fmt(r.key).Wrap(err)
	}

	return v, nil
}

func (r *JSON[T]) Save(v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return r.db.Put(r.key, b)
}
