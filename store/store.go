// Package store connects to the data store and persists the compass state as
// JSON values under well-known keys
package store

import (
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/compass/internal/apperr"
)

const stateBucket = "state"

var errCompassRunning = &apperr.Error{
	Message: "is compass already running? Only one instance can be active at a time",
	Kind:    apperr.StorageUnavailable,
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) Get(key Key) ([]byte, error) {
	var value []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(stateBucket)).Get([]byte(key))
		if v != nil {
			// bolt values are only valid for the life of the transaction
			value = append([]byte(nil), v...)
		}

		return nil
	})

	return value, err
}

func (c *Client) Put(key Key, value []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stateBucket)).Put([]byte(key), value)
	})
}

func (c *Client) Delete(key Key) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stateBucket)).Delete([]byte(key))
	})
}

func (c *Client) Size() (int, error) {
	var total int

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stateBucket)).ForEach(func(k, v []byte) error {
			total += len(v)
			return nil
		})
	})

	return total, err
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errCompassRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(stateBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
