package store_test

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ayoisaiah/compass/internal/apperr"
	"github.com/ayoisaiah/compass/internal/models"
	"github.com/ayoisaiah/compass/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newClient(t *testing.T) *store.Client {
	t.Helper()

	c, err := store.NewClient(filepath.Join(t.TempDir(), "compass.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func TestClientPutGet(t *testing.T) {
	c := newClient(t)

	v, err := c.Get(store.KeySettings)
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, c.Put(store.KeySettings, []byte(`{"theme":"dark"}`)))

	v, err = c.Get(store.KeySettings)
	require.NoError(t, err)
	assert.Equal(t, `{"theme":"dark"}`, string(v))

	size, err := c.Size()
	require.NoError(t, err)
	assert.Equal(t, len(`{"theme":"dark"}`), size)

	require.NoError(t, c.Delete(store.KeySettings))

	v, err = c.Get(store.KeySettings)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestClientSecondOpenFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compass.db")

	c, err := store.NewClient(path)
	require.NoError(t, err)

	defer c.Close()

	_, err = store.NewClient(path)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.StorageUnavailable))
	assert.ErrorContains(t, err, "already running")
}

func TestJSONRepository(t *testing.T) {
	db := store.NewMemory()
	repo := store.NewJSON(db, store.KeyActivity, func() []models.LogEntry {
		return []models.LogEntry{}
	})

	entries, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)

	want := []models.LogEntry{{ID: "1", Message: "hello"}}
	require.NoError(t, repo.Save(want))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestJSONRepositoryCorruptValue(t *testing.T) {
	db := store.NewMemory()
	require.NoError(t, db.Put(store.KeySettings, []byte("{not json")))

	repo := store.NewJSON(db, store.KeySettings, func() models.Settings {
		return models.Settings{Theme: "default"}
	})

	s, err := repo.Load()
	require.Error(t, err)
	assert.Equal(t, "default", s.Theme)
}

type failingDB struct {
	store.Memory
	calls int
}

var errDiskGone = errors.New("disk gone")

func (f *failingDB) Put(store.Key, []byte) error {
	f.calls++
	return errDiskGone
}

func TestGuardDisablesOnFailure(t *testing.T) {
	inner := &failingDB{Memory: *store.NewMemory()}
	g := store.NewGuard(inner, discard)

	require.NoError(t, g.Put(store.KeySettings, []byte("{}")))
	assert.False(t, g.Available())
	assert.ErrorIs(t, g.Err(), errDiskGone)
	assert.True(t, apperr.IsKind(g.Err(), apperr.StorageUnavailable))

	require.NoError(t, g.Put(store.KeySettings, []byte("{}")))
	assert.Equal(t, 1, inner.calls, "writes after failure must not reach the store")

	v, err := g.Get(store.KeySettings)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestUnavailableGuard(t *testing.T) {
	g := store.Unavailable(errDiskGone, discard)

	assert.False(t, g.Available())
	require.NoError(t, g.Put(store.KeyActivity, []byte("[]")))

	n, err := g.Size()
	require.NoError(t, err)
	assert.Zero(t, n)
	require.NoError(t, g.Close())
}

func TestMigrateLegacy(t *testing.T) {
	db := store.NewMemory()

	migrated, err := store.MigrateLegacy(db, map[string]string{
		"openai_api_key":        "sk-test",
		"productivity_progress": `[{"id":1,"time":"09:00","message":"hi"}]`,
		"unrelated":             "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, []store.Key{store.KeyCredential, store.KeyActivity}, migrated)

	v, err := db.Get(store.KeyCredential)
	require.NoError(t, err)
	assert.Equal(t, `"sk-test"`, string(v))
}

func TestMigrateLegacyRejectsInvalid(t *testing.T) {
	db := store.NewMemory()

	_, err := store.MigrateLegacy(db, map[string]string{
		"app_settings":          "{oops",
		"productivity_progress": "[]",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))

	n, _ := db.Size()
	assert.Zero(t, n)
}
