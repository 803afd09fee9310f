package position

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yllada/exforms/common"
)

type fakeWindow struct {
	name      string
	left, top int
	explicit  bool
}

func (w *fakeWindow) WindowName() string    { return w.name }
func (w *fakeWindow) Location() (int, int)  { return w.left, w.top }
func (w *fakeWindow) PlaceAt(left, top int) { w.left, w.top, w.explicit = left, top, true }

func stores(t *testing.T) map[string]Store {
	t.Helper()

	sqlStore, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "positions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlStore.Close() })

	return map[string]Store{
		"file":   NewFileStore(filepath.Join(t.TempDir(), "positions")),
		"sqlite": sqlStore,
	}
}

func TestStore_RoundTrip(t *testing.T) {
	for kind, store := range stores(t) {
		t.Run(kind, func(t *testing.T) {
			require.NoError(t, Persist(store, &fakeWindow{name: "Main", left: 120, top: 340}))

			w := &fakeWindow{name: "Main"}
			assert.True(t, Restore(store, w))
			assert.Equal(t, 120, w.left)
			assert.Equal(t, 340, w.top)
			assert.True(t, w.explicit)
		})
	}
}

func TestStore_UpdateInPlace(t *testing.T) {
	for kind, store := range stores(t) {
		t.Run(kind, func(t *testing.T) {
			require.NoError(t, store.Save("Main", Record{Left: 1, Top: 2}))
			require.NoError(t, store.Save("Main", Record{Left: -30, Top: 40}))

			rec, err := store.Load("Main")
			require.NoError(t, err)
			assert.Equal(t, Record{Left: -30, Top: 40}, rec)

			all, err := store.List()
			require.NoError(t, err)
			assert.Len(t, all, 1)
		})
	}
}

func TestStore_MissingRecordKeepsDefault(t *testing.T) {
	for kind, store := range stores(t) {
		t.Run(kind, func(t *testing.T) {
			_, err := store.Load("Other")
			assert.ErrorIs(t, err, common.ErrPositionNotFound)

			w := &fakeWindow{name: "Other", left: 5, top: 6}
			assert.False(t, Restore(store, w))
			assert.Equal(t, 5, w.left)
			assert.False(t, w.explicit)
		})
	}
}

func TestStore_Delete(t *testing.T) {
	for kind, store := range stores(t) {
		t.Run(kind, func(t *testing.T) {
			require.NoError(t, store.Save("Main", Record{Left: 1, Top: 2}))
			require.NoError(t, store.Delete("Main"))
			require.NoError(t, store.Delete("Main"))

			_, err := store.Load("Main")
			assert.ErrorIs(t, err, common.ErrPositionNotFound)
		})
	}
}

func TestFileStore_MalformedFallsBack(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	content := "position:\n  left: twelve\n  top: 340\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Main"+common.PositionExtension), []byte(content), 0600))

	_, err := store.Load("Main")
	assert.ErrorIs(t, err, common.ErrMalformedPosition)

	w := &fakeWindow{name: "Main"}
	assert.False(t, Restore(store, w))
	assert.False(t, w.explicit)
}

func TestFileStore_WritesPlainIntegers(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	require.NoError(t, store.Save("Main", Record{Left: 120, Top: 340}))

	data, err := os.ReadFile(filepath.Join(dir, "Main"+common.PositionExtension))
	require.NoError(t, err)
	assert.Equal(t, "position:\n    left: 120\n    top: 340\n", string(data))
}

func TestSQLiteStore_MalformedFallsBack(t *testing.T) {
	store, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "positions.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.db.Exec(`INSERT INTO window_positions (name, left_px, top_px) VALUES ('Main', '12', 'x')`)
	require.NoError(t, err)

	_, err = store.Load("Main")
	assert.ErrorIs(t, err, common.ErrMalformedPosition)

	all, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestInvalidNames(t *testing.T) {
	store := NewFileStore(t.TempDir())
	for _, name := range []string{"", "  ", "../etc", `a\b`, ".."} {
		assert.ErrorIs(t, store.Save(name, Record{}), common.ErrInvalidWindowName, name)
	}
}
