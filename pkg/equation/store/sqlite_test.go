package store_test

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/randalmurphal/equation/pkg/equation/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_Persistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "equations.db")

	store1, err := store.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store1.Save(store.NewSimple(1, "x^y+z+c")))
	require.NoError(t, store1.Save(store.NewComposite(2, 1, 1, "*")))
	require.NoError(t, store1.Close())

	// Reopen the database
	store2, err := store.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer store2.Close()

	all, err := store2.List()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "x^y+z+c", all[0].Expression)
	assert.Equal(t, "*", all[1].Operator)
}

func TestSQLiteStore_InvalidPath(t *testing.T) {
	_, err := store.NewSQLiteStore("/nonexistent/path/db.sqlite")
	assert.Error(t, err)
}

func TestSQLiteStore_CloseIdempotent(t *testing.T) {
	s, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)

	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestSQLiteStore_ConcurrentSave(t *testing.T) {
	s, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer s.Close()

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(id uint64) {
			defer wg.Done()
			assert.NoError(t, s.Save(store.NewSimple(id, "a+b")))
		}(uint64(i))
	}
	wg.Wait()

	all, err := s.List()
	require.NoError(t, err)
	assert.Len(t, all, 20)
}
