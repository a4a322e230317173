package store_test

import (
	"testing"
	"time"

	"github.com/randalmurphal/equation/pkg/equation/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeFactory creates a store instance for testing.
type storeFactory func(t *testing.T) store.Store

// storeContractTest runs contract tests against any Store implementation.
func storeContractTest(t *testing.T, name string, factory storeFactory) {
	t.Run(name+"/Save_and_Load_Simple", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		rec := store.NewSimple(1, "a / b + a / b * c")
		require.NoError(t, s.Save(rec))

		loaded, err := s.Load(1)
		require.NoError(t, err)
		assert.Equal(t, store.KindSimple, loaded.Kind)
		assert.Equal(t, "a / b + a / b * c", loaded.Expression)
		assert.Equal(t, store.Version, loaded.Version)
		assert.WithinDuration(t, rec.Updated, loaded.Updated, time.Millisecond)
	})

	t.Run(name+"/Save_and_Load_Composite", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		require.NoError(t, s.Save(store.NewComposite(3, 1, 2, "+")))

		loaded, err := s.Load(3)
		require.NoError(t, err)
		assert.Equal(t, store.KindComposite, loaded.Kind)
		assert.Equal(t, uint64(1), loaded.Left)
		assert.Equal(t, uint64(2), loaded.Right)
		assert.Equal(t, "+", loaded.Operator)
		assert.Empty(t, loaded.Expression)
	})

	t.Run(name+"/Load_NotFound", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		_, err := s.Load(99)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run(name+"/Save_Overwrite", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		require.NoError(t, s.Save(store.NewSimple(1, "a+b")))
		require.NoError(t, s.Save(store.NewSimple(1, "a-b")))

		loaded, err := s.Load(1)
		require.NoError(t, err)
		assert.Equal(t, "a-b", loaded.Expression)

		all, err := s.List()
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run(name+"/List_Empty", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		all, err := s.List()
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run(name+"/List_Ordered", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		require.NoError(t, s.Save(store.NewComposite(3, 1, 2, "*")))
		require.NoError(t, s.Save(store.NewSimple(1, "a")))
		require.NoError(t, s.Save(store.NewSimple(2, "b")))

		all, err := s.List()
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, uint64(1), all[0].ID)
		assert.Equal(t, uint64(2), all[1].ID)
		assert.Equal(t, uint64(3), all[2].ID)
	})

	t.Run(name+"/Delete", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		require.NoError(t, s.Save(store.NewSimple(1, "a")))
		require.NoError(t, s.Delete(1))

		_, err := s.Load(1)
		assert.ErrorIs(t, err, store.ErrNotFound)

		// Deleting again is not an error
		assert.NoError(t, s.Delete(1))
	})

	t.Run(name+"/Closed", func(t *testing.T) {
		s := factory(t)
		require.NoError(t, s.Close())

		assert.ErrorIs(t, s.Save(store.NewSimple(1, "a")), store.ErrStoreClosed)
		_, err := s.Load(1)
		assert.ErrorIs(t, err, store.ErrStoreClosed)
		_, err = s.List()
		assert.ErrorIs(t, err, store.ErrStoreClosed)
		assert.ErrorIs(t, s.Delete(1), store.ErrStoreClosed)
	})
}

func TestMemoryStore_Contract(t *testing.T) {
	storeContractTest(t, "MemoryStore", func(t *testing.T) store.Store {
		return store.NewMemoryStore()
	})
}

func TestSQLiteStore_Contract(t *testing.T) {
	storeContractTest(t, "SQLiteStore", func(t *testing.T) store.Store {
		s, err := store.NewSQLiteStore(":memory:")
		require.NoError(t, err)
		return s
	})
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := store.NewMemoryStore()
	rec := store.NewSimple(1, "a+b")
	require.NoError(t, s.Save(rec))

	rec.Expression = "mutated"
	loaded, err := s.Load(1)
	require.NoError(t, err)
	assert.Equal(t, "a+b", loaded.Expression)

	loaded.Expression = "mutated again"
	again, err := s.Load(1)
	require.NoError(t, err)
	assert.Equal(t, "a+b", again.Expression)
	assert.Equal(t, 1, s.Len())
}
