package equation

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/equation/pkg/equation/store"
)

// buildScenario creates ratio, power, and their sum in d.
func buildScenario(t *testing.T, d *Directory) (ratio, power, total ID) {
	t.Helper()
	ctx := context.Background()

	ratio, err := d.Create(ctx, "a / b + (a / b) * c")
	require.NoError(t, err)
	power, err = d.Create(ctx, "x^y+z-c")
	require.NoError(t, err)
	total, err = d.Merge(ctx, ratio, power, "+")
	require.NoError(t, err)
	return ratio, power, total
}

func TestRestore_RoundTrip(t *testing.T) {
	stores := map[string]func(t *testing.T) store.Store{
		"memory": func(t *testing.T) store.Store {
			return store.NewMemoryStore()
		},
		"sqlite": func(t *testing.T) store.Store {
			st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "equations.db"))
			require.NoError(t, err)
			return st
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			st := newStore(t)
			defer st.Close()

			orig := newTestDirectory(WithStore(st))
			_, power, total := buildScenario(t, orig)
			vars := Bindings{"a": 10, "b": 5, "c": 4, "x": 10, "y": 2, "z": 3}

			want, err := orig.Solve(ctx, total, vars)
			require.NoError(t, err)

			restored, err := Restore(ctx, st, WithLogger(nil))
			require.NoError(t, err)

			assert.Equal(t, orig.IDs(), restored.IDs())
			got, err := restored.Solve(ctx, total, vars)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.InDelta(t, 109, got, 1e-9)

			// Restored directory keeps writing through and continues the counter.
			require.NoError(t, restored.Edit(ctx, power, "x^y+z+c"))
			next, err := restored.Create(ctx, "q")
			require.NoError(t, err)
			assert.Equal(t, total+1, next)

			again, err := Restore(ctx, st, WithLogger(nil))
			require.NoError(t, err)
			got, err = again.Solve(ctx, total, vars)
			require.NoError(t, err)
			assert.InDelta(t, 117, got, 1e-9)
		})
	}
}

func TestRestore_DanglingComposite(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	d := newTestDirectory(WithStore(st))
	_, power, total := buildScenario(t, d)
	require.NoError(t, d.Delete(ctx, power))

	restored, err := Restore(ctx, st, WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, 2, restored.Len())

	_, err = restored.Solve(ctx, total, Bindings{"a": 1, "b": 1, "c": 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRestore_InvalidRecords(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	require.NoError(t, st.Save(store.NewSimple(1, "a+b")))
	require.NoError(t, st.Save(store.NewSimple(2, "a+)")))
	require.NoError(t, st.Save(store.NewComposite(3, 1, 4, "+")))
	require.NoError(t, st.Save(store.NewComposite(4, 1, 1, "%")))
	require.NoError(t, st.Save(&store.Record{Version: store.Version, ID: 5, Kind: "matrix"}))

	d, err := Restore(ctx, st, WithLogger(nil))
	assert.Nil(t, d)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrInvalidExpression)
	assert.ErrorIs(t, err, ErrCycle)
	assert.ErrorIs(t, err, ErrInvalidOperator)
	assert.ErrorContains(t, err, "record 2")
	assert.ErrorContains(t, err, "record 3")
	assert.ErrorContains(t, err, "record 4")
	assert.ErrorContains(t, err, `unknown record kind "matrix"`)
}

func TestRestore_EmptyStore(t *testing.T) {
	d, err := Restore(context.Background(), store.NewMemoryStore(), WithLogger(nil))
	require.NoError(t, err)
	assert.Zero(t, d.Len())

	id, err := d.Create(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, ID(1), id)
}

func TestRestore_NilStore(t *testing.T) {
	_, err := Restore(context.Background(), nil)
	assert.Error(t, err)
}

func TestRestore_ClosedStore(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Close())

	_, err := Restore(context.Background(), st)
	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "list", storeErr.Op)
	assert.ErrorIs(t, err, store.ErrStoreClosed)
}
