package benchmarks

import (
	"context"
	"testing"

	"github.com/randalmurphal/equation/pkg/equation"
	"github.com/randalmurphal/equation/pkg/equation/store"
)

// buildChain creates a simple equation and n composites stacked on it.
func buildChain(b *testing.B, n int, opts ...equation.Option) (*equation.Directory, equation.ID) {
	b.Helper()
	ctx := context.Background()
	dir := equation.NewDirectory(append([]equation.Option{equation.WithLogger(nil)}, opts...)...)

	base, err := dir.Create(ctx, "a*b+c")
	if err != nil {
		b.Fatal(err)
	}
	top := base
	for i := 0; i < n; i++ {
		top, err = dir.Merge(ctx, top, base, "+")
		if err != nil {
			b.Fatal(err)
		}
	}
	return dir, top
}

var chainVars = equation.Bindings{"a": 2, "b": 3, "c": 4}

// BenchmarkSolve_Simple solves a single simple equation.
func BenchmarkSolve_Simple(b *testing.B) {
	dir, id := buildChain(b, 0)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dir.Solve(ctx, id, chainVars)
	}
}

// BenchmarkSolve_Chain_10 solves a composite 10 levels deep.
func BenchmarkSolve_Chain_10(b *testing.B) {
	dir, id := buildChain(b, 10)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dir.Solve(ctx, id, chainVars)
	}
}

// BenchmarkSolve_Chain_100 solves a composite 100 levels deep.
func BenchmarkSolve_Chain_100(b *testing.B) {
	dir, id := buildChain(b, 100)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dir.Solve(ctx, id, chainVars)
	}
}

// BenchmarkSolve_Parallel solves concurrently against one directory.
func BenchmarkSolve_Parallel(b *testing.B) {
	dir, id := buildChain(b, 10)
	ctx := context.Background()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = dir.Solve(ctx, id, chainVars)
		}
	})
}

// BenchmarkEdit edits a simple equation in place.
func BenchmarkEdit(b *testing.B) {
	dir, _ := buildChain(b, 0)
	ctx := context.Background()
	texts := []string{"a*b+c", "a-b*c"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dir.Edit(ctx, 1, texts[i%2])
	}
}

// BenchmarkCreate_MemoryStore creates equations with write-through.
func BenchmarkCreate_MemoryStore(b *testing.B) {
	dir := equation.NewDirectory(equation.WithLogger(nil), equation.WithStore(store.NewMemoryStore()))
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dir.Create(ctx, "a / b + (a / b) * c")
	}
}

// BenchmarkCreate_SQLiteStore creates equations with SQLite write-through.
func BenchmarkCreate_SQLiteStore(b *testing.B) {
	st, err := store.NewSQLiteStore(b.TempDir() + "/bench.db")
	if err != nil {
		b.Fatal(err)
	}
	defer st.Close()

	dir := equation.NewDirectory(equation.WithLogger(nil), equation.WithStore(st))
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dir.Create(ctx, "a / b + (a / b) * c")
	}
}
