package katz_test

import (
	"testing"

	"github.com/katalvlaran/centrality/builder"
	"github.com/katalvlaran/centrality/core"
	"github.com/katalvlaran/centrality/katz"
)

func benchGraph(b *testing.B, cons builder.Constructor) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(nil, cons)
	if err != nil {
		b.Fatalf("build fixture: %v", err)
	}

	return g
}

// BenchmarkCentrality_Path500 measures the power iteration on a long sparse
// chain, the shape it is meant for.
func BenchmarkCentrality_Path500(b *testing.B) {
	g := benchGraph(b, builder.Path(500))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := katz.Centrality(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCentralityDense_Path500 solves the same chain directly; the
// O(n³) factorization dominates at this size.
func BenchmarkCentralityDense_Path500(b *testing.B) {
	g := benchGraph(b, builder.Path(500))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := katz.CentralityDense(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCentrality_Complete100 stresses the per-pass neighbor scan on a
// dense topology where every vertex touches every other.
func BenchmarkCentrality_Complete100(b *testing.B) {
	g := benchGraph(b, builder.Complete(100))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := katz.Centrality(g, katz.WithAlpha(0.005)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCentralityDense_Complete100 is the direct-solve counterpart.
func BenchmarkCentralityDense_Complete100(b *testing.B) {
	g := benchGraph(b, builder.Complete(100))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := katz.CentralityDense(g, katz.WithAlpha(0.005)); err != nil {
			b.Fatal(err)
		}
	}
}
