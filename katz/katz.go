// File: katz.go
// Role: power-iteration Katz solver and the validation/normalization helpers
//       shared with the dense solver.
//
// Update rule, performed synchronously once per pass over the previous
// pass's vector (double-buffered, never updated in place mid-pass):
//
//	next[n] = α · Σ_{m out-neighbor of n} prev[m]·w(n,m) + β[n]
//
// Convergence: Σ_n |next[n] − prev[n]| < VertexCount·Tol.

package katz

import (
	"fmt"
	"math"

	"github.com/katalvlaran/centrality/core"
)

// neighbor is one entry of the sparse adjacency snapshot: the adjacent
// vertex ID and the effective edge weight.
type neighbor struct {
	id     string
	weight float64
}

// Centrality computes the Katz centrality of every vertex of g by power
// iteration and returns a map from vertex ID to score.
//
// Preconditions (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must not permit parallel edges (ErrMultigraphUnsupported) — checked
//     via the capability flag before any node data is read.
//
// A zero-vertex graph short-circuits to an empty map with no iteration.
// Unweighted graphs contribute weight 1 per edge; directed edges propagate
// along their orientation only.
//
// The iteration starts from Init (which must cover every vertex) or from
// all zeros, runs at most MaxIter synchronous passes, and stops once the
// total absolute difference between passes drops below VertexCount·Tol.
// If Normalize is set, the converged vector is divided by its Euclidean
// norm (a zero norm is treated as identity scaling). Exhausting MaxIter
// returns an error wrapping ErrNotConverged; no partial result is returned.
//
// Determinism: vertices are processed in the sorted order core.Vertices
// returns, so fixed inputs produce bit-identical outputs.
//
// Complexity: O(I·(V+E)) time for I iterations, O(V+E) space.
func Centrality(g *core.Graph, opts ...Option) (map[string]float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	order, err := preflight(g)
	if err != nil {
		return nil, err
	}
	n := len(order)
	if n == 0 {
		return map[string]float64{}, nil
	}

	beta, err := cfg.Beta.resolve(order)
	if err != nil {
		return nil, err
	}

	// Starting vector: caller-supplied verbatim, or all zeros.
	prev := make(map[string]float64, n)
	if cfg.Init != nil {
		for _, id := range order {
			v, ok := cfg.Init[id]
			if !ok {
				return nil, errMissingVertex(ErrMissingInitial, id)
			}
			prev[id] = v
		}
	} else {
		for _, id := range order {
			prev[id] = 0
		}
	}

	adj, err := snapshotAdjacency(g, order)
	if err != nil {
		return nil, err
	}

	next := make(map[string]float64, n)
	threshold := float64(n) * cfg.Tol

	var (
		iter int
		sum  float64
		diff float64
	)
	for iter = 0; iter < cfg.MaxIter; iter++ {
		// One synchronous pass: read prev, write next.
		for i, id := range order {
			sum = 0
			for _, nb := range adj[id] {
				sum += prev[nb.id] * nb.weight
			}
			next[id] = cfg.Alpha*sum + beta[i]
		}

		// Convergence check: total absolute difference across all vertices.
		diff = 0
		for _, id := range order {
			diff += math.Abs(next[id] - prev[id])
		}
		if diff < threshold {
			if cfg.Normalize {
				scaleScores(next, euclideanScale(next))
			}

			return next, nil
		}

		// Swap the two buffers; next is overwritten wholesale each pass.
		prev, next = next, prev
	}

	return nil, fmt.Errorf("%w after %d iterations", ErrNotConverged, cfg.MaxIter)
}

// preflight runs the precondition checks shared by both solvers and
// returns the fixed total order over vertices (sorted IDs).
func preflight(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Multigraph() {
		return nil, ErrMultigraphUnsupported
	}

	return g.Vertices(), nil
}

// snapshotAdjacency captures per-vertex (neighbor, weight) lists once, so
// the iteration loop never re-queries the graph. Unweighted graphs yield
// weight 1 per edge.
func snapshotAdjacency(g *core.Graph, order []string) (map[string][]neighbor, error) {
	weighted := g.Weighted()
	adj := make(map[string][]neighbor, len(order))

	for _, id := range order {
		edges, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("katz: neighbors of %q: %w", id, err)
		}
		nbrs := make([]neighbor, 0, len(edges))
		for _, e := range edges {
			m := e.To
			if e.From != id {
				m = e.From
			}
			w := e.Weight
			if !weighted {
				w = 1
			}
			nbrs = append(nbrs, neighbor{id: m, weight: w})
		}
		adj[id] = nbrs
	}

	return adj, nil
}

// euclideanScale returns the factor that divides scores down to unit L2
// norm. A zero norm yields 1: scaling by a zero norm is undefined, so the
// vector is returned unscaled.
func euclideanScale(scores map[string]float64) float64 {
	var ss float64
	for _, v := range scores {
		ss += v * v
	}
	norm := math.Sqrt(ss)
	if norm == 0 {
		return 1
	}

	return 1 / norm
}

// scaleScores multiplies every entry in place.
func scaleScores(scores map[string]float64, s float64) {
	for id, v := range scores {
		scores[id] = v * s
	}
}

// errMissingVertex wraps a coverage sentinel with the offending vertex ID.
func errMissingVertex(sentinel error, id string) error {
	return fmt.Errorf("%w: no entry for vertex %q", sentinel, id)
}

// errLengthMismatch wraps ErrMissingBeta for positional sequences whose
// length disagrees with the vertex count.
func errLengthMismatch(got, want int) error {
	return fmt.Errorf("%w: sequence length %d, vertex count %d", ErrMissingBeta, got, want)
}
