// File: dense.go
// Role: closed-form Katz solver over a dense adjacency matrix.
//
// Procedure: fix the sorted total order over vertices, materialize the
// dense adjacency A (A[i][j] = w(i→j), mirrored for undirected edges),
// and solve (I − αA)x = β once. The matrix solve and norm computation are
// delegated to gonum/mat rather than hand-rolled elimination.

package katz

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/centrality/core"
)

// CentralityDense computes the Katz centrality of every vertex of g by
// solving the linear system (I − αA)x = β and returns a map from vertex ID
// to score.
//
// Preconditions match Centrality: non-nil graph (ErrNilGraph) and no
// parallel-edge capability (ErrMultigraphUnsupported, checked before any
// node data is read). A zero-vertex graph short-circuits to an empty map
// with no matrix construction.
//
// β follows the same resolution rules as Centrality, realized as a
// length-n column aligned with the sorted vertex order. MaxIter, Tol and
// Init are ignored: the dense path has no iteration.
//
// Normalization (if requested) divides by the signed Euclidean norm: the
// sign of the algebraic sum of all entries times ‖x‖₂. A zero signed norm
// is treated as identity scaling, consistent with the iterative path.
//
// A singular or numerically degenerate system — typically α at or beyond
// 1/λ_max — surfaces as an error wrapping ErrSingularSystem; no
// approximate result is returned.
//
// Complexity: O(V²) space for the dense system, O(V³) time for the solve.
func CentralityDense(g *core.Graph, opts ...Option) (map[string]float64, error) {
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

	// Dense adjacency over the fixed vertex order.
	a := adjacencyMatrix(g, order)

	// system = I − αA.
	system := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := -cfg.Alpha * a.At(i, j)
			if i == j {
				v++
			}
			system.Set(i, j, v)
		}
	}

	var x mat.VecDense
	if err = x.SolveVec(system, mat.NewVecDense(n, beta)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}

	scale := 1.0
	if cfg.Normalize {
		scale = signedEuclideanScale(&x)
	}

	// Zip the fixed vertex order back onto the solved column.
	scores := make(map[string]float64, n)
	for i, id := range order {
		scores[id] = x.AtVec(i) * scale
	}

	return scores, nil
}

// adjacencyMatrix materializes the dense adjacency of g using the given
// vertex order: A[i][j] = weight of the edge i→j, 0 when absent, mirrored
// for undirected edges. Unweighted graphs yield weight 1 per edge.
// Complexity: O(V² + E).
func adjacencyMatrix(g *core.Graph, order []string) *mat.Dense {
	index := make(map[string]int, len(order))
	for i, id := range order {
		index[id] = i
	}

	weighted := g.Weighted()
	a := mat.NewDense(len(order), len(order), nil)
	for _, e := range g.Edges() {
		w := e.Weight
		if !weighted {
			w = 1
		}
		i, j := index[e.From], index[e.To]
		a.Set(i, j, w)
		if !e.Directed {
			a.Set(j, i, w)
		}
	}

	return a
}

// signedEuclideanScale returns the factor dividing x down to unit signed
// L2 norm: sign from the algebraic sum of entries, magnitude from ‖x‖₂.
// A zero signed norm (zero vector, or entries cancelling exactly) yields 1.
func signedEuclideanScale(x *mat.VecDense) float64 {
	var sign float64
	switch sum := mat.Sum(x); {
	case sum > 0:
		sign = 1
	case sum < 0:
		sign = -1
	}

	norm := sign * mat.Norm(x, 2)
	if norm == 0 {
		return 1
	}

	return 1 / norm
}
