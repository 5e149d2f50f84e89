// File: builder.go
// Role: BuildGraph orchestrator and the topology constructors.
//
// Contract (all constructors):
//   - Validate n early; return ErrTooFewVertices with context on violation.
//   - Add vertices in ascending index order, then edges in stable order.
//   - Honor the core mode flags (directed/weighted/loops/multigraph)
//     without silent degrade: core errors propagate wrapped.

package builder

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/centrality/core"
)

// ErrTooFewVertices indicates a constructor was asked for a topology smaller
// than its minimum vertex count.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// File-local constants for method tagging and parameter minima.
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1

	// unitWeight is assigned to every edge of a weighted graph.
	unitWeight = 1.0
)

// Constructor applies a deterministic graph mutation. Constructors MUST
// validate parameters early, return sentinel errors (no panics), and
// preserve determinism for the same call order.
type Constructor func(g *core.Graph) error

// BuildGraph creates a new core.Graph with the given graph options and
// applies all constructors in order. The first constructor error is wrapped
// with "BuildGraph: %w" and returned immediately; the partially built graph
// is discarded.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(len(cons)).
func BuildGraph(gopts []core.GraphOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	for _, c := range cons {
		if err := c(g); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// vertexID formats the deterministic decimal ID for index i.
func vertexID(i int) string { return strconv.Itoa(i) }

// edgeWeight selects the weight honored by g's weight policy.
func edgeWeight(g *core.Graph) float64 {
	if g.Weighted() {
		return unitWeight
	}

	return 0
}

// addRun inserts vertices 0..n-1 and is shared by every constructor.
func addRun(g *core.Graph, method string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}
	for i := 0; i < n; i++ {
		if err := g.AddVertex(vertexID(i)); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, vertexID(i), err)
		}
	}

	return nil
}

// Path returns a Constructor that builds a simple path P_n:
// edges (i-1)→i for i = 1..n-1. Requires n ≥ 2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph) error {
		if err := addRun(g, methodPath, n, minPathNodes); err != nil {
			return err
		}
		w := edgeWeight(g)
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(vertexID(i-1), vertexID(i), w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPath, i-1, i, err)
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n:
// the path edges plus the closing edge (n-1)→0. Requires n ≥ 3.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph) error {
		if err := addRun(g, methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		w := edgeWeight(g)
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(vertexID(i-1), vertexID(i), w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycle, i-1, i, err)
			}
		}
		if _, err := g.AddEdge(vertexID(n-1), vertexID(0), w); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycle, n-1, 0, err)
		}

		return nil
	}
}

// Star returns a Constructor that builds a star S_n: hub vertex 0 connected
// to spokes 1..n-1 in increasing order. Requires n ≥ 2.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph) error {
		if err := addRun(g, methodStar, n, minStarNodes); err != nil {
			return err
		}
		w := edgeWeight(g)
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(vertexID(0), vertexID(i), w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodStar, 0, i, err)
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete graph K_n:
// one edge per unordered pair {i, j}, i < j, in lexicographic index order.
// Requires n ≥ 1 (K_1 is a single isolated vertex).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph) error {
		if err := addRun(g, methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		w := edgeWeight(g)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := g.AddEdge(vertexID(i), vertexID(j), w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, i, j, err)
				}
			}
		}

		return nil
	}
}
