// Package core_test contains unit tests for the Graph primitives:
// vertex/edge lifecycle, capability-flag enforcement, deterministic
// enumeration orders, and the neighborhood policy.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/centrality/core"
)

func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID) // empty ID rejected

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent re-insert
	require.True(t, g.HasVertex("A"))
	require.False(t, g.HasVertex("B"))
	require.Equal(t, 1, g.VertexCount())
}

func TestVertices_SortedOrder(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, g.AddVertex(id))
	}

	require.Equal(t, []string{"A", "B", "C"}, g.Vertices()) // lex asc contract
}

func TestAddEdge_CreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	require.Equal(t, "e1", eid)

	require.True(t, g.HasVertex("A"))
	require.True(t, g.HasVertex("B"))
	require.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_WeightPolicy(t *testing.T) {
	unweighted := core.NewGraph()
	_, err := unweighted.AddEdge("A", "B", 2.5)
	require.ErrorIs(t, err, core.ErrBadWeight) // non-zero weight needs WithWeighted

	weighted := core.NewGraph(core.WithWeighted())
	_, err = weighted.AddEdge("A", "B", 2.5)
	require.NoError(t, err)

	edges := weighted.Edges()
	require.Len(t, edges, 1)
	require.Equal(t, 2.5, edges[0].Weight)
}

func TestAddEdge_LoopPolicy(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "A", 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	looped := core.NewGraph(core.WithLoops())
	_, err = looped.AddEdge("A", "A", 0)
	require.NoError(t, err)

	// A self-loop must appear exactly once in the neighborhood.
	nbrs, err := looped.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, nbrs, 1)
}

func TestAddEdge_MultiEdgePolicy(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	multi := core.NewGraph(core.WithMultiEdges())
	require.True(t, multi.Multigraph())
	_, err = multi.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = multi.AddEdge("A", "B", 0)
	require.NoError(t, err)
	require.Equal(t, 2, multi.EdgeCount())
}

func TestNeighbors_UndirectedMirroring(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	// Undirected edge is visible from both endpoints and both orientations.
	require.True(t, g.HasEdge("A", "B"))
	require.True(t, g.HasEdge("B", "A"))

	for _, id := range []string{"A", "B"} {
		nbrs, nbrErr := g.Neighbors(id)
		require.NoError(t, nbrErr)
		require.Len(t, nbrs, 1)
	}
}

func TestNeighbors_DirectedOutgoingOnly(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	out, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, out, 1) // A→B is outgoing from A

	in, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Empty(t, in) // ...but not from B

	require.True(t, g.HasEdge("A", "B"))
	require.False(t, g.HasEdge("B", "A"))
}

func TestNeighbors_Validation(t *testing.T) {
	g := core.NewGraph()

	_, err := g.Neighbors("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.Neighbors("ghost")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestNeighborIDs_UniqueSorted(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("M", "C", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("M", "A", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "M", 0)
	require.NoError(t, err)

	ids, err := g.NeighborIDs("M")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, ids)
}

// TestConcurrentReads exercises the read-concurrency guarantee: a fully
// built graph must serve overlapping read queries without data races.
func TestConcurrentReads(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 2)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = g.Vertices()
				_, _ = g.Neighbors("B")
				_ = g.Weighted()
				_ = g.Multigraph()
			}
		}()
	}
	wg.Wait()
}
