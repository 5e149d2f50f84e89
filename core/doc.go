// Package core defines the central Graph, Vertex, and Edge types used by
// every centrality algorithm in this module, and provides thread-safe
// primitives for building and querying graphs.
//
// Overview:
//
//   - A Graph is a finite set of vertices (string IDs) connected by weighted
//     edges. Capability flags fixed at construction time decide whether the
//     graph is directed, weighted, permits self-loops, or permits parallel
//     (multi-) edges.
//   - All read operations take an internal read lock, so a fully built graph
//     may be queried from any number of goroutines concurrently.
//   - Enumeration orders are deterministic: Vertices() returns IDs sorted
//     lexicographically ascending, Edges() and Neighbors() sort by Edge.ID.
//     Algorithms rely on these orders as their fixed total order over nodes.
//
// Neighborhood policy:
//
//   - Directed edges appear in Neighbors(v) only when v is the source.
//   - Undirected edges appear in Neighbors(v) for both endpoints; self-loops
//     appear once.
//
// Errors (sentinel):
//
//   - ErrEmptyVertexID       — vertex ID is the empty string.
//   - ErrVertexNotFound      — requested vertex does not exist.
//   - ErrBadWeight           — non-zero weight on an unweighted graph.
//   - ErrLoopNotAllowed      — self-loop when loops are disabled.
//   - ErrMultiEdgeNotAllowed — parallel edge when multi-edges are disabled.
//
// Example:
//
//	g := core.NewGraph(core.WithWeighted())
//	g.AddEdge("A", "B", 2.5)
//	g.AddEdge("B", "C", 1.0)
//	fmt.Println(g.Vertices()) // [A B C]
package core
