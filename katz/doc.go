// Package katz provides two interchangeable solvers for Katz centrality:
// a node-importance score that counts direct neighbors and attenuated
// longer-range connections, with an additive base bias β.
//
// Overview:
//
//   - Katz centrality solves x = αAx + β, where A is the (weighted)
//     adjacency matrix. It overcomes a limitation of eigenvector
//     centrality: vertices with no inbound influence still receive the
//     base score β instead of collapsing to zero.
//   - Centrality approximates the fixed point by power iteration over a
//     sparse adjacency snapshot, O(I·(V+E)) for I iterations, suited to
//     large sparse graphs.
//   - CentralityDense solves the closed form (I − αA)x = β once via
//     gonum/mat, O(V³) and exact up to floating point, suited to small
//     and medium dense graphs.
//
// Both solvers are pure, synchronous and side-effect-free on their inputs;
// they only read the graph, so concurrent calls on distinct graphs or
// distinct parameter sets need no synchronization.
//
// Choosing α:
//
//   - Convergence requires α < 1/λ_max (spectral radius of A). This is NOT
//     validated: the conventional default 0.1 is safe for most sparse
//     topologies, but the admissible range is the caller's responsibility.
//     Beyond it, Centrality diverges until the iteration budget trips
//     ErrNotConverged and CentralityDense degrades toward ErrSingularSystem.
//
// When to use:
//
//   - Influence or prestige ranking in social and citation networks.
//   - A drop-in alternative to eigenvector centrality when isolated or
//     low-degree vertices must keep a nonzero baseline score.
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, builder.Path(4))
//	scores, err := katz.Centrality(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%.3f\n", scores["1"])
//
// See types.go for the full option set and the sentinel error contract.
package katz
