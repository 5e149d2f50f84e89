// Package builder provides deterministic topology constructors for
// assembling graph fixtures: paths, cycles, stars and complete graphs.
//
// Design contract (strict):
//
//   - One orchestrator: BuildGraph(gopts, cons...). Creates the graph and
//     runs the constructors in order.
//   - Constructors validate parameters early and return sentinel errors;
//     they never panic at runtime.
//   - Determinism: same options and constructor order ⇒ identical graphs.
//     Vertex IDs are decimal indices ("0", "1", ...); edges are emitted in
//     stable increasing index order.
//   - Weight policy: weighted graphs receive unit weights (the conventional
//     default for centrality measures); unweighted graphs receive zero.
//
// Example:
//
//	g, err := builder.BuildGraph(nil, builder.Path(4))
//	if err != nil { ... }
//	fmt.Println(g.VertexCount()) // 4
package builder
