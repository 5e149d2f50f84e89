package katz_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/centrality/builder"
	"github.com/katalvlaran/centrality/core"
	"github.com/katalvlaran/centrality/katz"
)

// ExampleCentrality scores the undirected path 0–1–2–3 with the default
// attenuation α = 0.1 and uniform bias β = 1. The two inner vertices sit on
// more walks than the endpoints and come out ahead.
func ExampleCentrality() {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	if err != nil {
		log.Fatal(err)
	}

	scores, err := katz.Centrality(g)
	if err != nil {
		log.Fatal(err)
	}

	for _, id := range g.Vertices() {
		fmt.Printf("%s: %.3f\n", id, scores[id])
	}
	// Output:
	// 0: 0.476
	// 1: 0.523
	// 2: 0.523
	// 3: 0.476
}

// ExampleCentralityDense solves the same system directly. On a directed
// chain influence flows along edge direction, so the source of the chain
// accumulates the most.
func ExampleCentralityDense() {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)}, builder.Path(3))
	if err != nil {
		log.Fatal(err)
	}

	scores, err := katz.CentralityDense(g, katz.WithNormalize(false))
	if err != nil {
		log.Fatal(err)
	}

	for _, id := range g.Vertices() {
		fmt.Printf("%s: %.2f\n", id, scores[id])
	}
	// Output:
	// 0: 1.11
	// 1: 1.10
	// 2: 1.00
}

// ExampleCentrality_beta biases the walk sources: only the hub of a star
// emits influence, so spokes are ranked purely by their reach to it.
func ExampleCentrality_beta() {
	g, err := builder.BuildGraph(nil, builder.Star(4))
	if err != nil {
		log.Fatal(err)
	}

	bias := map[string]float64{"0": 1, "1": 0, "2": 0, "3": 0}
	scores, err := katz.Centrality(g,
		katz.WithBeta(katz.BetaByID(bias)),
		katz.WithNormalize(false),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("hub:   %.4f\n", scores["0"])
	fmt.Printf("spoke: %.4f\n", scores["1"])
	// Output:
	// hub:   1.0309
	// spoke: 0.1031
}
