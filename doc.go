// Package centrality is an in-memory toolkit for node-importance analysis
// on weighted graphs, built around Katz centrality.
//
// 🚀 What is centrality?
//
//	A compact, thread-safe library that brings together:
//		• Core primitives: create vertices & weighted edges, query safely under locks
//		• Builders: deterministic path / cycle / star / complete fixtures
//		• Katz centrality: power-iteration solver and dense linear-system solver
//
// ✨ Why choose centrality?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, sentinel errors, deterministic orders
//   - Numerically grounded – the dense path delegates to gonum/mat
//   - Drop-in ranking – Katz scores as an alternative to eigenvector centrality
//
// Under the hood, everything is organized under three subpackages:
//
//	core/    — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	builder/ — deterministic topology constructors for fixtures and benchmarks
//	katz/    — Katz centrality: iterative (Centrality) & dense (CentralityDense)
//
// Quick ASCII example:
//
//	    0───1───2───3
//
//	a 4-vertex path; its two inner vertices carry the higher Katz scores.
//
// Dive into each package's doc.go for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/centrality
package centrality
