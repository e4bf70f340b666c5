// Package transopt is an in-memory optimizer for the classical
// transportation problem — minimum-cost shipment allocation from supply
// nodes (warehouses) to demand nodes (destinations) under capacity and
// requirement constraints.
//
// 🚚 What is transopt?
//
//	A modern, zero-dependency library that brings together:
//		• Problem modeling: supply/demand nodes, cost matrices, validation
//		• Balancing: automatic zero-cost dummy node insertion
//		• Initial solutions: Northwest Corner, Least Cost, Vogel's Approximation
//		• Optimality: MODI (u-v) potentials + stepping-stone pivoting
//		• Sensitivity: dual potentials and per-node slack in every result
//
// ✨ Why choose transopt?
//
//   - Deterministic – fixed tie-break conventions, reproducible allocations
//   - Certified – every optimal result carries non-negative reduced costs
//   - Pure Go – no cgo, no external solvers, no hidden deps
//   - Concurrency-friendly – each solve owns its state; run many in parallel
//
// Under the hood, everything is organized under two subpackages:
//
//	transport/ — problem model: SupplyNode, DemandNode, cost matrix, Balance
//	modi/      — the solver: initial-solution strategies + MODI iteration
//
// Quick ASCII example:
//
//	         D1   D2   D3
//	    S1 [  8    6   10 ]  cap 150
//	    S2 [  9   12   13 ]  cap 200
//	         120  140  110   requirements
//
//	a 2×3 tableau: find quantities x[i][j] minimizing Σ cost·x subject to
//	row sums ≤ capacity and column sums = requirement.
//
// Dive into the package docs for worked examples, tie-break conventions,
// and the degenerate-basis handling rules.
//
//	go get github.com/katalvlaran/transopt
package transopt
