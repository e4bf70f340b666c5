// Package transport defines the data model of a single-commodity
// transportation problem: supply nodes with finite capacity, demand nodes
// with fixed requirements, and a per-route unit-cost matrix.
//
// A Problem is constructed once via NewProblem (which validates shape and
// non-negativity) and balanced via Balance (which inserts a synthetic
// zero-cost dummy node when total supply and total demand differ). After
// balancing, the model is immutable; solvers read it but never mutate it.
//
// # Conventions
//
//   - Cost is row-major: Cost(i, j) is the unit cost of shipping from
//     supply i to demand j.
//   - The dummy node carries the reserved ID DummyID; user nodes may not
//     use it. Dummy routes always cost zero and never appear in external
//     solver output.
//   - Balance returns a new Problem and leaves its receiver untouched, so
//     one validated model can feed many concurrent solves.
//
// # Errors
//
//	ErrInvalidProblem - negative capacity/requirement/cost, dimension
//	                    mismatch, NaN/Inf entries, or bad node IDs.
//
// All failures wrap ErrInvalidProblem; match with errors.Is and read the
// message for the offending node or cell.
package transport
