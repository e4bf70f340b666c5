// Package modi solves balanced transportation problems to proven
// optimality: an initial basic feasible solution is built by one of three
// classical heuristics, then improved by the MODI (u-v, "modified
// distribution") method with stepping-stone pivots until every reduced
// cost is non-negative.
//
// The initial-solution strategies offered are:
//
//   - Northwest Corner
//
//   - Method: row-major pointer walk, always allocating to the first
//     unsatisfied (supply, demand) pair.
//
//   - Time:   O(n + m) allocations for an n×m tableau.
//
//   - Quality: ignores costs entirely; cheapest to compute, worst start.
//
//   - Least Cost
//
//   - Method: repeatedly allocate at the globally cheapest active cell;
//     zero-cost dummy routes are deferred until a line has no real
//     alternative.
//
//   - Time:   O((n + m) · n·m) with a plain scan per step.
//
//   - Quality: good starts on cost-skewed instances.
//
//   - Vogel's Approximation (VAM)
//
//   - Method: per-line penalty = second-smallest − smallest active cost;
//     the line with the largest regret is served first at its cheapest
//     cell.
//
//   - Time:   O((n + m) · n·m).
//
//   - Quality: frequently optimal or near-optimal before any pivot.
//
// # Optimality phase
//
// After the initial basis is repaired to exactly rows+cols−1 independent
// basic cells, each iteration computes dual potentials u_i, v_j over the
// basic-cell spanning tree (u_0 = 0, BFS propagation of u_i + v_j = c_ij),
// evaluates reduced costs c_ij − u_i − v_j on non-basic cells, and either
// declares optimality or pivots along the unique alternating cycle through
// the most negative cell. Total cost never increases across a pivot.
//
// # Determinism
//
// Every tie is broken by the lowest row index, then the lowest column
// index; VAM line ties additionally prefer the smaller line minimum and
// rows over columns. Identical inputs always produce identical
// allocations, pivots and costs.
//
// # API
//
// Options configures a solve:
//
//	type Options struct {
//	    Ctx           context.Context // cancellation, checked once per iteration
//	    Strategy      Strategy        // NorthwestCorner | LeastCost | VAM
//	    Epsilon       float64         // numeric tolerance (default 1e-9)
//	    MaxIterations int             // 0 ⇒ 10×(rows+cols) safety cap
//	    Verbose       bool            // print each pivot
//	}
//
// Use DefaultOptions() to obtain production-safe defaults, then:
//
//	res, err := modi.Solve(problem, opts)
//
// Solve balances the problem itself (dummy insertion), so callers may pass
// unbalanced input directly. BuildInitial exposes the heuristics alone for
// callers that want a fast feasible allocation without the pivot phase.
//
// # Errors
//
//	ErrUnbalanced        - BuildInitial got an unbalanced problem.
//	ErrUnknownStrategy   - strategy value outside the closed enum.
//	ErrDegenerateBasis   - basis repair found no independent insertion point.
//	ErrDisconnectedBasis - potential propagation could not reach every node.
//	ErrNoCycle           - no alternating cycle through the entering cell.
//	ErrNoConvergence     - iteration cap reached; best allocation attached.
//	ErrCancelled         - Options.Ctx cancelled; also matches ctx.Err().
//
// The three basis errors signal internal invariant violations and are
// surfaced, never silently repaired twice. ErrNoConvergence is returned
// together with a non-nil *Result (Optimal=false) holding the best
// allocation found.
//
// See: transport/ for the problem model and balancing rules.
package modi
