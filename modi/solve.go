// Package modi - entry points and the MODI iteration controller.
//
// This file provides:
//
//   - BuildInitial: run one initial-solution heuristic on a balanced
//     problem and return the raw tableau (no optimality phase).
//   - Solve: the full pipeline - balance, build, then repair → potentials
//     → evaluate → pivot until optimal, cancelled or capped.
//
// Design principles:
//   - Deterministic: fixed tie-break conventions, no randomness.
//   - Strict sentinels: only errors from errors.go / transport, matched
//     via errors.Is.
//   - Ownership: each solve builds a private tableau; the caller's
//     Problem is never mutated.
package modi

import (
	"fmt"

	"github.com/katalvlaran/transopt/transport"
)

// BuildInitial constructs a basic feasible allocation for the balanced
// problem p using the given strategy. The returned tableau may be
// degenerate (zero-quantity basic cells); its basic-cell count is always
// exactly rows+cols−1.
//
// Contracts:
//   - p must be non-nil and balanced (ErrUnbalanced otherwise; Solve
//     balances automatically, direct callers use transport.Balance).
//
// Errors: transport.ErrInvalidProblem, ErrUnbalanced, ErrUnknownStrategy.
//
// Complexity: O(rows + cols) for NorthwestCorner,
// O((rows + cols)·rows·cols) for LeastCost and VAM.
func BuildInitial(p *transport.Problem, strategy Strategy) (*Table, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil problem", transport.ErrInvalidProblem)
	}
	if !p.Balanced() {
		return nil, fmt.Errorf("%w: supply %g vs demand %g",
			ErrUnbalanced, p.TotalSupply(), p.TotalDemand())
	}

	t := newTable(p)
	switch strategy {
	case NorthwestCorner:
		buildNorthwest(t)
	case LeastCost:
		buildLeastCost(t)
	case VAM:
		buildVogel(t)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}

	return t, nil
}

// Solve runs the complete optimization: the problem is balanced (dummy
// node insertion), an initial allocation is built per opts.Strategy, and
// the MODI loop pivots until every reduced cost is non-negative.
//
// On success the Result carries the optimality certificate (Optimal=true)
// plus shipments, slack, utilization and dual potentials for the caller's
// real nodes. On ErrNoConvergence the best allocation found is still
// returned (Optimal=false) alongside the error. Every other failure
// returns a nil Result.
//
// Cancellation is cooperative: opts.Ctx is consulted once per outer
// iteration, never mid-pivot, and surfaces as ErrCancelled (which also
// matches the underlying context error via errors.Is).
//
// Complexity: each iteration is O(rows·cols); the outer loop is bounded
// by opts.MaxIterations (default 10×(rows+cols)).
func Solve(p *transport.Problem, opts Options) (*Result, error) {
	opts.normalize()
	if p == nil {
		return nil, fmt.Errorf("%w: nil problem", transport.ErrInvalidProblem)
	}

	// 1) Normalize: dummy insertion happens on a copy, the caller's
	// problem stays untouched.
	bal := p.Balance()

	// 2) Initial basic feasible solution.
	t, err := BuildInitial(bal, opts.Strategy)
	if err != nil {
		return nil, err
	}

	// 3) Iterate: repair → potentials → evaluate → pivot.
	var (
		lastU, lastV []float64
		pivots       int
		limit        = opts.iterationCap(t.rows, t.cols)
	)
	for iter := 1; iter <= limit; iter++ {
		// Cooperative cancellation, checked at iteration boundaries only.
		if ctxErr := opts.Ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrCancelled, ctxErr)
		}

		// 3a) Restore the basic-count invariant before the dual solve.
		if err = repairBasis(t); err != nil {
			return nil, err
		}

		// 3b) Dual potentials over the basic spanning tree.
		lastU, lastV, err = computePotentials(t)
		if err != nil {
			return nil, err
		}

		// 3c) Optimality test / entering-variable selection.
		ei, ej, rc, improving := selectEntering(t, lastU, lastV, opts.Epsilon)
		if !improving {
			return buildResult(t, lastU, lastV, opts.Epsilon, iter, pivots, true), nil
		}

		// 3d) Stepping-stone pivot along the unique alternating cycle.
		cycle, loopErr := findLoop(t, ei, ej)
		if loopErr != nil {
			return nil, loopErr
		}
		theta, leaving := pivot(t, cycle)
		pivots++
		if opts.Verbose {
			fmt.Printf("modi: pivot %d: enter (%d,%d) rc=%g θ=%g leave (%d,%d)\n",
				pivots, ei, ej, rc, theta, leaving.i, leaving.j)
		}
	}

	// 4) Cap exhausted: hand back the best allocation found so far.
	res := buildResult(t, lastU, lastV, opts.Epsilon, limit, pivots, false)

	return res, fmt.Errorf("%w after %d iterations", ErrNoConvergence, limit)
}

// buildResult converts the final tableau and duals into the external
// Result, excluding the dummy node everywhere.
func buildResult(t *Table, u, v []float64, eps float64, iterations, pivots int, optimal bool) *Result {
	p := t.prob
	res := &Result{
		Shipments:         t.Allocations(eps),
		TotalCost:         t.TotalCost(),
		Optimal:           optimal,
		Iterations:        iterations,
		Pivots:            pivots,
		SupplySlack:       make(map[string]float64),
		DemandSlack:       make(map[string]float64),
		SupplyUtilization: make(map[string]float64),
		PotentialU:        make(map[string]float64),
		PotentialV:        make(map[string]float64),
	}

	for i := 0; i < t.rows; i++ {
		if p.IsDummyRow(i) {
			continue
		}
		var shipped float64
		for j := 0; j < t.cols; j++ {
			if !p.IsDummyCol(j) {
				shipped += t.alloc[i][j]
			}
		}
		s := p.Supply(i)
		res.SupplySlack[s.ID] = s.Capacity - shipped
		if s.Capacity > 0 {
			res.SupplyUtilization[s.ID] = shipped / s.Capacity
		} else {
			res.SupplyUtilization[s.ID] = 0
		}
		if u != nil {
			res.PotentialU[s.ID] = u[i]
		}
	}

	for j := 0; j < t.cols; j++ {
		if p.IsDummyCol(j) {
			continue
		}
		var received float64
		for i := 0; i < t.rows; i++ {
			if !p.IsDummyRow(i) {
				received += t.alloc[i][j]
			}
		}
		d := p.Demand(j)
		res.DemandSlack[d.ID] = d.Requirement - received
		if v != nil {
			res.PotentialV[d.ID] = v[j]
		}
	}

	return res
}
