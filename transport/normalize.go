package transport

import (
	"fmt"
	"math"
)

// NewProblem validates the raw inputs and returns a transportation model.
//
// Validation rules (all failures wrap ErrInvalidProblem):
//  1. At least one supply node and one demand node.
//  2. cost has exactly len(supplies) rows of len(demands) columns each.
//  3. Every capacity, requirement and cost is finite and ≥ 0.
//  4. Node IDs are non-empty, unique within their side, and never DummyID.
//
// The returned Problem may still be unbalanced (ΣS ≠ ΣD); call Balance
// before handing it to a solver.
//
// Complexity: O(n·m) time over the cost matrix, O(n+m) extra memory for
// the ID uniqueness check.
func NewProblem(supplies []SupplyNode, demands []DemandNode, cost [][]float64) (*Problem, error) {
	// 1) Non-empty node sets.
	if len(supplies) == 0 {
		return nil, fmt.Errorf("%w: no supply nodes", ErrInvalidProblem)
	}
	if len(demands) == 0 {
		return nil, fmt.Errorf("%w: no demand nodes", ErrInvalidProblem)
	}

	// 2) Matrix shape must match the node counts exactly.
	if len(cost) != len(supplies) {
		return nil, fmt.Errorf("%w: cost matrix has %d rows, want %d",
			ErrInvalidProblem, len(cost), len(supplies))
	}
	for i, row := range cost {
		if len(row) != len(demands) {
			return nil, fmt.Errorf("%w: cost row %d has %d columns, want %d",
				ErrInvalidProblem, i, len(row), len(demands))
		}
	}

	// 3a) Supply capacities: finite, non-negative, valid IDs.
	seen := make(map[string]struct{}, len(supplies)+len(demands))
	for i, s := range supplies {
		if err := checkID(s.ID, seen); err != nil {
			return nil, fmt.Errorf("%w on supply %d", err, i)
		}
		if !finiteNonNegative(s.Capacity) {
			return nil, fmt.Errorf("%w: bad capacity on supply %q: %g",
				ErrInvalidProblem, s.ID, s.Capacity)
		}
	}

	// 3b) Demand requirements, with an independent ID namespace.
	seen = make(map[string]struct{}, len(demands))
	for j, d := range demands {
		if err := checkID(d.ID, seen); err != nil {
			return nil, fmt.Errorf("%w on demand %d", err, j)
		}
		if !finiteNonNegative(d.Requirement) {
			return nil, fmt.Errorf("%w: bad requirement on demand %q: %g",
				ErrInvalidProblem, d.ID, d.Requirement)
		}
	}

	// 3c) Unit costs.
	for i, row := range cost {
		for j, c := range row {
			if !finiteNonNegative(c) {
				return nil, fmt.Errorf("%w: bad cost at (%q,%q): %g",
					ErrInvalidProblem, supplies[i].ID, demands[j].ID, c)
			}
		}
	}

	// 4) Defensive copies: the caller keeps ownership of its slices.
	p := &Problem{
		supplies: make([]SupplyNode, len(supplies)),
		demands:  make([]DemandNode, len(demands)),
		cost:     make([][]float64, len(cost)),
	}
	copy(p.supplies, supplies)
	copy(p.demands, demands)
	for i, row := range cost {
		p.cost[i] = make([]float64, len(row))
		copy(p.cost[i], row)
	}

	return p, nil
}

// Balance returns a balanced copy of p: if total supply exceeds total
// demand, a dummy demand column absorbing the excess is appended (and vice
// versa for excess demand). Dummy routes cost zero, so the dummy never
// contributes to a solution's total cost. Already-balanced problems are
// returned as a plain copy, making Balance idempotent.
//
// Complexity: O(n·m) for the matrix copy.
func (p *Problem) Balance() *Problem {
	out := &Problem{
		supplies:    p.Supplies(),
		demands:     p.Demands(),
		cost:        p.CostMatrix(),
		dummySupply: p.dummySupply,
		dummyDemand: p.dummyDemand,
	}

	excess := p.TotalSupply() - p.TotalDemand()
	switch {
	case excess > 0:
		// ΣS > ΣD: one dummy destination takes the surplus.
		out.demands = append(out.demands, DemandNode{ID: DummyID, Requirement: excess})
		for i := range out.cost {
			out.cost[i] = append(out.cost[i], 0)
		}
		out.dummyDemand = true

	case excess < 0:
		// ΣD > ΣS: one dummy warehouse covers the shortfall.
		out.supplies = append(out.supplies, SupplyNode{ID: DummyID, Capacity: -excess})
		out.cost = append(out.cost, make([]float64, len(out.demands)))
		out.dummySupply = true
	}

	return out
}

// checkID validates one node ID against the shared rules and records it.
func checkID(id string, seen map[string]struct{}) error {
	if id == "" {
		return fmt.Errorf("%w: empty node ID", ErrInvalidProblem)
	}
	if id == DummyID {
		return fmt.Errorf("%w: reserved node ID %q", ErrInvalidProblem, id)
	}
	if _, dup := seen[id]; dup {
		return fmt.Errorf("%w: duplicate node ID %q", ErrInvalidProblem, id)
	}
	seen[id] = struct{}{}

	return nil
}

// finiteNonNegative reports whether x is a usable model quantity.
func finiteNonNegative(x float64) bool {
	return x >= 0 && !math.IsInf(x, 1) && !math.IsNaN(x)
}
