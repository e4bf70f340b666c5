package modi

// buildNorthwest fills the tableau by the Northwest Corner rule: starting
// at (0,0), allocate min(remaining supply, remaining demand), advance the
// row pointer when the supply is exhausted and the column pointer when the
// demand is, and stop at the southeast corner.
//
// Degeneracy: when a step exhausts the supply and the demand at once, only
// the row pointer advances, so the next step allocates a zero quantity in
// the surviving column and marks it basic. Every step marks exactly one
// cell, and the walk visits (rows−1)+(cols−1)+1 cells, so the basic count
// is always exactly rows+cols−1.
//
// Contracts:
//   - t is freshly allocated over a balanced problem.
//
// Complexity: O(rows + cols) steps, O(rows + cols) extra memory.
func buildNorthwest(t *Table) {
	// Remaining per-line quantities, mutated as the walk advances.
	supply := remainingSupply(t)
	demand := remainingDemand(t)

	i, j := 0, 0
	for i < t.rows && j < t.cols {
		q := supply[i]
		if demand[j] < q {
			q = demand[j]
		}

		// Mark the cell basic even when q == 0: zero-quantity basic cells
		// are exactly how the walk records degeneracy.
		t.alloc[i][j] = q
		t.basic[i][j] = true
		supply[i] -= q
		demand[j] -= q

		// Southeast corner: both lines exhaust together on balanced input.
		if i == t.rows-1 && j == t.cols-1 {
			break
		}

		// Advance the exhausted line; prefer the row so a simultaneous
		// exhaustion leaves the column to receive its zero basic cell.
		if supply[i] == 0 && i < t.rows-1 {
			i++
		} else {
			j++
		}
	}
}

// remainingSupply copies the capacities of t's problem into a work slice.
func remainingSupply(t *Table) []float64 {
	out := make([]float64, t.rows)
	for i := 0; i < t.rows; i++ {
		out[i] = t.prob.Supply(i).Capacity
	}

	return out
}

// remainingDemand copies the requirements of t's problem into a work slice.
func remainingDemand(t *Table) []float64 {
	out := make([]float64, t.cols)
	for j := 0; j < t.cols; j++ {
		out[j] = t.prob.Demand(j).Requirement
	}

	return out
}
