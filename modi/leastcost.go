package modi

// buildLeastCost fills the tableau by the Least Cost rule: repeatedly pick
// the cheapest cell whose row and column are both still active, allocate
// min(remaining supply, remaining demand) there, and retire the exhausted
// line.
//
// Selection order:
//  1. Real routes strictly before dummy routes. A zero-cost dummy route
//     would otherwise always win the first pick and soak up capacity that
//     a cheap real route should carry; dummy cells are chosen only when a
//     line has no active real cell left.
//  2. Among equal-cost candidates of the same class: lowest row index,
//     then lowest column index.
//
// Contracts:
//   - t is freshly allocated over a balanced problem.
//
// Complexity: O((rows + cols) · rows · cols) time, O(rows + cols) memory.
func buildLeastCost(t *Table) {
	s := newAllocState(t)
	for !s.done() {
		i, j := t.cheapestActive(s.rowActive, s.colActive)
		if i < 0 {
			// No active cell at all; cannot happen while lines remain.
			break
		}
		s.place(t, i, j)
	}
}

// cheapestActive returns the coordinates of the cheapest cell with both
// lines active, real routes before dummy routes, ties by lowest row then
// column. Returns (-1, -1) when no cell qualifies.
func (t *Table) cheapestActive(rowActive, colActive []bool) (int, int) {
	bi, bj := -1, -1
	var bestCost float64
	bestDummy := false

	for i := 0; i < t.rows; i++ {
		if !rowActive[i] {
			continue
		}
		for j := 0; j < t.cols; j++ {
			if !colActive[j] {
				continue
			}
			dummy := t.prob.IsDummyRow(i) || t.prob.IsDummyCol(j)
			c := t.cost[i][j]
			switch {
			case bi < 0:
				// First candidate.
			case !dummy && bestDummy:
				// Real routes always beat dummy routes.
			case dummy == bestDummy && c < bestCost:
				// Strictly cheaper within the same class; row-major scan
				// order keeps ties on the earliest cell.
			default:
				continue
			}
			bi, bj, bestCost, bestDummy = i, j, c, dummy
		}
	}

	return bi, bj
}
