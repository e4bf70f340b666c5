package modi

import "math"

// buildVogel fills the tableau by Vogel's Approximation Method. Each round
// computes a penalty for every active row and column — the gap between its
// two smallest active costs, the "regret" for not serving that line at its
// cheapest cell — and serves the line with the largest penalty at its
// minimum-cost cell.
//
// Conventions (fixed for reproducibility):
//   - A line with a single active cell has penalty 0: with no alternative
//     there is no regret.
//   - Line ties: larger penalty wins; then the smaller line minimum; then
//     rows before columns; then the lower index.
//   - Cell ties inside the winning line: the lower index.
//   - Dummy routes participate normally; their zero cost feeds the penalty
//     mechanism, which is what makes VAM defer them naturally.
//
// Contracts:
//   - t is freshly allocated over a balanced problem.
//
// Complexity: O((rows + cols) · rows · cols) time, O(rows + cols) memory.
func buildVogel(t *Table) {
	s := newAllocState(t)
	for !s.done() {
		var (
			found                bool
			bestPenalty, bestMin float64
			bestRow, bestCol     int
		)

		// Rows first, columns second: with strictly-better comparisons the
		// scan order itself breaks the remaining ties (rows before
		// columns, lower index first).
		for i := 0; i < t.rows; i++ {
			if !s.rowActive[i] {
				continue
			}
			pen, minC, minJ, n := t.rowStat(i, s.colActive)
			if n == 0 {
				continue
			}
			if !found || pen > bestPenalty || (pen == bestPenalty && minC < bestMin) {
				found = true
				bestPenalty, bestMin = pen, minC
				bestRow, bestCol = i, minJ
			}
		}
		for j := 0; j < t.cols; j++ {
			if !s.colActive[j] {
				continue
			}
			pen, minC, minI, n := t.colStat(j, s.rowActive)
			if n == 0 {
				continue
			}
			if !found || pen > bestPenalty || (pen == bestPenalty && minC < bestMin) {
				found = true
				bestPenalty, bestMin = pen, minC
				bestRow, bestCol = minI, j
			}
		}

		if !found {
			// No active cell at all; cannot happen while lines remain.
			break
		}
		s.place(t, bestRow, bestCol)
	}
}

// rowStat scans the active cells of row i and returns the VAM penalty, the
// minimum cost, the column of the (first) minimum-cost cell, and the
// active-cell count.
func (t *Table) rowStat(i int, colActive []bool) (penalty, minCost float64, minJ, n int) {
	min1, min2 := math.Inf(1), math.Inf(1)
	minJ = -1
	for j := 0; j < t.cols; j++ {
		if !colActive[j] {
			continue
		}
		n++
		c := t.cost[i][j]
		if c < min1 {
			min2 = min1
			min1 = c
			minJ = j
		} else if c < min2 {
			min2 = c
		}
	}
	if n >= 2 {
		penalty = min2 - min1
	}

	return penalty, min1, minJ, n
}

// colStat is rowStat transposed: it scans the active cells of column j.
func (t *Table) colStat(j int, rowActive []bool) (penalty, minCost float64, minI, n int) {
	min1, min2 := math.Inf(1), math.Inf(1)
	minI = -1
	for i := 0; i < t.rows; i++ {
		if !rowActive[i] {
			continue
		}
		n++
		c := t.cost[i][j]
		if c < min1 {
			min2 = min1
			min1 = c
			minI = i
		} else if c < min2 {
			min2 = c
		}
	}
	if n >= 2 {
		penalty = min2 - min1
	}

	return penalty, min1, minI, n
}
