package modi

// cellRef addresses one tableau cell.
type cellRef struct{ i, j int }

// findLoop returns the unique alternating cycle through the entering cell
// (si, sj): a sequence of cells starting at the entering cell, moving
// alternately along rows and columns through basic cells, and closing back
// on the entering cell's column. Since the basic cells form a spanning
// tree, adding the entering cell creates exactly one such cycle; the DFS
// below cannot wander because an alternating walk in a tree that never
// reverses an edge is simple.
//
// The returned slice has even length ≥ 4; even positions (starting with
// the entering cell) are the '+' cells of the pivot, odd positions the
// '−' cells.
//
// Returns ErrNoCycle when no cycle exists, i.e. the basic set was not a
// spanning tree (an internal invariant violation).
//
// Complexity: O(rows·cols) — each tree edge is traversed at most once per
// direction.
func findLoop(t *Table, si, sj int) ([]cellRef, error) {
	path := []cellRef{{si, sj}}
	cycle, ok := t.extendLoop(path, true, si, sj)
	if !ok {
		return nil, ErrNoCycle
	}

	return cycle, nil
}

// extendLoop grows the alternating path by one basic cell. rowMove selects
// the axis: true scans the current row for a basic cell in another column,
// false scans the current column for a basic cell in another row. The
// cycle closes when a row move reaches the entering cell's column sj with
// at least three cells already on the path.
func (t *Table) extendLoop(path []cellRef, rowMove bool, si, sj int) ([]cellRef, bool) {
	cur := path[len(path)-1]

	if rowMove {
		for j := 0; j < t.cols; j++ {
			if j == cur.j || !t.basic[cur.i][j] {
				continue
			}
			if j == sj {
				if len(path) >= 3 {
					return append(path, cellRef{cur.i, j}), true
				}
				// Entering column reached too early; in a tree no longer
				// path can return here, so this branch is dead.
				continue
			}
			if cycle, ok := t.extendLoop(append(path, cellRef{cur.i, j}), false, si, sj); ok {
				return cycle, true
			}
		}

		return nil, false
	}

	for i := 0; i < t.rows; i++ {
		if i == cur.i || !t.basic[i][cur.j] {
			continue
		}
		if cycle, ok := t.extendLoop(append(path, cellRef{i, cur.j}), true, si, sj); ok {
			return cycle, true
		}
	}

	return nil, false
}

// pivot reallocates along the cycle: θ = the minimum quantity on the '−'
// cells is added to every '+' cell and subtracted from every '−' cell.
// The entering cell (cycle[0]) joins the basis; among the '−' cells that
// reach zero exactly one leaves — the lexicographically smallest (lowest
// row, then column) — so the basic-cell count is preserved even when
// several cells tie or θ is zero (degenerate pivot).
//
// Returns θ and the leaving cell for the caller's logging.
func pivot(t *Table, cycle []cellRef) (theta float64, leaving cellRef) {
	// θ = min over the odd ('−') positions.
	theta = t.alloc[cycle[1].i][cycle[1].j]
	for k := 3; k < len(cycle); k += 2 {
		if q := t.alloc[cycle[k].i][cycle[k].j]; q < theta {
			theta = q
		}
	}

	// The leaving cell: lexicographically smallest '−' cell at θ.
	leaving = cellRef{-1, -1}
	for k := 1; k < len(cycle); k += 2 {
		c := cycle[k]
		if t.alloc[c.i][c.j] != theta {
			continue
		}
		if leaving.i < 0 || c.i < leaving.i || (c.i == leaving.i && c.j < leaving.j) {
			leaving = c
		}
	}

	// Apply the alternating reallocation.
	for k, c := range cycle {
		if k%2 == 0 {
			t.alloc[c.i][c.j] += theta
			continue
		}
		t.alloc[c.i][c.j] -= theta
		if t.alloc[c.i][c.j] < 0 {
			// Float residue from the subtraction; quantities stay ≥ 0.
			t.alloc[c.i][c.j] = 0
		}
	}

	t.basic[cycle[0].i][cycle[0].j] = true
	t.basic[leaving.i][leaving.j] = false
	t.alloc[leaving.i][leaving.j] = 0

	return theta, leaving
}
