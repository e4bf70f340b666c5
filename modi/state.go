package modi

// allocState tracks the remaining quantities and active lines of an
// in-progress greedy build (Least Cost, VAM). Each place() call allocates
// at one cell, marks it basic and retires exactly one exhausted line —
// except the final cell, which retires both. This guarantees exactly
// rows+cols−1 placements on a balanced tableau.
type allocState struct {
	supply, demand       []float64
	rowActive, colActive []bool
	nRows, nCols         int
}

func newAllocState(t *Table) *allocState {
	return &allocState{
		supply:    remainingSupply(t),
		demand:    remainingDemand(t),
		rowActive: newActive(t.rows),
		colActive: newActive(t.cols),
		nRows:     t.rows,
		nCols:     t.cols,
	}
}

// done reports whether every line has been retired.
func (s *allocState) done() bool { return s.nRows == 0 || s.nCols == 0 }

// place allocates min(remaining supply, remaining demand) at (i, j), marks
// the cell basic (a zero quantity is a legitimate degenerate basic cell)
// and retires the exhausted line.
//
// Degeneracy: on simultaneous exhaustion only the row is retired (unless
// it is the last one); the surviving zero-quantity line is served later
// with a zero allocation, which records the zero basic cell the basis
// invariant requires.
func (s *allocState) place(t *Table, i, j int) {
	q := s.supply[i]
	if s.demand[j] < q {
		q = s.demand[j]
	}
	t.alloc[i][j] = q
	t.basic[i][j] = true
	s.supply[i] -= q
	s.demand[j] -= q

	rowDone := s.supply[i] == 0
	colDone := s.demand[j] == 0
	switch {
	case rowDone && colDone && s.nRows == 1 && s.nCols == 1:
		// Final cell: both lines retire and the build completes.
		s.rowActive[i], s.colActive[j] = false, false
		s.nRows, s.nCols = 0, 0
	case rowDone && colDone && s.nRows > 1:
		s.rowActive[i] = false
		s.nRows--
	case rowDone && colDone:
		// Last active row must survive; retire the column instead.
		s.colActive[j] = false
		s.nCols--
	case rowDone:
		s.rowActive[i] = false
		s.nRows--
	default:
		s.colActive[j] = false
		s.nCols--
	}
}

// newActive returns an all-true activity mask of length n.
func newActive(n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = true
	}

	return out
}
