package modi

// selectEntering scans every non-basic cell for its reduced cost
// c_ij − u_i − v_j and returns the most negative one as the entering
// variable. ok is false when all reduced costs are ≥ −eps, i.e. the
// current allocation is optimal within tolerance.
//
// Ties on the most negative value keep the first cell in row-major order
// (lowest row, then lowest column).
//
// Complexity: O(rows·cols).
func selectEntering(t *Table, u, v []float64, eps float64) (ei, ej int, reduced float64, ok bool) {
	ei, ej = -1, -1
	for i := 0; i < t.rows; i++ {
		for j := 0; j < t.cols; j++ {
			if t.basic[i][j] {
				continue
			}
			rc := t.cost[i][j] - u[i] - v[j]
			if rc < -eps && (ei < 0 || rc < reduced) {
				ei, ej, reduced = i, j, rc
			}
		}
	}

	return ei, ej, reduced, ei >= 0
}
