package modi

// computePotentials solves the dual system u_i + v_j = c_ij over the basic
// cells. One degree of freedom is fixed by the u_0 = 0 convention; the
// rest propagates by breadth-first traversal of the basic-cell spanning
// tree, so every potential resolves in a single pass.
//
// Steps:
//  1. Build per-row and per-column adjacency lists of basic cells (O(n·m)).
//  2. BFS from row 0: a known u_i resolves v_j = c_ij − u_i for every
//     basic (i, j), and a known v_j resolves u_i symmetrically.
//  3. Any unresolved potential afterwards means the basic cells do not
//     span the tableau: ErrDisconnectedBasis (a basis-repair defect).
//
// Complexity: O(rows·cols) time and memory.
func computePotentials(t *Table) (u, v []float64, err error) {
	// 1) Adjacency of the bipartite basic-cell graph.
	rowAdj := make([][]int, t.rows) // rowAdj[i] = basic columns of row i
	colAdj := make([][]int, t.cols) // colAdj[j] = basic rows of column j
	for i := 0; i < t.rows; i++ {
		for j := 0; j < t.cols; j++ {
			if t.basic[i][j] {
				rowAdj[i] = append(rowAdj[i], j)
				colAdj[j] = append(colAdj[j], i)
			}
		}
	}

	u = make([]float64, t.rows)
	v = make([]float64, t.cols)
	uKnown := make([]bool, t.rows)
	vKnown := make([]bool, t.cols)

	// 2) BFS over tree nodes; rows are encoded as k < t.rows, columns as
	// t.rows + j.
	queue := make([]int, 0, t.rows+t.cols)
	uKnown[0] = true
	queue = append(queue, 0)
	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]

		if k < t.rows {
			i := k
			for _, j := range rowAdj[i] {
				if vKnown[j] {
					continue
				}
				v[j] = t.cost[i][j] - u[i]
				vKnown[j] = true
				queue = append(queue, t.rows+j)
			}
			continue
		}

		j := k - t.rows
		for _, i := range colAdj[j] {
			if uKnown[i] {
				continue
			}
			u[i] = t.cost[i][j] - v[j]
			uKnown[i] = true
			queue = append(queue, i)
		}
	}

	// 3) Connectivity check: every row and column must be reached.
	for i := 0; i < t.rows; i++ {
		if !uKnown[i] {
			return nil, nil, ErrDisconnectedBasis
		}
	}
	for j := 0; j < t.cols; j++ {
		if !vKnown[j] {
			return nil, nil, ErrDisconnectedBasis
		}
	}

	return u, v, nil
}
