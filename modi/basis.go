package modi

import "sort"

// repairBasis restores the basic-cell count invariant: a non-degenerate
// tableau carries exactly rows+cols−1 basic cells forming a spanning tree
// over the bipartite row/column node set. While the count falls short, the
// cheapest non-basic cell whose insertion keeps the basic set acyclic is
// added with a zero quantity.
//
// The acyclicity test is a disjoint-set union over rows and columns
// (node k = row k for k < rows, column k−rows otherwise) with path
// compression and union by rank: a candidate cell (i, j) is independent
// exactly when find(i) != find(rows+j).
//
// Candidate order: ascending cost, ties by lowest row then column
// (sort.SliceStable over-preserves the row-major generation order).
//
// Returns ErrDegenerateBasis when cells run out before the count is met;
// impossible for a connected balanced tableau and therefore an internal
// invariant violation.
//
// Complexity: O(rows·cols·log(rows·cols)) for the candidate sort,
// α(rows+cols) per union.
func repairBasis(t *Table) error {
	need := t.rows + t.cols - 1
	count := t.BasicCount()
	if count >= need {
		return nil
	}

	// Disjoint-set state over rows+cols bipartite nodes.
	parent := make([]int, t.rows+t.cols)
	rank := make([]int, t.rows+t.cols)
	for k := range parent {
		parent[k] = k
	}

	// Iterative find with path compression.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank; reports whether the two nodes were separate.
	union := func(u, v int) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}

		return true
	}

	// Seed the DSU with the existing basic cells and gather candidates.
	candidates := make([][2]int, 0, t.rows*t.cols-count)
	for i := 0; i < t.rows; i++ {
		for j := 0; j < t.cols; j++ {
			if t.basic[i][j] {
				union(i, t.rows+j)
				continue
			}
			candidates = append(candidates, [2]int{i, j})
		}
	}

	// Cheapest independent position first; stable sort keeps the
	// row-major order for equal costs.
	sort.SliceStable(candidates, func(a, b int) bool {
		return t.cost[candidates[a][0]][candidates[a][1]] < t.cost[candidates[b][0]][candidates[b][1]]
	})

	for _, c := range candidates {
		if count == need {
			break
		}
		i, j := c[0], c[1]
		if !union(i, t.rows+j) {
			// Would close a cycle with the current basis; skip.
			continue
		}
		t.alloc[i][j] = 0
		t.basic[i][j] = true
		count++
	}

	if count < need {
		return ErrDegenerateBasis
	}

	return nil
}
