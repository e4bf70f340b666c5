package modi

import "github.com/katalvlaran/transopt/transport"

// Table is the transportation tableau of one solve: the allocation and
// basic-cell mask over an n×m cost grid. A Table is exclusively owned by
// the solve that created it; it is mutated in place by basis repair and
// pivoting and must never be shared across concurrent solves.
type Table struct {
	rows, cols int
	cost       [][]float64 // immutable after newTable
	alloc      [][]float64 // alloc[i][j] ≥ 0
	basic      [][]bool    // spanning-tree membership mask
	prob       *transport.Problem
}

// newTable allocates an empty tableau over the balanced problem p.
func newTable(p *transport.Problem) *Table {
	t := &Table{
		rows: p.Rows(),
		cols: p.Cols(),
		cost: p.CostMatrix(),
		prob: p,
	}
	t.alloc = make([][]float64, t.rows)
	t.basic = make([][]bool, t.rows)
	for i := 0; i < t.rows; i++ {
		t.alloc[i] = make([]float64, t.cols)
		t.basic[i] = make([]bool, t.cols)
	}

	return t
}

// Rows returns the tableau height (supply count, dummy included).
func (t *Table) Rows() int { return t.rows }

// Cols returns the tableau width (demand count, dummy included).
func (t *Table) Cols() int { return t.cols }

// At returns the allocated quantity at cell (i, j).
func (t *Table) At(i, j int) float64 { return t.alloc[i][j] }

// Cost returns the unit cost at cell (i, j).
func (t *Table) Cost(i, j int) float64 { return t.cost[i][j] }

// IsBasic reports whether cell (i, j) belongs to the current basis.
func (t *Table) IsBasic(i, j int) bool { return t.basic[i][j] }

// BasicCount returns the number of basic cells. A non-degenerate tableau
// holds exactly rows+cols−1.
func (t *Table) BasicCount() int {
	var n int
	for i := 0; i < t.rows; i++ {
		for j := 0; j < t.cols; j++ {
			if t.basic[i][j] {
				n++
			}
		}
	}

	return n
}

// TotalCost returns Σ cost·quantity over the whole tableau, dummy routes
// included (they contribute 0 by construction).
func (t *Table) TotalCost() float64 {
	var total float64
	for i := 0; i < t.rows; i++ {
		for j := 0; j < t.cols; j++ {
			if t.alloc[i][j] != 0 {
				total += t.alloc[i][j] * t.cost[i][j]
			}
		}
	}

	return total
}

// Allocations returns every positive real-route allocation as shipments in
// row-major order; dummy rows and columns are skipped.
func (t *Table) Allocations(eps float64) []transport.Shipment {
	var out []transport.Shipment
	for i := 0; i < t.rows; i++ {
		if t.prob.IsDummyRow(i) {
			continue
		}
		for j := 0; j < t.cols; j++ {
			if t.prob.IsDummyCol(j) || t.alloc[i][j] <= eps {
				continue
			}
			out = append(out, transport.Shipment{
				Supply:   t.prob.Supply(i).ID,
				Demand:   t.prob.Demand(j).ID,
				Quantity: t.alloc[i][j],
			})
		}
	}

	return out
}
