package modi

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transopt/transport"
)

// mustTable builds a fresh tableau over a balanced problem with generated
// node IDs (S1…, D1…). The allocation starts empty; tests set alloc and
// basic by hand to stage exactly the state they need.
func mustTable(t *testing.T, supplies, demands []float64, cost [][]float64) *Table {
	t.Helper()

	s := make([]transport.SupplyNode, len(supplies))
	for i, c := range supplies {
		s[i] = transport.SupplyNode{ID: fmt.Sprintf("S%d", i+1), Capacity: c}
	}
	d := make([]transport.DemandNode, len(demands))
	for j, r := range demands {
		d[j] = transport.DemandNode{ID: fmt.Sprintf("D%d", j+1), Requirement: r}
	}

	p, err := transport.NewProblem(s, d, cost)
	require.NoError(t, err)
	require.True(t, p.Balanced(), "fixture must be balanced")

	return newTable(p)
}

// setBasic stages one basic cell with the given quantity.
func setBasic(tab *Table, i, j int, q float64) {
	tab.alloc[i][j] = q
	tab.basic[i][j] = true
}
