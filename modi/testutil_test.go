package modi_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transopt/modi"
	"github.com/katalvlaran/transopt/transport"
)

// refProblem builds the 3x4 textbook instance used across these tests.
// ΣS = 530, ΣD = 500, so balancing adds a 30-unit dummy destination.
// Initial-plan costs: Northwest Corner 4600, Least Cost 4050, VAM 3970.
// The optimum is 3970.
func refProblem(t *testing.T) *transport.Problem {
	t.Helper()

	p, err := transport.NewProblem(
		[]transport.SupplyNode{
			{ID: "S1", Capacity: 150},
			{ID: "S2", Capacity: 200},
			{ID: "S3", Capacity: 180},
		},
		[]transport.DemandNode{
			{ID: "D1", Requirement: 120},
			{ID: "D2", Requirement: 140},
			{ID: "D3", Requirement: 110},
			{ID: "D4", Requirement: 130},
		},
		[][]float64{
			{8, 6, 10, 9},
			{9, 12, 13, 7},
			{14, 9, 16, 5},
		},
	)
	require.NoError(t, err)

	return p
}

// medicareProblem builds the four-warehouse pharmaceutical distribution
// instance. ΣS = 1300, ΣD = 1250; the unique optimum costs 7560 and
// leaves 50 units idle in Tangerang.
func medicareProblem(t *testing.T) *transport.Problem {
	t.Helper()

	p, err := transport.NewProblem(
		[]transport.SupplyNode{
			{ID: "Jakarta", Capacity: 350},
			{ID: "Tangerang", Capacity: 400},
			{ID: "Bekasi", Capacity: 300},
			{ID: "Bogor", Capacity: 250},
		},
		[]transport.DemandNode{
			{ID: "Cempaka", Requirement: 250},
			{ID: "Senen", Requirement: 300},
			{ID: "Kemayoran", Requirement: 200},
			{ID: "Menteng", Requirement: 280},
			{ID: "Gambir", Requirement: 220},
		},
		[][]float64{
			{4, 6, 8, 13, 15},
			{7, 3, 9, 10, 12},
			{10, 9, 5, 7, 11},
			{12, 11, 14, 6, 3},
		},
	)
	require.NoError(t, err)

	return p
}

// squareProblem builds an instance from raw capacities and requirements
// with the cost of route (i,j) set to i*cols+j+1.
func squareProblem(t *testing.T, supplies, demands []float64) *transport.Problem {
	t.Helper()

	s := make([]transport.SupplyNode, len(supplies))
	for i, c := range supplies {
		s[i] = transport.SupplyNode{ID: fmt.Sprintf("S%d", i+1), Capacity: c}
	}
	d := make([]transport.DemandNode, len(demands))
	for j, req := range demands {
		d[j] = transport.DemandNode{ID: fmt.Sprintf("D%d", j+1), Requirement: req}
	}
	cost := make([][]float64, len(supplies))
	for i := range cost {
		cost[i] = make([]float64, len(demands))
		for j := range cost[i] {
			cost[i][j] = float64(i*len(demands) + j + 1)
		}
	}

	p, err := transport.NewProblem(s, d, cost)
	require.NoError(t, err)

	return p
}

// uniformCostProblem builds an instance whose routes all cost 1, so any
// ordering decision comes down to tie-breaking alone.
func uniformCostProblem(t *testing.T, supplies, demands []float64) *transport.Problem {
	t.Helper()

	p := squareProblem(t, supplies, demands)
	cost := make([][]float64, len(supplies))
	for i := range cost {
		cost[i] = make([]float64, len(demands))
		for j := range cost[i] {
			cost[i][j] = 1
		}
	}

	q, err := transport.NewProblem(p.Supplies(), p.Demands(), cost)
	require.NoError(t, err)

	return q
}

// checkPlan asserts that tab is a basic feasible plan for the balanced
// problem bal: every row ships its capacity, every column receives its
// requirement, and the basis holds exactly rows+cols-1 cells.
func checkPlan(t *testing.T, tab *modi.Table, bal *transport.Problem) {
	t.Helper()

	require.Equal(t, bal.Rows(), tab.Rows())
	require.Equal(t, bal.Cols(), tab.Cols())
	require.Equal(t, tab.Rows()+tab.Cols()-1, tab.BasicCount())

	for i := 0; i < tab.Rows(); i++ {
		var shipped float64
		for j := 0; j < tab.Cols(); j++ {
			q := tab.At(i, j)
			require.GreaterOrEqual(t, q, 0.0)
			if q > 0 {
				require.True(t, tab.IsBasic(i, j), "positive cell (%d,%d) must be basic", i, j)
			}
			shipped += q
		}
		require.InDelta(t, bal.Supply(i).Capacity, shipped, 1e-9, "row %d", i)
	}
	for j := 0; j < tab.Cols(); j++ {
		var received float64
		for i := 0; i < tab.Rows(); i++ {
			received += tab.At(i, j)
		}
		require.InDelta(t, bal.Demand(j).Requirement, received, 1e-9, "col %d", j)
	}
}
