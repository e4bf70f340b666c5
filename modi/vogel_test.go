package modi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transopt/modi"
)

// TestBuildInitial_VAM drives the penalty heuristic over the reference
// instance. VAM lands on the optimum straight away here.
func TestBuildInitial_VAM(t *testing.T) {
	bal := refProblem(t).Balance()
	tab, err := modi.BuildInitial(bal, modi.VAM)
	require.NoError(t, err)

	checkPlan(t, tab, bal)
	assert.InDelta(t, 3970.0, tab.TotalCost(), 1e-9)

	// The first round's largest penalty (7, row S2) sends the slack to
	// S2 rather than the naive cheapest-cell choice.
	assert.Equal(t, 30.0, tab.At(1, 4))
	assert.Equal(t, 130.0, tab.At(2, 3))
	assert.Equal(t, 90.0, tab.At(0, 1))
	assert.Equal(t, 120.0, tab.At(1, 0))
}

// TestBuildInitial_VAM_SingleLine keeps working when a line has one
// active cell left and its penalty degenerates to zero.
func TestBuildInitial_VAM_SingleLine(t *testing.T) {
	bal := squareProblem(t, []float64{5}, []float64{2, 3}).Balance()
	tab, err := modi.BuildInitial(bal, modi.VAM)
	require.NoError(t, err)

	checkPlan(t, tab, bal)
	assert.Equal(t, 2.0, tab.At(0, 0))
	assert.Equal(t, 3.0, tab.At(0, 1))
}

// TestBuildInitial_VAM_BeatsLeastCost checks the ordering of the three
// heuristics on the reference instance: VAM <= Least Cost <= Northwest.
func TestBuildInitial_VAM_BeatsLeastCost(t *testing.T) {
	bal := refProblem(t).Balance()

	nw, err := modi.BuildInitial(bal, modi.NorthwestCorner)
	require.NoError(t, err)
	lc, err := modi.BuildInitial(bal, modi.LeastCost)
	require.NoError(t, err)
	vam, err := modi.BuildInitial(bal, modi.VAM)
	require.NoError(t, err)

	assert.LessOrEqual(t, vam.TotalCost(), lc.TotalCost())
	assert.LessOrEqual(t, lc.TotalCost(), nw.TotalCost())
}
