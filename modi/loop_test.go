package modi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFindLoop_Rectangle finds the four-cell cycle in a 2x2 tableau.
func TestFindLoop_Rectangle(t *testing.T) {
	tab := mustTable(t, []float64{10, 20}, []float64{15, 15}, [][]float64{
		{4, 6},
		{5, 3},
	})
	setBasic(tab, 0, 0, 10)
	setBasic(tab, 1, 0, 5)
	setBasic(tab, 1, 1, 15)

	cycle, err := findLoop(tab, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []cellRef{{0, 1}, {0, 0}, {1, 0}, {1, 1}}, cycle)
}

// TestFindLoop_SixCells follows a staircase basis through three rows.
func TestFindLoop_SixCells(t *testing.T) {
	tab := staircaseTable(t)

	cycle, err := findLoop(tab, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []cellRef{{0, 2}, {0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}}, cycle)
}

// TestFindLoop_NoCycle reports a basic set that cannot close a loop
// through the entering cell.
func TestFindLoop_NoCycle(t *testing.T) {
	tab := mustTable(t, []float64{10, 20}, []float64{15, 15}, [][]float64{
		{4, 6},
		{5, 3},
	})
	setBasic(tab, 0, 0, 10)

	_, err := findLoop(tab, 1, 1)
	assert.ErrorIs(t, err, ErrNoCycle)
}

// TestPivot_Reallocates applies θ along the cycle and swaps exactly one
// basis member for the entering cell.
func TestPivot_Reallocates(t *testing.T) {
	tab := staircaseTable(t)

	cycle, err := findLoop(tab, 0, 2)
	require.NoError(t, err)

	theta, leaving := pivot(tab, cycle)
	assert.Equal(t, 5.0, theta)
	assert.Equal(t, cellRef{0, 0}, leaving, "ties on θ resolve to the lowest row, then column")

	assert.True(t, tab.basic[0][2])
	assert.Equal(t, 5.0, tab.alloc[0][2])
	assert.False(t, tab.basic[0][0])
	assert.Zero(t, tab.alloc[0][0])
	assert.Equal(t, 10.0, tab.alloc[1][0])
	assert.Equal(t, 10.0, tab.alloc[2][1])
	assert.Equal(t, 5.0, tab.alloc[2][2])

	// (1,1) also hit zero but stays basic: degenerate cells keep the
	// count at rows+cols-1.
	assert.True(t, tab.basic[1][1])
	assert.Zero(t, tab.alloc[1][1])
	assert.Equal(t, 5, tab.BasicCount())
}

// staircaseTable stages the northwest staircase over a 3x3 instance:
// (0,0)=5, (1,0)=5, (1,1)=5, (2,1)=5, (2,2)=10.
func staircaseTable(t *testing.T) *Table {
	t.Helper()

	tab := mustTable(t, []float64{5, 10, 15}, []float64{10, 10, 10}, [][]float64{
		{2, 7, 4},
		{3, 3, 1},
		{5, 4, 7},
	})
	setBasic(tab, 0, 0, 5)
	setBasic(tab, 1, 0, 5)
	setBasic(tab, 1, 1, 5)
	setBasic(tab, 2, 1, 5)
	setBasic(tab, 2, 2, 10)

	return tab
}
