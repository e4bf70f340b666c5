package modi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transopt/modi"
)

// TestSolve_Medicare drives the four-warehouse distribution instance end
// to end. Its optimum is unique, so every strategy must agree not only on
// the cost but on where the idle capacity lands.
func TestSolve_Medicare(t *testing.T) {
	for _, strategy := range []modi.Strategy{modi.NorthwestCorner, modi.LeastCost, modi.VAM} {
		t.Run(strategy.String(), func(t *testing.T) {
			opts := modi.DefaultOptions()
			opts.Strategy = strategy

			res, err := modi.Solve(medicareProblem(t), opts)
			require.NoError(t, err)

			assert.InDelta(t, 7560.0, res.TotalCost, 1e-9)
			assert.True(t, res.Optimal)

			assert.InDelta(t, 50.0, res.SupplySlack["Tangerang"], 1e-9)
			assert.Zero(t, res.SupplySlack["Jakarta"])
			assert.Zero(t, res.SupplySlack["Bekasi"])
			assert.Zero(t, res.SupplySlack["Bogor"])

			assert.InDelta(t, 1.0, res.SupplyUtilization["Jakarta"], 1e-9)
			assert.InDelta(t, 0.875, res.SupplyUtilization["Tangerang"], 1e-9)
			assert.InDelta(t, 1.0, res.SupplyUtilization["Bekasi"], 1e-9)
			assert.InDelta(t, 1.0, res.SupplyUtilization["Bogor"], 1e-9)

			for id, q := range res.DemandSlack {
				assert.InDelta(t, 0.0, q, 1e-9, "clinic %s must be served in full", id)
			}

			var shipped float64
			for _, s := range res.Shipments {
				shipped += s.Quantity
			}
			assert.InDelta(t, 1250.0, shipped, 1e-9)
		})
	}
}
