package modi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/transopt/transport"
)

// Strategy selects the initial-solution heuristic. The set is closed by
// design: exactly three classical strategies exist and no plugin
// extensibility is intended.
type Strategy int

const (
	// NorthwestCorner allocates row-major to the first unsatisfied pair,
	// ignoring costs. Fastest start, usually farthest from optimal.
	NorthwestCorner Strategy = iota

	// LeastCost allocates at the globally cheapest active cell first
	// (dummy routes deferred until a line has no real alternative).
	LeastCost

	// VAM is Vogel's Approximation: serve the row/column with the largest
	// penalty (regret) at its cheapest cell. Best starting quality.
	VAM
)

// String returns the conventional name of the strategy.
func (s Strategy) String() string {
	switch s {
	case NorthwestCorner:
		return "NorthwestCorner"
	case LeastCost:
		return "LeastCost"
	case VAM:
		return "VAM"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Result is the external outcome of one solve. Dummy-node routes are
// excluded everywhere: shipments, slack, utilization and potentials all
// refer to the caller's real nodes only.
type Result struct {
	// Shipments lists every positive real allocation in row-major order.
	Shipments []transport.Shipment

	// TotalCost is Σ cost·quantity over all routes; dummy routes cost 0,
	// so this equals the real shipping cost.
	TotalCost float64

	// Optimal is true when termination carried the optimality certificate
	// (every non-basic reduced cost ≥ 0); false only on ErrNoConvergence.
	Optimal bool

	// Iterations is the number of evaluation passes performed.
	Iterations int

	// Pivots is the number of stepping-stone reallocations performed.
	Pivots int

	// SupplySlack maps each real supply ID to capacity − shipped quantity.
	SupplySlack map[string]float64

	// DemandSlack maps each real demand ID to requirement − received
	// quantity. Zero whenever total supply covers total demand; positive
	// entries appear only when a dummy supply had to cover a shortfall.
	DemandSlack map[string]float64

	// SupplyUtilization maps each real supply ID to shipped/capacity
	// (0 for zero-capacity nodes).
	SupplyUtilization map[string]float64

	// PotentialU and PotentialV are the dual values of real supply and
	// demand nodes (u_0 = 0 convention), for sensitivity analysis by
	// external reporting tools.
	PotentialU map[string]float64
	PotentialV map[string]float64
}

// String renders a compact allocation summary, one shipment per line,
// followed by the total cost and optimality marker.
func (r *Result) String() string {
	var b strings.Builder
	for _, s := range r.Shipments {
		fmt.Fprintf(&b, "%s -> %s: %g\n", s.Supply, s.Demand, s.Quantity)
	}
	for _, id := range r.slackIDs() {
		if slack := r.SupplySlack[id]; slack > 0 {
			fmt.Fprintf(&b, "%s: unused capacity %g\n", id, slack)
		}
	}
	status := "optimal"
	if !r.Optimal {
		status = "not proven optimal"
	}
	fmt.Fprintf(&b, "total cost %g (%s, %d pivots)", r.TotalCost, status, r.Pivots)

	return b.String()
}

// slackIDs returns the real supply IDs of r in sorted order; handy for
// deterministic reporting.
func (r *Result) slackIDs() []string {
	ids := make([]string, 0, len(r.SupplySlack))
	for id := range r.SupplySlack {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
