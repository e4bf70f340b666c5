package transport

// DummyID is the reserved identifier of the synthetic node inserted by
// Balance to absorb the supply/demand excess. User-provided nodes must not
// use it.
const DummyID = "__dummy__"

// SupplyNode is one origin (warehouse) with a finite, non-negative capacity.
type SupplyNode struct {
	ID       string
	Capacity float64
}

// DemandNode is one destination with a fixed, non-negative requirement.
type DemandNode struct {
	ID          string
	Requirement float64
}

// Shipment is one routed quantity in a solver's external output:
// Quantity units from supply node Supply to demand node Demand.
type Shipment struct {
	Supply   string
	Demand   string
	Quantity float64
}

// Problem is a validated transportation model. Construct via NewProblem;
// balance via Balance. All fields are private: a Problem never changes
// after construction, so it is safe to share across concurrent solves.
type Problem struct {
	supplies []SupplyNode
	demands  []DemandNode
	cost     [][]float64 // cost[i][j] = unit cost supply i → demand j

	dummySupply bool // last supply row is the synthetic balancing node
	dummyDemand bool // last demand column is the synthetic balancing node
}

// Rows returns the number of supply nodes (including a dummy, if inserted).
func (p *Problem) Rows() int { return len(p.supplies) }

// Cols returns the number of demand nodes (including a dummy, if inserted).
func (p *Problem) Cols() int { return len(p.demands) }

// Supply returns the i-th supply node.
func (p *Problem) Supply(i int) SupplyNode { return p.supplies[i] }

// Demand returns the j-th demand node.
func (p *Problem) Demand(j int) DemandNode { return p.demands[j] }

// Cost returns the unit cost of the route supply i → demand j.
func (p *Problem) Cost(i, j int) float64 { return p.cost[i][j] }

// Supplies returns a copy of the supply node list.
func (p *Problem) Supplies() []SupplyNode {
	out := make([]SupplyNode, len(p.supplies))
	copy(out, p.supplies)

	return out
}

// Demands returns a copy of the demand node list.
func (p *Problem) Demands() []DemandNode {
	out := make([]DemandNode, len(p.demands))
	copy(out, p.demands)

	return out
}

// CostMatrix returns a deep copy of the cost matrix. Solvers mutate their
// copy freely without touching the shared Problem.
func (p *Problem) CostMatrix() [][]float64 {
	out := make([][]float64, len(p.cost))
	for i, row := range p.cost {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}

	return out
}

// TotalSupply returns the sum of all capacities.
func (p *Problem) TotalSupply() float64 {
	var total float64
	for _, s := range p.supplies {
		total += s.Capacity
	}

	return total
}

// TotalDemand returns the sum of all requirements.
func (p *Problem) TotalDemand() float64 {
	var total float64
	for _, d := range p.demands {
		total += d.Requirement
	}

	return total
}

// Balanced reports whether total supply equals total demand exactly.
func (p *Problem) Balanced() bool { return p.TotalSupply() == p.TotalDemand() }

// HasDummySupply reports whether Balance appended a synthetic supply row.
func (p *Problem) HasDummySupply() bool { return p.dummySupply }

// HasDummyDemand reports whether Balance appended a synthetic demand column.
func (p *Problem) HasDummyDemand() bool { return p.dummyDemand }

// IsDummyRow reports whether supply row i is the synthetic balancing node.
func (p *Problem) IsDummyRow(i int) bool {
	return p.dummySupply && i == len(p.supplies)-1
}

// IsDummyCol reports whether demand column j is the synthetic balancing node.
func (p *Problem) IsDummyCol(j int) bool {
	return p.dummyDemand && j == len(p.demands)-1
}
