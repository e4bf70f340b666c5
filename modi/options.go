package modi

import "context"

// DefaultEpsilon is the numeric tolerance applied to reduced-cost and
// quantity comparisons when Options.Epsilon is unset.
const DefaultEpsilon = 1e-9

// iterCapFactor scales the default iteration cap: 10 outer iterations per
// tableau line guards against pivot cycling on degenerate instances.
const iterCapFactor = 10

// Options configures a solve.
//   - Ctx: cooperative cancellation; checked once per outer iteration,
//     never mid-pivot.
//   - Strategy: initial-solution heuristic (default VAM).
//   - Epsilon: values with |x| ≤ Epsilon are treated as zero (default 1e-9).
//   - MaxIterations: outer-loop safety cap; 0 means 10×(rows+cols).
//   - Verbose: print each pivot (entering cell, reduced cost, θ).
type Options struct {
	Ctx           context.Context
	Strategy      Strategy
	Epsilon       float64
	MaxIterations int
	Verbose       bool
}

// DefaultOptions returns production-safe defaults: background context,
// VAM start, 1e-9 tolerance, automatic iteration cap, quiet.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: VAM,
		Epsilon:  DefaultEpsilon,
	}
}

// normalize fills zero-value fields so algorithms never re-check them.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
}

// iterationCap resolves the effective outer-loop bound for an n×m tableau.
func (o *Options) iterationCap(rows, cols int) int {
	if o.MaxIterations > 0 {
		return o.MaxIterations
	}

	return iterCapFactor * (rows + cols)
}
