package modi

import "errors"

var (
	// ErrUnbalanced indicates that BuildInitial received a problem whose
	// total supply and total demand differ; call Problem.Balance first
	// (Solve does this automatically).
	ErrUnbalanced = errors.New("modi: problem is not balanced")

	// ErrUnknownStrategy indicates a Strategy value outside the closed
	// {NorthwestCorner, LeastCost, VAM} set.
	ErrUnknownStrategy = errors.New("modi: unknown initial-solution strategy")

	// ErrDegenerateBasis indicates basis repair could not find any
	// non-basic cell whose insertion keeps the basic set acyclic. This
	// cannot occur for a connected balanced tableau; treat it as an
	// implementation defect.
	ErrDegenerateBasis = errors.New("modi: degenerate basis could not be repaired")

	// ErrDisconnectedBasis indicates the basic-cell set does not span all
	// rows and columns, so some potential was left unresolved. Signals a
	// basis-repair defect.
	ErrDisconnectedBasis = errors.New("modi: basic cells do not form a connected spanning tree")

	// ErrNoCycle indicates no alternating cycle exists through the entering
	// cell, meaning the basic set was not a spanning tree. Signals an
	// implementation defect.
	ErrNoCycle = errors.New("modi: no stepping-stone cycle through entering cell")

	// ErrNoConvergence indicates the iteration cap was reached before
	// optimality. The accompanying *Result still holds the best allocation
	// found, with Optimal=false.
	ErrNoConvergence = errors.New("modi: iteration cap exceeded before optimality")

	// ErrCancelled indicates Options.Ctx was cancelled between iterations.
	// The returned error also matches the underlying ctx.Err() sentinel.
	ErrCancelled = errors.New("modi: solve cancelled")
)
