package transport

import "errors"

// ErrInvalidProblem indicates that the raw problem data cannot form a valid
// transportation model: a negative capacity, requirement or cost, a cost
// matrix whose dimensions do not match the node counts, a NaN/Inf entry,
// or a missing/duplicate/reserved node ID. The error is fatal and
// deterministic; retrying with the same input is pointless.
var ErrInvalidProblem = errors.New("transport: invalid problem")
