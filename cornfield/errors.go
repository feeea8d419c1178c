package cornfield

import "errors"

// ErrNoConvergence indicates the fixed-point iteration exceeded MaxIterations
// without the successive r estimates settling within Tolerance, or that q(r)
// fell outside (0, N) so the update could not continue. Per
// spec.md §4.3/§5 this is a fatal, construction-time-equivalent error: the
// caller's Mean computation cannot proceed.
var ErrNoConvergence = errors.New("cornfield: mean solver did not converge")

// MaxIterations bounds the fixed-point iteration, per spec.md §4.3.
const MaxIterations = 100

// Tolerance is the convergence threshold on successive r estimates.
const Tolerance = 1e-5
