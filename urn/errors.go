package urn

import "errors"

// Sentinel errors for urn parameter validation. All are fatal at
// construction time (spec.md §7 kind 1 and kind 2), never returned from a
// PMF query, which instead reports an out-of-support x as a soft 0.
var (
	// ErrNegativeCount indicates a negative m1, m2, or m[i]. A negative n is
	// reported as ErrDrawsOutOfRange.
	ErrNegativeCount = errors.New("urn: negative count")

	// ErrNegativeOdds indicates odds < 0 for some color.
	ErrNegativeOdds = errors.New("urn: negative odds")

	// ErrDrawsOutOfRange indicates n < 0 or n > N.
	ErrDrawsOutOfRange = errors.New("urn: draws out of [0, N] range")

	// ErrAccuracyOutOfRange indicates accuracy <= 0 or accuracy > 1.
	ErrAccuracyOutOfRange = errors.New("urn: accuracy out of (0, 1] range")

	// ErrInfeasible indicates the draw count n exceeds the number of balls
	// in colors with strictly positive odds: no feasible outcome exists.
	ErrInfeasible = errors.New("urn: draw count infeasible for given weights")

	// ErrTooManyColors indicates more colors than MaxColors were supplied.
	ErrTooManyColors = errors.New("urn: color count exceeds MaxColors")

	// ErrNoColors indicates a multivariate urn with zero colors.
	ErrNoColors = errors.New("urn: at least one color is required")

	// ErrColorVectorLengthMismatch indicates len(m) != len(odds).
	ErrColorVectorLengthMismatch = errors.New("urn: m and odds must have equal length")

	// ErrSumMismatch indicates a supplied outcome vector x does not sum to n.
	ErrSumMismatch = errors.New("urn: sum(x) does not equal n")
)

// MaxColors bounds the number of colors usable with the fixed-size
// auxiliary arrays some multivariate engines allocate on the stack.
// Implementations may allow more via dynamic sizing, but this module
// matches the documented limit of the reference implementation.
const MaxColors = 32
