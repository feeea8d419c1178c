package cornfield

import "math"

// Transfer computes q(r), the color-weighted expected-count function for a
// candidate odds-ratio scale r.
type Transfer func(r float64) float64

// Solve iterates r <- r * n * (N - q(r)) / (q(r) * (N - n)) from the given
// initial guess until successive estimates differ by less than Tolerance,
// or returns ErrNoConvergence after MaxIterations or when q(r) falls outside
// (0, N).
//
// n and total are the draw count and urn size (N); q is the caller-supplied
// transfer function (spec.md §4.3's q(r) for Fisher, or an analogous one
// for Wallenius per spec.md §4.4).
func Solve(n, total int, initial float64, q Transfer) (float64, error) {
	if n == 0 || n == total {
		// Degenerate: the mean is forced regardless of odds.
		return initial, nil
	}

	r := initial
	nf, Nf := float64(n), float64(total)
	for iter := 0; iter < MaxIterations; iter++ {
		qr := q(r)
		if qr <= 0 || qr >= Nf {
			return r, ErrNoConvergence
		}
		next := r * nf * (Nf - qr) / (qr * (Nf - nf))
		if math.Abs(next-r) < Tolerance {
			return next, nil
		}
		r = next
	}
	return r, ErrNoConvergence
}
