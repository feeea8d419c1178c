package invert

import "math"

// maxBisectIterations bounds the bisection searches used by both OddsNC and
// NumNC's non-closed-form paths.
const maxBisectIterations = 200

// bisectIncreasing finds x in [lo, hi] with f(x) ~= target, assuming f is
// nondecreasing on [lo, hi] (both OddsNC's and NumNC's target quantities are
// monotone by construction, per spec.md §8's monotonicity property).
func bisectIncreasing(f func(float64) float64, lo, hi, target, tol float64) (float64, error) {
	flo, fhi := f(lo), f(hi)
	if target < flo || target > fhi {
		return 0, ErrMeanOutOfRange
	}

	for i := 0; i < maxBisectIterations; i++ {
		mid := (lo + hi) / 2
		fm := f(mid)
		if math.Abs(fm-target) < tol {
			return mid, nil
		}
		if fm < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, ErrNoConvergence
}
