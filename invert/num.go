package invert

import "math"

// NumNC recovers a two-color urn composition (m1, m2) with m1+m2 = total
// whose forward mean under the chosen engine approximates the target mean,
// for a fixed (n, odds). m1 is searched as a continuous root on [0, total]
// and rounded to the nearest integer split on return, per spec.md §4.6.
func NumNC(mean float64, n, total int, odds, accuracy float64, engine Engine) (m1, m2 float64, err error) {
	accuracy = effectiveAccuracy(accuracy)
	if total < 0 || n < 0 || n > total {
		return 0, 0, ErrMeanOutOfRange
	}

	f := func(x float64) float64 {
		m1i := int(math.Round(x))
		m2i := total - m1i
		m, ferr := forwardMean(m1i, m2i, n, odds, accuracy, engine)
		if ferr != nil {
			return math.NaN()
		}
		return m
	}

	root, err := bisectIncreasing(f, 0, float64(total), mean, accuracy*0.1)
	if err != nil {
		return 0, 0, err
	}

	m1r := math.Round(root)
	if m1r < 0 {
		m1r = 0
	}
	if m1r > float64(total) {
		m1r = float64(total)
	}
	return m1r, float64(total) - m1r, nil
}
