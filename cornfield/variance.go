package cornfield

import "math"

// ApproximateVariance implements the shared Fisher/Wallenius univariate
// variance approximation from spec.md §4.2 ("Mean and variance
// approximations share the mean1/variance contract with the Fisher
// counterpart" per spec.md §4.4). It is intentionally crude near the
// support boundary, hence the caller-side exact-variance escape hatch
// documented in fisher.Dist.Variance and wallenius.Dist.Variance.
func ApproximateVariance(mean, m1, draws, total float64) float64 {
	r1 := mean * (m1 - mean)
	r2 := (draws - mean) * (mean + total - draws - m1)
	if r1 <= 0 || r2 <= 0 {
		return 0
	}
	denom := (total - 1) * (m1*r2 + (total-m1)*r1)
	if denom == 0 {
		return 0
	}
	return math.Max(total*r1*r2/denom, 0)
}
