package fisher

import "github.com/arolen/nchypergeo/cornfield"

// Variance returns the variance of the distribution. When the configured
// accuracy is at least as strict as the exact-variance threshold (default
// 1e-6, see Option WithExactVarianceThreshold), this computes the exact
// sum-over-support variance via Moments; otherwise it uses the fast
// Fisher/Cornfield approximation from spec.md §4.2, which the reference
// implementation's own comment calls "a poor approximation" — see
// DESIGN.md for why this module resolves that Open Question by gating on
// accuracy rather than always taking one path.
func (d *Dist) Variance() float64 {
	if d.params.Accuracy <= d.cfg.exactVarianceThreshold {
		_, variance := d.Moments()
		return variance
	}
	return d.approximateVariance()
}

func (d *Dist) approximateVariance() float64 {
	p := d.params
	return cornfield.ApproximateVariance(d.Mean(), float64(p.M1), float64(p.Draws), float64(p.Total()))
}
