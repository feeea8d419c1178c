package wallenius

import "github.com/arolen/nchypergeo/cornfield"

// Variance mirrors fisher.Dist.Variance's accuracy-gated choice between
// the exact sum-over-support value and the fast shared approximation
// (spec.md §4.4: "Mean and variance approximations share the mean1/
// variance contract with the Fisher counterpart").
func (d *Dist) Variance() float64 {
	if d.params.Accuracy <= d.cfg.exactVarianceThreshold {
		_, variance := d.Moments()
		return variance
	}
	if d.varianceCache != nil {
		return *d.varianceCache
	}
	p := d.params
	v := cornfield.ApproximateVariance(d.Mean(), float64(p.M1), float64(p.Draws), float64(p.Total()))
	d.varianceCache = &v
	return v
}
