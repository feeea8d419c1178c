package mvwallenius

import "github.com/arolen/nchypergeo/cornfield"

// Variance returns, for strict accuracy requests, the exact per-color
// values from Moments; otherwise a fast per-color approximation obtained
// by treating each reduced color against the pool of the rest as a
// two-category urn and reusing cornfield.ApproximateVariance, mirroring
// fisher.Dist.Variance's accuracy-gated contract (spec.md §4.4).
func (d *Dist) Variance() ([]float64, error) {
	if d.params.Accuracy <= d.cfg.exactVarianceThreshold {
		_, variance, err := d.Moments()
		return variance, err
	}
	if d.varianceCache != nil {
		return d.expand(d.varianceCache), nil
	}

	mu, err := d.Mean()
	if err != nil {
		return nil, err
	}
	muReduced := d.expandInverse(mu)

	r := d.reduced
	total := float64(r.Total())
	n := float64(d.params.Draws)

	variance := make([]float64, r.Used())
	for i, m := range r.M {
		variance[i] = cornfield.ApproximateVariance(muReduced[i], float64(m), n, total)
	}
	d.varianceCache = variance
	return d.expand(variance), nil
}

// expandInverse re-projects an original-color-indexed slice (as returned by
// Mean) back down to reduced-color indexing, the inverse of expand.
func (d *Dist) expandInverse(full []float64) []float64 {
	out := make([]float64, d.reduced.Used())
	for j, orig := range d.reduced.Index {
		out[j] = full[orig]
	}
	return out
}
