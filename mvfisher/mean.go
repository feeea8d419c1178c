package mvfisher

import (
	"fmt"

	"github.com/arolen/nchypergeo/cornfield"
)

// Mean returns mean1, the Cornfield-style fixed-point approximation to the
// per-color mean (spec.md §4.3), expanded back to original-color indexing.
// Unlike fisher.Dist.Mean, this has no closed form even when a single scalar
// r is being solved for: a failure to converge is reported as an error, not
// silently approximated, since spec.md §4.3 calls non-convergence here "a
// fatal convergence error".
func (d *Dist) Mean() ([]float64, error) {
	if d.mean1Cache != nil {
		d.promote(MeanKnown)
		return d.expand(d.mean1Cache), nil
	}

	r := d.reduced
	used := r.Used()
	n, total := float64(d.params.Draws), float64(r.Total())

	mu := make([]float64, used)
	switch {
	case used == 0 || n == 0:
		// Nothing drawn, or nothing to draw from: every color's expectation
		// is 0.
	case n == total:
		// Every ball in the used-color pool is drawn; each color's
		// expectation is its full size.
		for i, m := range r.M {
			mu[i] = float64(m)
		}
	default:
		sumMOdds := 0.0
		for i, m := range r.M {
			sumMOdds += float64(m) * r.Odds[i]
		}
		initial := n * total / ((total - n) * sumMOdds)

		q := func(rr float64) float64 {
			s := 0.0
			for i, m := range r.M {
				mf := float64(m)
				s += mf * rr * r.Odds[i] / (rr*r.Odds[i] + 1)
			}
			return s
		}

		rSol, err := cornfield.Solve(d.params.Draws, r.Total(), initial, q)
		if err != nil {
			return nil, fmt.Errorf("mvfisher: %w", err)
		}
		for i, m := range r.M {
			mf := float64(m)
			mu[i] = mf * rSol * r.Odds[i] / (rSol*r.Odds[i] + 1)
		}
		d.rCache = &rSol
	}

	d.mean1Cache = mu
	d.promote(MeanKnown)
	return d.expand(mu), nil
}
