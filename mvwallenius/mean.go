package mvwallenius

import (
	"fmt"
	"math"

	"github.com/arolen/nchypergeo/cornfield"
)

// Mean returns the Cornfield-style fixed-point approximation to the
// per-color mean, expanded to original-color indexing. The transfer
// function q(r) = sum(m[i]*(1 - exp(-r*odds[i]))) generalizes
// wallenius.Dist.Mean's diffusion-limit approximation to c colors; a
// failure to converge is fatal, matching mvfisher.Dist.Mean's contract
// (spec.md §4.4's "Mean and variance approximations share the
// mean1/variance contract with the Fisher counterpart").
func (d *Dist) Mean() ([]float64, error) {
	if d.meanCache != nil {
		return d.expand(d.meanCache), nil
	}

	r := d.reduced
	used := r.Used()
	n, total := float64(d.params.Draws), float64(r.Total())

	mu := make([]float64, used)
	switch {
	case used == 0 || n == 0:
	case n == total:
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
				s += float64(m) * (1 - math.Exp(-rr*r.Odds[i]))
			}
			return s
		}

		rSol, err := cornfield.Solve(d.params.Draws, r.Total(), initial, q)
		if err != nil {
			return nil, fmt.Errorf("mvwallenius: %w", err)
		}
		for i, m := range r.M {
			mu[i] = float64(m) * (1 - math.Exp(-rSol*r.Odds[i]))
		}
	}

	d.meanCache = mu
	return d.expand(mu), nil
}
