package wallenius

import (
	"math"

	"github.com/arolen/nchypergeo/cornfield"
)

// Mean returns the Cornfield-style approximation to the mean, rooted on a
// transfer function derived from Wallenius' sequential-draw moment
// equations rather than Fisher's conditional-Bernoulli one (spec.md §4.4):
// each color's expected count is modeled as m[i]*(1 - exp(-r*odds[i])),
// the diffusion-limit approximation to sampling without replacement one
// ball at a time, and r is the scalar solved for by cornfield.Solve.
func (d *Dist) Mean() float64 {
	if d.meanCache != nil {
		return *d.meanCache
	}
	p := d.params
	m1, m2, n, total := float64(p.M1), float64(p.M2), float64(p.Draws), float64(p.Total())

	if p.Odds == 1 {
		mean := m1 * n / total
		d.meanCache = &mean
		return mean
	}

	q := func(r float64) float64 {
		return m1*(1-math.Exp(-r*p.Odds)) + m2*(1-math.Exp(-r))
	}
	sumMOdds := m1*p.Odds + m2
	initial := n * total / ((total - n) * sumMOdds)

	r, err := cornfield.Solve(p.Draws, p.Total(), initial, q)
	var mean float64
	if err != nil {
		// Fall back to the Fisher-style mean as a last resort; still a
		// documented approximation, never a fatal error for Mean itself.
		a := (m1+n)*p.Odds + (total - m1 - n)
		disc := a*a - 4*p.Odds*(p.Odds-1)*m1*n
		if disc < 0 {
			disc = 0
		}
		mean = (a - math.Sqrt(disc)) / (2 * (p.Odds - 1))
	} else {
		mean = m1 * (1 - math.Exp(-r*p.Odds))
	}

	if mean < float64(p.XMin()) {
		mean = float64(p.XMin())
	}
	if mean > float64(p.XMax()) {
		mean = float64(p.XMax())
	}
	d.meanCache = &mean
	return mean
}
