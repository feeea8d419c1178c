package fisher

import "math"

// Mode returns the mode of the distribution: the x maximizing Probability.
// It solves the Liao-Rosen quadratic from spec.md §4.2 exactly (no search),
// then clamps into [XMin, XMax] to guard against floating-point edge cases
// at the support boundary.
func (d *Dist) Mode() int {
	if d.modeCache != nil {
		return *d.modeCache
	}

	p := d.params
	m, n, total := float64(p.M1), float64(p.Draws), float64(p.Total())
	var mode int

	if p.Odds == 1 {
		// Degenerate central-hypergeometric case.
		mode = int(math.Floor((m + 1) * (n + 1) / (total + 2)))
	} else {
		l := m + n - total
		a := 1 - p.Odds
		b := (m+1+n+1)*p.Odds - l
		c := -(m + 1) * (n + 1) * p.Odds
		disc := b*b - 4*a*c
		if disc < 0 {
			disc = 0
		}
		mode = int(math.Floor((math.Sqrt(disc) - b) / (2 * a)))
	}

	if mode < p.XMin() {
		mode = p.XMin()
	}
	if mode > p.XMax() {
		mode = p.XMax()
	}
	d.modeCache = &mode
	return mode
}
