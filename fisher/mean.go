package fisher

import "math"

// Mean returns the Cornfield approximation to the mean of the
// distribution (spec.md §4.2). This is an approximation, not the exact
// first moment; call Moments for the exact value. Calling Mean promotes
// the instance's cache state to at least MeanKnown.
func (d *Dist) Mean() float64 {
	if d.meanCache != nil {
		d.promote(MeanKnown)
		return *d.meanCache
	}

	p := d.params
	m, n, total := float64(p.M1), float64(p.Draws), float64(p.Total())

	var mean float64
	if p.Odds == 1 {
		mean = m * n / total
	} else {
		a := (m+n)*p.Odds + (total - m - n)
		disc := a*a - 4*p.Odds*(p.Odds-1)*m*n
		if disc < 0 {
			disc = 0
		}
		mean = (a - math.Sqrt(disc)) / (2 * (p.Odds - 1))
	}

	d.meanCache = &mean
	d.promote(MeanKnown)
	return mean
}
