package wallenius

// Moments returns the exact mean and variance by summing x*P(x) and
// x^2*P(x) over the full support. Unlike fisher.Dist, there is no O(1)
// neighbor recurrence for the Wallenius PMF, so this always pays the full
// per-point evaluation cost of whichever strategy Probability selects.
func (d *Dist) Moments() (mean, variance float64) {
	p := d.params
	sum0, sum1, sum2 := 0.0, 0.0, 0.0
	for x := p.XMin(); x <= p.XMax(); x++ {
		pr := d.Probability(x)
		sum0 += pr
		sum1 += float64(x) * pr
		sum2 += float64(x) * float64(x) * pr
	}
	if sum0 == 0 {
		return 0, 0
	}
	mean = sum1 / sum0
	variance = sum2/sum0 - mean*mean
	if variance < 0 {
		variance = 0
	}
	return mean, variance
}
