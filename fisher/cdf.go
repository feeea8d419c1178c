package fisher

// CDF returns P(X <= x), summing Probability over the support up to x.
// Values below XMin sum to 0; values at or above XMax sum to 1.
func (d *Dist) CDF(x int) float64 {
	p := d.params
	if x < p.XMin() {
		return 0
	}
	if x > p.XMax() {
		x = p.XMax()
	}

	sum := 0.0
	for xi := p.XMin(); xi <= x; xi++ {
		sum += d.Probability(xi)
	}
	return sum
}
