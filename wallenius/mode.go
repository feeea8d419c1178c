package wallenius

import "math"

// Mode approximates the mode by rounding Mean, clipped into the support.
// Wallenius' PMF has no closed-form quadratic analogous to the Fisher
// Liao-Rosen formula (spec.md §4.2 is Fisher-specific), so this module
// anchors on the mean approximation instead; Probability near this point
// is still exact (quadrature/Laplace) or accuracy-appropriate (normal).
func (d *Dist) Mode() int {
	p := d.params
	mode := int(math.Round(d.Mean()))
	if mode < p.XMin() {
		mode = p.XMin()
	}
	if mode > p.XMax() {
		mode = p.XMax()
	}
	return mode
}
