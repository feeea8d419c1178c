package fisher

import (
	"math"

	"github.com/aclements/go-moremath/mathx"
	"github.com/arolen/nchypergeo/fac"
)

// Probability returns P(X = x) for this distribution. x outside
// [XMin, XMax] is a soft miss: it returns 0 with no error, per spec.md §7
// kind-2 boundary behavior.
func (d *Dist) Probability(x int) float64 {
	p := d.params
	if x < p.XMin() || x > p.XMax() {
		return 0
	}
	if p.XMin() == p.XMax() {
		return 1 // deterministic urn
	}
	if p.Odds == 0 {
		if x == 0 {
			return 1
		}
		return 0
	}
	if p.Odds == 1 {
		return d.centralProbability(x)
	}

	d.ensureNormalized()

	var raw float64
	switch x - d.xLast {
	case 0:
		raw = d.xFac
	case 1, -1:
		raw = d.rawLngFast(x)
	default:
		raw = d.rawLng(x)
	}
	d.xLast, d.xFac = x, raw
	return math.Exp(raw-d.scale) * d.rsum
}

// centralProbability evaluates the pure central hypergeometric PMF
// (odds == 1) via mathx.Lchoose, matching
// stats.HypergeometicDist.pmf in the vendored aclements/go-moremath
// package rather than re-deriving the log-binomial-coefficient arithmetic
// from the fac cache (see DESIGN.md and SPEC_FULL.md §4).
func (d *Dist) centralProbability(x int) float64 {
	p := d.params
	lp := mathx.Lchoose(p.M1, x) + mathx.Lchoose(p.M2, p.Draws-x) - mathx.Lchoose(p.Total(), p.Draws)
	return math.Exp(lp)
}

// rawLng computes ln g(x) from scratch (no recurrence), used for the
// anchor point and whenever the fast update's precondition
// (|x - xLast| == 1) does not hold.
func (d *Dist) rawLng(x int) float64 {
	p := d.params
	m, n, m2 := p.M1, p.Draws, p.M2
	return fac.LnFac(m) - fac.LnFac(x) - fac.LnFac(m-x) +
		fac.LnFac(m2) - fac.LnFac(n-x) - fac.LnFac(m2-n+x) +
		float64(x)*math.Log(p.Odds)
}

// rawLngFast computes ln g(x) from ln g(xLast) via the O(1) recurrence in
// spec.md §4.2, valid only when x == xLast+1 or x == xLast-1.
func (d *Dist) rawLngFast(x int) float64 {
	p := d.params
	m, n, m2 := p.M1, p.Draws, p.M2
	lnOdds := math.Log(p.Odds)
	switch x - d.xLast {
	case 1:
		prevX := d.xLast
		return d.xFac + math.Log(float64(m-prevX)) - math.Log(float64(prevX+1)) +
			math.Log(float64(n-prevX)) - math.Log(float64(m2-n+prevX+1)) + lnOdds
	case -1:
		prevX := d.xLast
		return d.xFac - math.Log(float64(m-prevX+1)) + math.Log(float64(prevX)) -
			math.Log(float64(n-prevX+1)) + math.Log(float64(m2-n+prevX)) - lnOdds
	default:
		return d.rawLng(x)
	}
}

// ensureNormalized performs the first-call normalization step from
// spec.md §4.2: pick an anchor at round(Mean()), set scale so the anchor
// evaluates to 1 in linear space, and sum outward in both directions until
// the accuracy-gated tail cutoff is reached.
func (d *Dist) ensureNormalized() {
	if d.state == Normalized {
		return
	}
	p := d.params

	anchor := int(math.Round(d.Mean()))
	if anchor < p.XMin() {
		anchor = p.XMin()
	}
	if anchor > p.XMax() {
		anchor = p.XMax()
	}

	d.scale = d.rawLng(anchor)
	d.anchor = anchor

	total := 1.0 // exp(lng(anchor) - scale) == 1
	tailCutoff := p.Accuracy * 0.1

	// Walk downward from the anchor.
	prev := d.scale
	for x := anchor - 1; x >= p.XMin(); x-- {
		cur := d.lngFromNeighbor(x, x+1, prev)
		term := math.Exp(cur - d.scale)
		total += term
		prev = cur
		if term < tailCutoff {
			break
		}
	}
	// Walk upward from the anchor.
	prev = d.scale
	for x := anchor + 1; x <= p.XMax(); x++ {
		cur := d.lngFromNeighbor(x, x-1, prev)
		term := math.Exp(cur - d.scale)
		total += term
		prev = cur
		if term < tailCutoff {
			break
		}
	}

	d.rsum = 1 / total
	d.xLast, d.xFac = anchor, d.scale
	d.promote(Normalized)
}

// lngFromNeighbor computes ln g(x) using the O(1) recurrence from the
// known ln g(neighbor) where neighbor is adjacent to x, without disturbing
// the Dist's own xLast/xFac cache (used only during normalization's
// outward walk).
func (d *Dist) lngFromNeighbor(x, neighbor int, lngNeighbor float64) float64 {
	p := d.params
	m, n, m2 := p.M1, p.Draws, p.M2
	lnOdds := math.Log(p.Odds)
	if x == neighbor+1 {
		prevX := neighbor
		return lngNeighbor + math.Log(float64(m-prevX)) - math.Log(float64(prevX+1)) +
			math.Log(float64(n-prevX)) - math.Log(float64(m2-n+prevX+1)) + lnOdds
	}
	// x == neighbor - 1
	prevX := neighbor
	return lngNeighbor - math.Log(float64(m-prevX+1)) + math.Log(float64(prevX)) -
		math.Log(float64(n-prevX+1)) + math.Log(float64(m2-n+prevX)) - lnOdds
}
