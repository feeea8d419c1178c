package wallenius

import (
	"math"

	"github.com/arolen/nchypergeo/fac"
	"github.com/arolen/nchypergeo/urn"
)

// Probability returns P(X = x), dispatching across the three evaluation
// strategies named in SelectStrategy (spec.md §4.4). x outside
// [XMin, XMax] is a soft miss returning 0, matching fisher.Dist.
func (d *Dist) Probability(x int) float64 {
	p := d.params
	if x < p.XMin() || x > p.XMax() {
		return 0
	}
	if p.XMin() == p.XMax() {
		return 1
	}
	if p.Odds == 0 {
		if x == 0 {
			return 1
		}
		return 0
	}

	switch d.SelectStrategy() {
	case StrategyNormal:
		return d.normalApproximation(x)
	case StrategyLaplace:
		return d.laplaceApproximation(x)
	default:
		return d.quadratureProbability(x)
	}
}

// quadratureProbability evaluates the defining Wallenius integral exactly
// via adaptive Gauss-Legendre quadrature (spec.md §4.4). The substitution
// t = u^d turns it into the smooth bump
//
//	d * Integral_0^1 u^(d-1) * (1 - u^odds)^x * (1 - u)^(n-x) du,
//
// and the binomial factor C = C(m1,x)*C(m2,n-x) is folded into the
// integrand so the quadrature tolerance applies to the probability itself.
func (d *Dist) quadratureProbability(x int) float64 {
	p := d.params
	m1, m2, n := p.M1, p.M2, p.Draws
	odds := p.Odds

	dVal := odds*float64(m1-x) + float64(m2-n+x)
	if dVal <= 0 {
		// Degenerate: all remaining weight is on one color; the integral
		// collapses to an indicator.
		return boundaryProbability(x, p)
	}

	logC := (fac.LnFac(m1) - fac.LnFac(x) - fac.LnFac(m1-x)) +
		(fac.LnFac(m2) - fac.LnFac(n-x) - fac.LnFac(m2-n+x))
	logScale := logC + math.Log(dVal)

	integrand := func(u float64) float64 {
		lf := logScale + (dVal-1)*math.Log(u)
		if x > 0 {
			lf += float64(x) * math.Log1p(-math.Pow(u, odds))
		}
		if n-x > 0 {
			lf += float64(n-x) * math.Log1p(-u)
		}
		return math.Exp(lf)
	}

	return adaptiveIntegrate(integrand, p.Accuracy*0.1)
}

func boundaryProbability(x int, p urn.UnivariateParams) float64 {
	if x == p.M1 && p.Draws == p.M1 {
		return 1
	}
	return 0
}
