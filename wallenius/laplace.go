package wallenius

import (
	"math"

	"github.com/arolen/nchypergeo/fac"
)

// laplaceApproximation evaluates the Wallenius integral, in the u = t^(1/d)
// form used by quadratureProbability, by expanding its (log) integrand
// around its interior maximum and evaluating the resulting Gaussian
// integral analytically, per spec.md §4.4. Used for moderate support where
// exact quadrature would cost too many panels.
func (d *Dist) laplaceApproximation(x int) float64 {
	p := d.params
	m1, m2, n := p.M1, p.M2, p.Draws
	odds := p.Odds

	dVal := odds*float64(m1-x) + float64(m2-n+x)
	if dVal <= 0 {
		return boundaryProbability(x, p)
	}

	logG := func(u float64) float64 {
		if u <= 0 || u >= 1 {
			return math.Inf(-1)
		}
		return (dVal-1)*math.Log(u) + float64(x)*math.Log1p(-math.Pow(u, odds)) +
			float64(n-x)*math.Log1p(-u)
	}

	uStar := goldenSectionMax(logG, 1e-9, 1-1e-9)
	gStar := logG(uStar)

	const h = 1e-4
	secondDeriv := (logG(uStar+h) - 2*gStar + logG(uStar-h)) / (h * h)
	if math.IsInf(secondDeriv, 0) || secondDeriv >= 0 {
		// Not a genuine interior maximum (flat or convex region); fall
		// back to quadrature rather than risk an unstable estimate.
		return d.quadratureProbability(x)
	}

	logC := (fac.LnFac(m1) - fac.LnFac(x) - fac.LnFac(m1-x)) +
		(fac.LnFac(m2) - fac.LnFac(n-x) - fac.LnFac(m2-n+x))

	logIntegral := math.Log(dVal) + gStar + 0.5*math.Log(2*math.Pi/(-secondDeriv))
	return math.Exp(logC + logIntegral)
}

// goldenSectionMax finds an approximate maximizer of f over [a, b] via
// golden-section search, with a fixed iteration budget sufficient for
// double-precision convergence on a unimodal interior maximum.
func goldenSectionMax(f func(float64) float64, a, b float64) float64 {
	const invPhi = 0.6180339887498949
	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	for i := 0; i < 100; i++ {
		if b-a < 1e-12 {
			break
		}
		if f(c) > f(d) {
			b = d
		} else {
			a = c
		}
		c = b - invPhi*(b-a)
		d = a + invPhi*(b-a)
	}
	return (a + b) / 2
}
