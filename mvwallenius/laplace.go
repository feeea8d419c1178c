package mvwallenius

import "math"

// laplaceApproximation generalizes wallenius.Dist.laplaceApproximation to
// outcome vectors: in the u = t^(1/d) form used by quadratureProbability,
// expand the integrand's log around its interior maximum and evaluate the
// resulting Gaussian integral analytically.
func (d *Dist) laplaceApproximation(xu []int) float64 {
	dVal, logC := d.dValAndLogC(xu)
	if dVal <= 0 {
		return d.boundaryProbability(xu)
	}
	r := d.reduced

	logG := func(u float64) float64 {
		if u <= 0 || u >= 1 {
			return math.Inf(-1)
		}
		sum := (dVal - 1) * math.Log(u)
		for i, odds := range r.Odds {
			sum += float64(xu[i]) * math.Log1p(-math.Pow(u, odds))
		}
		return sum
	}

	uStar := goldenSectionMax(logG, 1e-9, 1-1e-9)
	gStar := logG(uStar)

	const h = 1e-4
	secondDeriv := (logG(uStar+h) - 2*gStar + logG(uStar-h)) / (h * h)
	if math.IsInf(secondDeriv, 0) || secondDeriv >= 0 {
		return d.quadratureProbability(xu)
	}

	logIntegral := math.Log(dVal) + gStar + 0.5*math.Log(2*math.Pi/(-secondDeriv))
	return math.Exp(logC + logIntegral)
}

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
