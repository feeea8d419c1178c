package mvwallenius

import (
	"math"

	"github.com/aclements/go-moremath/mathx"
	"github.com/arolen/nchypergeo/fac"
	"github.com/arolen/nchypergeo/urn"
	"github.com/arolen/nchypergeo/wallenius"
)

// Probability returns P(X = x) for the original-color-indexed outcome
// vector x. A structurally invalid vector is a soft miss returning (0,
// nil), per spec.md §7 kind-2 boundary behavior; a wrong-length vector is a
// usage error.
func (d *Dist) Probability(x []int) (float64, error) {
	xu, ok, err := d.reduceOutcome(x)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	switch d.reduced.Used() {
	case 0:
		if d.params.Draws == 0 {
			return 1, nil
		}
		return 0, nil
	case 1:
		if xu[0] == d.params.Draws {
			return 1, nil
		}
		return 0, nil
	case 2:
		return d.univariateProbability(xu)
	}

	if d.reduced.AllEqualOdds {
		return d.centralProbability(xu), nil
	}

	switch d.SelectStrategy() {
	case StrategyNormal:
		return d.normalApproximation(xu)
	case StrategyLaplace:
		return d.laplaceApproximation(xu), nil
	default:
		return d.quadratureProbability(xu), nil
	}
}

// univariateProbability delegates the two-color case to wallenius.Dist,
// since Wallenius' sequential-draw process over exactly two colors is
// wallenius.Dist's own definition.
func (d *Dist) univariateProbability(xu []int) (float64, error) {
	r := d.reduced
	up := urn.UnivariateParams{
		Draws:    d.params.Draws,
		M1:       r.M[0],
		M2:       r.M[1],
		Odds:     r.Odds[0] / r.Odds[1],
		Accuracy: d.params.Accuracy,
	}
	wd, err := wallenius.New(up)
	if err != nil {
		return 0, err
	}
	return wd.Probability(xu[0]), nil
}

// centralProbability evaluates the all-equal-odds fast path: a sequential
// draw process with uniform weights is exactly uniform sampling without
// replacement, so the joint PMF is the same multivariate central
// hypergeometric product mvfisher.Dist.centralProbability computes for
// Fisher's equal-odds case.
func (d *Dist) centralProbability(xu []int) float64 {
	r := d.reduced
	used := r.Used()

	remainingTotal := 0
	for _, m := range r.M {
		remainingTotal += m
	}
	remainingDraws := d.params.Draws

	lp := 0.0
	for i := 0; i < used-1; i++ {
		m := r.M[i]
		x := xu[i]
		lp += mathx.Lchoose(m, x) +
			mathx.Lchoose(remainingTotal-m, remainingDraws-x) -
			mathx.Lchoose(remainingTotal, remainingDraws)
		remainingTotal -= m
		remainingDraws -= x
	}
	return math.Exp(lp)
}

// dValAndLogC computes d (the pooled residual-weight denominator) and
// log(C) from spec.md §4.4's multivariate Wallenius integral, shared by the
// quadrature and Laplace strategies.
func (d *Dist) dValAndLogC(xu []int) (dVal, logC float64) {
	r := d.reduced
	for i, m := range r.M {
		x := xu[i]
		dVal += r.Odds[i] * float64(m-x)
		logC += fac.LnFac(m) - fac.LnFac(x) - fac.LnFac(m-x)
	}
	return dVal, logC
}

// boundaryProbability handles d <= 0, the degenerate case where no residual
// weight remains: every color is already exhausted, so the outcome is
// deterministic.
func (d *Dist) boundaryProbability(xu []int) float64 {
	for i, m := range d.reduced.M {
		if xu[i] != m {
			return 0
		}
	}
	return 1
}

// quadratureProbability evaluates the defining integral exactly via
// adaptive Gauss-Legendre quadrature, generalizing
// wallenius.Dist.quadratureProbability to outcome vectors directly from
// spec.md §4.4's already-general formula. As there, the substitution
// t = u^d gives d * Integral_0^1 u^(d-1) * prod((1 - u^odds[i])^x[i]) du,
// with C folded into the integrand.
func (d *Dist) quadratureProbability(xu []int) float64 {
	dVal, logC := d.dValAndLogC(xu)
	if dVal <= 0 {
		return d.boundaryProbability(xu)
	}
	r := d.reduced
	logScale := logC + math.Log(dVal)

	integrand := func(u float64) float64 {
		lf := logScale + (dVal-1)*math.Log(u)
		for i, odds := range r.Odds {
			if xu[i] > 0 {
				lf += float64(xu[i]) * math.Log1p(-math.Pow(u, odds))
			}
		}
		return math.Exp(lf)
	}

	return adaptiveIntegrate(integrand, d.params.Accuracy*0.1)
}
