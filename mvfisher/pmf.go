package mvfisher

import (
	"math"

	"github.com/aclements/go-moremath/mathx"
	"github.com/arolen/nchypergeo/fac"
	"github.com/arolen/nchypergeo/fisher"
	"github.com/arolen/nchypergeo/urn"
)

// Probability returns P(X = x) for the original-color-indexed outcome
// vector x. A structurally invalid vector (wrong sum, nonzero at an
// excluded color, or out-of-range component) is a soft miss: it returns
// (0, nil), per spec.md §7 kind-2 boundary behavior. A wrong-length vector
// is a usage error.
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

	if err := d.ensureNormalized(); err != nil {
		return 0, err
	}
	return math.Exp(d.lng(xu)-d.scale) * d.rsum, nil
}

// univariateProbability delegates the two-color case to fisher.Dist, per
// spec.md §4.3's "with fewer than three used colors, delegate to
// univariate".
func (d *Dist) univariateProbability(xu []int) (float64, error) {
	r := d.reduced
	up := urn.UnivariateParams{
		Draws:    d.params.Draws,
		M1:       r.M[0],
		M2:       r.M[1],
		Odds:     r.Odds[0] / r.Odds[1],
		Accuracy: d.params.Accuracy,
	}
	fd, err := fisher.New(up)
	if err != nil {
		return 0, err
	}
	return fd.Probability(xu[0]), nil
}

// centralProbability evaluates the all-equal-odds fast path by decomposing
// the joint PMF into usedcolors-1 independent central hypergeometric draws
// with decrementing residual totals (spec.md §4.3), via mathx.Lchoose,
// matching fisher.Dist.centralProbability's grounding.
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
	// The last color's count is forced to whatever draws remain; its
	// probability given the prior choices is 1 when consistent (already
	// guaranteed by reduceOutcome's sum check) and contributes no factor.
	return math.Exp(lp)
}

// lng computes ln g(xu) for the reduced-color outcome vector xu, per
// spec.md §4.3: mFac + sum(x[i]*log(odds[i]) - LnFac(x[i]) - LnFac(m[i]-x[i])).
func (d *Dist) lng(xu []int) float64 {
	sum := d.mFac
	r := d.reduced
	for i, m := range r.M {
		x := xu[i]
		sum += float64(x)*math.Log(r.Odds[i]) - fac.LnFac(x) - fac.LnFac(m-x)
	}
	return sum
}
