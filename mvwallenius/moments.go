package mvwallenius

import (
	"fmt"
	"math"
)

// Moments returns the exact per-color mean and variance (diagonal only) by
// summing x*P(x) and x^2*P(x) over the feasible lattice. Unlike
// mvfisher.Dist, there is no separable proportional function g(x) to
// normalize once and reuse; each visited point pays Probability's full
// per-query cost, so the same mean-anchored depth-first walk and pruning
// rule from spec.md §4.3's SumOfAll is applied directly to the already-
// normalized P(x) values instead of to an unnormalized g(x).
func (d *Dist) Moments() (mean, variance []float64, err error) {
	used := d.reduced.Used()
	if used == 0 {
		return nil, nil, nil
	}
	if used == 1 {
		x := float64(d.params.Draws)
		return d.expand([]float64{x}), d.expand([]float64{0}), nil
	}

	mu, err := d.Mean()
	if err != nil {
		return nil, nil, err
	}
	muReduced := d.expandInverse(mu)

	r := d.reduced
	m := r.M
	n := d.params.Draws

	suffix := make([]int, used+1)
	for i := used - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1] + m[i]
	}

	anchor := make([]int, used)
	remaining := n
	for level := 0; level < used-1; level++ {
		xminL := maxInt(0, remaining-suffix[level+1])
		xmaxL := minInt(remaining, m[level])
		v := clampInt(roundInt(muReduced[level]), xminL, xmaxL)
		anchor[level] = v
		remaining -= v
	}
	anchor[used-1] = remaining
	if anchor[used-1] < 0 || anchor[used-1] > m[used-1] {
		return nil, nil, fmt.Errorf("mvwallenius: mean anchor infeasible at reduced color %d", used-1)
	}

	e := &enumerator{
		dist:   d,
		cutoff: d.params.Accuracy,
		suffix: suffix,
		sum1:   make([]float64, used),
		sum2:   make([]float64, used),
		budget: d.cfg.maxEnumerationNodes,
	}
	sum0, err := e.recurse(0, n, make([]int, used))
	if err != nil {
		return nil, nil, err
	}
	if sum0 == 0 {
		return nil, nil, nil
	}

	meanReduced := make([]float64, used)
	varianceReduced := make([]float64, used)
	for i := 0; i < used; i++ {
		meanReduced[i] = e.sum1[i] / sum0
		varianceReduced[i] = math.Max(e.sum2[i]/sum0-meanReduced[i]*meanReduced[i], 0)
	}
	return d.expand(meanReduced), d.expand(varianceReduced), nil
}

type enumerator struct {
	dist   *Dist
	cutoff float64
	suffix []int
	sum1   []float64
	sum2   []float64
	budget int

	visited int
}

func (e *enumerator) recurse(level, remaining int, x []int) (float64, error) {
	used := len(x)
	r := e.dist.reduced

	if level == used-1 {
		v := remaining
		if v < 0 || v > r.M[level] {
			return 0, nil
		}
		e.visited++
		if e.visited > e.budget {
			return 0, ErrEnumerationBudgetExceeded
		}
		x[level] = v
		pr, err := e.dist.Probability(e.dist.expandInt(x))
		if err != nil {
			return 0, err
		}
		for i, xi := range x {
			fi := float64(xi)
			e.sum1[i] += pr * fi
			e.sum2[i] += pr * fi * fi
		}
		return pr, nil
	}

	m := r.M[level]
	xmin := maxInt(0, remaining-e.suffix[level+1])
	xmax := minInt(remaining, m)
	anchor := clampInt(roundInt(e.dist.meanCache[level]), xmin, xmax)

	total := 0.0
	x[level] = anchor
	s, err := e.recurse(level+1, remaining-anchor, x)
	if err != nil {
		return 0, err
	}
	total += s

	prev1, prev2 := math.Inf(1), math.Inf(1)
	for v := anchor - 1; v >= xmin; v-- {
		x[level] = v
		s, err := e.recurse(level+1, remaining-v, x)
		if err != nil {
			return 0, err
		}
		total += s
		if s < e.cutoff && s <= prev1 && prev1 <= prev2 {
			break
		}
		prev2, prev1 = prev1, s
	}

	prev1, prev2 = math.Inf(1), math.Inf(1)
	for v := anchor + 1; v <= xmax; v++ {
		x[level] = v
		s, err := e.recurse(level+1, remaining-v, x)
		if err != nil {
			return 0, err
		}
		total += s
		if s < e.cutoff && s <= prev1 && prev1 <= prev2 {
			break
		}
		prev2, prev1 = prev1, s
	}
	return total, nil
}
