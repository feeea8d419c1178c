package mvfisher

import (
	"fmt"
	"math"

	"github.com/arolen/nchypergeo/fac"
)

// Moments returns the exact per-color mean and variance (diagonal only, no
// cross-color covariance), computed by SumOfAll's depth-first lattice
// enumeration (spec.md §4.3), expanded back to original-color indexing.
func (d *Dist) Moments() (mean, variance []float64, err error) {
	if err := d.ensureNormalized(); err != nil {
		return nil, nil, err
	}
	return d.expand(d.exactMean), d.expand(d.exactVariance), nil
}

// ensureNormalized performs SumOfAll, populating scale, rsum, and the exact
// per-color moment caches, per spec.md §4.3. Degenerate urns (zero or one
// used color) are handled directly without running the enumerator.
func (d *Dist) ensureNormalized() error {
	if d.state == Normalized {
		return nil
	}

	used := d.reduced.Used()
	if used == 0 {
		d.scale, d.rsum = 0, 1
		d.exactMean, d.exactVariance = nil, nil
		d.promote(Normalized)
		return nil
	}
	if used == 1 {
		x := float64(d.params.Draws)
		d.scale, d.rsum = 0, 1
		d.anchor = []int{d.params.Draws}
		d.exactMean = []float64{x}
		d.exactVariance = []float64{0}
		d.promote(Normalized)
		return nil
	}

	if _, err := d.Mean(); err != nil {
		return err
	}

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
		v := clampInt(roundInt(d.mean1Cache[level]), xminL, xmaxL)
		anchor[level] = v
		remaining -= v
	}
	anchor[used-1] = remaining
	if anchor[used-1] < 0 || anchor[used-1] > m[used-1] {
		return fmt.Errorf("mvfisher: mean anchor infeasible at reduced color %d", used-1)
	}

	scale := d.lng(anchor)
	e := &enumerator{
		dist:   d,
		scale:  scale,
		cutoff: d.params.Accuracy,
		suffix: suffix,
		sum1:   make([]float64, used),
		sum2:   make([]float64, used),
		budget: d.cfg.maxEnumerationNodes,
	}
	sum0, err := e.recurse(0, n, 0, make([]int, used))
	if err != nil {
		return err
	}

	mean := make([]float64, used)
	variance := make([]float64, used)
	for i := 0; i < used; i++ {
		mean[i] = e.sum1[i] / sum0
		variance[i] = math.Max(e.sum2[i]/sum0-mean[i]*mean[i], 0)
	}

	d.scale = scale
	d.rsum = 1 / sum0
	d.anchor = anchor
	d.exactMean = mean
	d.exactVariance = variance
	d.promote(Normalized)
	return nil
}

// enumerator holds SumOfAll's working state for one depth-first lattice
// walk: the reduced-color suffix-sum table for per-branch feasibility
// bounds, the accumulated first/second raw moment sums, and a visited-leaf
// budget.
type enumerator struct {
	dist   *Dist
	scale  float64
	cutoff float64
	suffix []int
	sum1   []float64
	sum2   []float64
	budget int

	visited int
}

// colorLng returns the single-color contribution x*log(odds[level]) -
// LnFac(x) - LnFac(m[level]-x) to ln g(x), the summand spec.md §4.3
// defines inside lng.
func (e *enumerator) colorLng(level, x int) float64 {
	r := e.dist.reduced
	m := r.M[level]
	return float64(x)*math.Log(r.Odds[level]) - fac.LnFac(x) - fac.LnFac(m-x)
}

// recurse walks the lattice depth-first from level, returning the subtree's
// contribution to Σ g(x) so the caller can apply the two-consecutive-
// below-cutoff-and-decreasing stopping rule from spec.md §4.3.
func (e *enumerator) recurse(level, remaining int, partialLng float64, x []int) (float64, error) {
	used := len(x)
	if level == used-1 {
		v := remaining
		m := e.dist.reduced.M[level]
		if v < 0 || v > m {
			return 0, nil
		}
		e.visited++
		if e.visited > e.budget {
			return 0, ErrEnumerationBudgetExceeded
		}
		x[level] = v
		lngFull := e.dist.mFac + partialLng + e.colorLng(level, v)
		g := math.Exp(lngFull - e.scale)
		for i, xi := range x {
			fi := float64(xi)
			e.sum1[i] += g * fi
			e.sum2[i] += g * fi * fi
		}
		return g, nil
	}

	r := e.dist.reduced
	m := r.M[level]
	xmin := maxInt(0, remaining-e.suffix[level+1])
	xmax := minInt(remaining, m)
	anchor := clampInt(roundInt(e.dist.mean1Cache[level]), xmin, xmax)

	total := 0.0
	x[level] = anchor
	s, err := e.recurse(level+1, remaining-anchor, partialLng+e.colorLng(level, anchor), x)
	if err != nil {
		return 0, err
	}
	total += s

	prev1, prev2 := math.Inf(1), math.Inf(1)
	for v := anchor - 1; v >= xmin; v-- {
		x[level] = v
		s, err := e.recurse(level+1, remaining-v, partialLng+e.colorLng(level, v), x)
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
		s, err := e.recurse(level+1, remaining-v, partialLng+e.colorLng(level, v), x)
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
