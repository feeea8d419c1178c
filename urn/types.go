package urn

import "fmt"

// UnivariateParams is the quintuple (n, m1, m2, odds, accuracy) describing
// a two-color urn: n balls are drawn without replacement from m1 balls of
// color 1 and m2 balls of color 2, color 1 carrying relative weight odds.
type UnivariateParams struct {
	Draws    int     // n: number of balls drawn
	M1       int     // m1: color-1 population
	M2       int     // m2: color-2 population
	Odds     float64 // relative weight of color 1 versus color 2
	Accuracy float64 // requested relative error bound, in (0, 1]
}

// Total returns N = m1 + m2.
func (p UnivariateParams) Total() int {
	return p.M1 + p.M2
}

// XMin returns max(0, n - m2), the smallest feasible count of color-1 balls.
func (p UnivariateParams) XMin() int {
	return maxInt(0, p.Draws-p.M2)
}

// XMax returns min(n, m1), the largest feasible count of color-1 balls.
func (p UnivariateParams) XMax() int {
	return minInt(p.Draws, p.M1)
}

// Validate checks the invariants from spec.md §3: non-negative counts,
// 0 <= n <= N, odds >= 0, 0 < accuracy <= 1, and feasibility when odds == 0.
func (p UnivariateParams) Validate() error {
	if p.M1 < 0 || p.M2 < 0 {
		return fmt.Errorf("%w: m1=%d m2=%d", ErrNegativeCount, p.M1, p.M2)
	}
	if p.Odds < 0 {
		return fmt.Errorf("%w: odds=%g", ErrNegativeOdds, p.Odds)
	}
	n, total := p.Draws, p.Total()
	if n < 0 || n > total {
		return fmt.Errorf("%w: n=%d N=%d", ErrDrawsOutOfRange, n, total)
	}
	if p.Accuracy <= 0 || p.Accuracy > 1 {
		return fmt.Errorf("%w: accuracy=%g", ErrAccuracyOutOfRange, p.Accuracy)
	}
	if p.Odds == 0 && n > p.M2 {
		// With odds==0, every drawn ball must be color 2; infeasible if
		// n exceeds the color-2 population.
		return fmt.Errorf("%w: n=%d exceeds m2=%d with odds=0", ErrInfeasible, n, p.M2)
	}
	return nil
}

// MultivariateParams is the tuple (n, m[], odds[], accuracy) describing a
// c-color urn.
type MultivariateParams struct {
	Draws    int       // n: number of balls drawn
	M        []int     // m[i]: population of color i
	Odds     []float64 // odds[i]: relative weight of color i
	Accuracy float64   // requested relative error bound, in (0, 1]
}

// Total returns N = sum(m[i]).
func (p MultivariateParams) Total() int {
	total := 0
	for _, m := range p.M {
		total += m
	}
	return total
}

// Colors returns the number of colors, c.
func (p MultivariateParams) Colors() int {
	return len(p.M)
}

// Validate checks the invariants from spec.md §3 for the multivariate urn.
func (p MultivariateParams) Validate() error {
	c := p.Colors()
	if c == 0 {
		return ErrNoColors
	}
	if c > MaxColors {
		return fmt.Errorf("%w: got %d, max %d", ErrTooManyColors, c, MaxColors)
	}
	if len(p.Odds) != c {
		return fmt.Errorf("%w: len(m)=%d len(odds)=%d", ErrColorVectorLengthMismatch, c, len(p.Odds))
	}
	feasible := 0
	for i := 0; i < c; i++ {
		if p.M[i] < 0 {
			return fmt.Errorf("%w: m[%d]=%d", ErrNegativeCount, i, p.M[i])
		}
		if p.Odds[i] < 0 {
			return fmt.Errorf("%w: odds[%d]=%g", ErrNegativeOdds, i, p.Odds[i])
		}
		if p.Odds[i] > 0 {
			feasible += p.M[i]
		}
	}
	n, total := p.Draws, p.Total()
	if n < 0 || n > total {
		return fmt.Errorf("%w: n=%d N=%d", ErrDrawsOutOfRange, n, total)
	}
	if p.Accuracy <= 0 || p.Accuracy > 1 {
		return fmt.Errorf("%w: accuracy=%g", ErrAccuracyOutOfRange, p.Accuracy)
	}
	if feasible < n {
		return fmt.Errorf("%w: n=%d exceeds feasible total=%d", ErrInfeasible, n, feasible)
	}
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
