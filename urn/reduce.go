package urn

// Reduced holds the color-reduced view of a MultivariateParams: colors with
// m[i] == 0 or odds[i] == 0 are dropped, since spec.md §3/§9 requires
// x[i] == 0 at such colors and they contribute nothing to any sum.
type Reduced struct {
	M              []int     // mu[]: reduced population sizes
	Odds           []float64 // oddsu[]: reduced odds
	Index          []int     // Index[j] is the original color index of reduced color j
	AllEqualOdds   bool      // true when every reduced odds[i] is equal (pure central hypergeometric)
	OriginalColors int       // c, the original (unreduced) color count
}

// Used returns usedcolors, the number of colors remaining after reduction.
func (r Reduced) Used() int {
	return len(r.M)
}

// Total returns Nu, the sum of the reduced population sizes. This is the
// pool size every reduced-color computation (mean fixed points, variance,
// SumOfAll) must use instead of the unreduced N: a color excluded for
// odds[i] == 0 still contributes to N but never receives a draw, so it
// must not count toward the denominator of anything computed over used
// colors only.
func (r Reduced) Total() int {
	total := 0
	for _, m := range r.M {
		total += m
	}
	return total
}

// Reduce drops excluded colors (m[i] == 0 or odds[i] == 0) from p and
// records whether the surviving odds are all equal, enabling callers to
// take the central-hypergeometric fast path (spec.md §4.3).
func Reduce(p MultivariateParams) Reduced {
	c := p.Colors()
	r := Reduced{
		M:              make([]int, 0, c),
		Odds:           make([]float64, 0, c),
		Index:          make([]int, 0, c),
		OriginalColors: c,
	}
	for i := 0; i < c; i++ {
		if p.M[i] == 0 || p.Odds[i] == 0 {
			continue
		}
		r.M = append(r.M, p.M[i])
		r.Odds = append(r.Odds, p.Odds[i])
		r.Index = append(r.Index, i)
	}

	r.AllEqualOdds = true
	for i := 1; i < len(r.Odds); i++ {
		if r.Odds[i] != r.Odds[0] {
			r.AllEqualOdds = false
			break
		}
	}
	return r
}

// Expand scatters a reduced outcome vector xu (indexed by reduced color)
// back into a full-length outcome vector indexed by original color,
// leaving excluded colors at 0.
func (r Reduced) Expand(xu []int) []int {
	x := make([]int, r.OriginalColors)
	for j, orig := range r.Index {
		x[orig] = xu[j]
	}
	return x
}
