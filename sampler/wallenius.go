package sampler

import (
	"fmt"
	"math/rand"

	"github.com/arolen/nchypergeo/urn"
)

// MultivariateWallenius draws variates from the multivariate Wallenius
// engine by emulating the urn directly: draw balls one at a time, each
// time picking color i with probability proportional to its residual
// count times odds[i], then decrementing that color's residual (spec.md
// §4.5). This is exact by definition of the Wallenius distribution; it
// does not implement the ratio-of-uniforms/hat-function speedup spec.md
// §4.5 mentions as an option for moderate n (see DESIGN.md).
type MultivariateWallenius struct {
	params urn.MultivariateParams
}

// NewMultivariateWallenius constructs a multivariate Wallenius sampler.
func NewMultivariateWallenius(p urn.MultivariateParams) (*MultivariateWallenius, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("sampler: %w", err)
	}
	return &MultivariateWallenius{params: p}, nil
}

// Sample draws one outcome vector, indexed by original color. rng may be
// nil to use a deterministic default stream.
func (s *MultivariateWallenius) Sample(rng *rand.Rand) []int {
	r := orDefault(rng)
	p := s.params
	c := p.Colors()

	residual := make([]int, c)
	copy(residual, p.M)
	x := make([]int, c)

	for draw := 0; draw < p.Draws; draw++ {
		total := 0.0
		for i := 0; i < c; i++ {
			total += float64(residual[i]) * p.Odds[i]
		}
		if total <= 0 {
			break // no weighted mass left; feasibility was checked at construction
		}

		u := r.Float64() * total
		running := 0.0
		chosen := c - 1
		for i := 0; i < c; i++ {
			running += float64(residual[i]) * p.Odds[i]
			if running > u {
				chosen = i
				break
			}
		}
		x[chosen]++
		residual[chosen]--
	}
	return x
}

// Wallenius draws variates from Wallenius' univariate noncentral
// hypergeometric distribution, the two-color specialization of
// MultivariateWallenius's urn emulation.
type Wallenius struct {
	mv *MultivariateWallenius
}

// NewWallenius constructs a univariate Wallenius sampler.
func NewWallenius(p urn.UnivariateParams) (*Wallenius, error) {
	mv, err := NewMultivariateWallenius(urn.MultivariateParams{
		Draws:    p.Draws,
		M:        []int{p.M1, p.M2},
		Odds:     []float64{p.Odds, 1.0},
		Accuracy: p.Accuracy,
	})
	if err != nil {
		return nil, err
	}
	return &Wallenius{mv: mv}, nil
}

// Sample draws one variate: the count of color-1 balls. rng may be nil to
// use a deterministic default stream.
func (s *Wallenius) Sample(rng *rand.Rand) int {
	x := s.mv.Sample(rng)
	return x[0]
}
