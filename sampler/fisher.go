package sampler

import (
	"fmt"
	"math/rand"

	"github.com/arolen/nchypergeo/fisher"
	"github.com/arolen/nchypergeo/urn"
)

// Fisher draws variates from Fisher's univariate noncentral hypergeometric
// distribution via chop-down sampling against a cached PMF table (spec.md
// §4.5: "invoke MakeTable (cached per instance), sample by chop-down using
// a uniform deviate u in [0, s), iterate from xfirst until running sum
// exceeds u").
type Fisher struct {
	dist  *fisher.Dist
	table fisher.Table
	built bool
}

// NewFisher constructs a Fisher sampler over the given urn parameters.
func NewFisher(p urn.UnivariateParams) (*Fisher, error) {
	dist, err := fisher.New(p)
	if err != nil {
		return nil, err
	}
	return &Fisher{dist: dist}, nil
}

// Sample draws one variate. rng may be nil to use a deterministic default
// stream.
func (s *Fisher) Sample(rng *rand.Rand) int {
	if !s.built {
		s.table = s.dist.MakeTable()
		s.built = true
	}
	r := orDefault(rng)
	u := r.Float64() * s.table.Sum

	running := 0.0
	for i, v := range s.table.Values {
		running += v
		if running > u {
			return s.table.First + i
		}
	}
	return s.table.Last
}

// MultivariateFisher draws variates from the multivariate Fisher engine via
// the conditional-sampling decomposition from spec.md §4.5: draw color 0
// from its marginal univariate distribution against the pool of the rest,
// subtract, and recurse on the remaining colors.
type MultivariateFisher struct {
	params  urn.MultivariateParams
	reduced urn.Reduced
}

// NewMultivariateFisher constructs a multivariate Fisher sampler.
func NewMultivariateFisher(p urn.MultivariateParams) (*MultivariateFisher, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("sampler: %w", err)
	}
	return &MultivariateFisher{params: p, reduced: urn.Reduce(p)}, nil
}

// Sample draws one outcome vector, indexed by original color. rng may be
// nil to use a deterministic default stream.
func (s *MultivariateFisher) Sample(rng *rand.Rand) ([]int, error) {
	r := s.reduced
	used := r.Used()
	xu := make([]int, used)

	remainingDraws := s.params.Draws
	remainingTotal := 0
	for _, m := range r.M {
		remainingTotal += m
	}

	for i := 0; i < used-1; i++ {
		poolM := remainingTotal - r.M[i]
		poolWeighted := 0.0
		poolPop := 0
		for j := i + 1; j < used; j++ {
			poolWeighted += float64(r.M[j]) * r.Odds[j]
			poolPop += r.M[j]
		}
		poolOdds := 1.0
		if poolPop > 0 {
			poolOdds = poolWeighted / float64(poolPop)
		}

		up := urn.UnivariateParams{
			Draws:    remainingDraws,
			M1:       r.M[i],
			M2:       poolM,
			Odds:     r.Odds[i] / poolOdds,
			Accuracy: s.params.Accuracy,
		}
		marginal, err := NewFisher(up)
		if err != nil {
			return nil, err
		}
		x := marginal.Sample(rng)
		xu[i] = x
		remainingDraws -= x
		remainingTotal -= r.M[i]
	}
	if used > 0 {
		xu[used-1] = remainingDraws
	}

	return r.Expand(xu), nil
}
