package mvwallenius

import (
	"fmt"

	"github.com/arolen/nchypergeo/urn"
)

// Strategy names the PMF evaluation path chosen for a given query, mirroring
// wallenius.Strategy, generalized to outcome vectors.
type Strategy int

const (
	// StrategyQuadrature evaluates the defining integral via adaptive
	// Gauss-Legendre quadrature. Used for small support.
	StrategyQuadrature Strategy = iota
	// StrategyLaplace expands the integrand's exponent around its maximum.
	// Used for moderate support.
	StrategyLaplace
	// StrategyNormal decomposes the query into sequential conditional
	// univariate Wallenius normal approximations, per spec.md §4.5's
	// conditional-sampling decomposition applied to probability evaluation.
	// Used only when accuracy >= normalApproximationAccuracyFloor.
	StrategyNormal
)

const normalApproximationAccuracyFloor = 0.1

// quadratureSupportCeiling bounds the draws*usedcolors size metric below
// which exact quadrature is preferred over the Laplace approximation.
const quadratureSupportCeiling = 200

// defaultMaxEnumerationNodes bounds Moments' depth-first lattice walk.
const defaultMaxEnumerationNodes = 1_000_000

// Option customizes a Dist beyond its required urn parameters.
type Option func(*config)

type config struct {
	exactVarianceThreshold float64
	maxEnumerationNodes    int
}

func defaultConfig() config {
	return config{
		exactVarianceThreshold: 1e-6,
		maxEnumerationNodes:    defaultMaxEnumerationNodes,
	}
}

// WithExactVarianceThreshold overrides the accuracy threshold below which
// Variance computes exact per-color values via Moments.
func WithExactVarianceThreshold(threshold float64) Option {
	return func(c *config) {
		if threshold <= 0 {
			panic("mvwallenius: WithExactVarianceThreshold requires a positive threshold")
		}
		c.exactVarianceThreshold = threshold
	}
}

// WithMaxEnumerationNodes caps the number of lattice leaves Moments will
// visit before giving up with ErrEnumerationBudgetExceeded.
func WithMaxEnumerationNodes(n int) Option {
	return func(c *config) {
		if n <= 0 {
			panic("mvwallenius: WithMaxEnumerationNodes requires a positive count")
		}
		c.maxEnumerationNodes = n
	}
}

// Dist is the multivariate generalization of Wallenius' noncentral
// hypergeometric distribution over a fixed c-color urn. Like wallenius.Dist,
// it caches only its mean/variance fixed point; Probability pays its full
// per-query evaluation cost every call. Not safe to share between
// goroutines without external synchronization.
type Dist struct {
	params  urn.MultivariateParams
	cfg     config
	reduced urn.Reduced

	meanCache     []float64 // per reduced color
	varianceCache []float64 // per reduced color
}

// New constructs a multivariate Wallenius distribution, validating
// parameters per spec.md §3.
func New(p urn.MultivariateParams, opts ...Option) (*Dist, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("mvwallenius: %w", err)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Dist{params: p, cfg: cfg, reduced: urn.Reduce(p)}, nil
}

// Params returns the urn parameters this distribution was constructed with.
func (d *Dist) Params() urn.MultivariateParams {
	return d.params
}

// SelectStrategy reports which PMF evaluation strategy Probability will use.
func (d *Dist) SelectStrategy() Strategy {
	p := d.params
	sizeMetric := p.Draws * d.reduced.Used()
	switch {
	case p.Accuracy >= normalApproximationAccuracyFloor:
		return StrategyNormal
	case sizeMetric <= quadratureSupportCeiling:
		return StrategyQuadrature
	default:
		return StrategyLaplace
	}
}

// expand scatters a reduced-color slice back into an original-color-indexed
// slice, leaving excluded colors at 0.
func (d *Dist) expand(reduced []float64) []float64 {
	out := make([]float64, d.reduced.OriginalColors)
	for j, orig := range d.reduced.Index {
		out[orig] = reduced[j]
	}
	return out
}

// expandInt is expand's integer-valued counterpart, used when scattering an
// outcome vector rather than a moment slice.
func (d *Dist) expandInt(reduced []int) []int {
	out := make([]int, d.reduced.OriginalColors)
	for j, orig := range d.reduced.Index {
		out[orig] = reduced[j]
	}
	return out
}
