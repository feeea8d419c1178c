package wallenius

import (
	"fmt"

	"github.com/arolen/nchypergeo/urn"
)

// Strategy names the PMF evaluation path chosen for a given query, mirroring
// spec.md §4.4's three strategies.
type Strategy int

const (
	// StrategyQuadrature evaluates the defining integral via adaptive
	// Gauss-Legendre quadrature. Used for small support.
	StrategyQuadrature Strategy = iota
	// StrategyLaplace expands the integrand's exponent around its maximum.
	// Used for moderate support.
	StrategyLaplace
	// StrategyNormal approximates via the normal distribution anchored on
	// the Cornfield-style mean/variance fixed point. Used only when
	// accuracy >= normalApproximationAccuracyFloor.
	StrategyNormal
)

// normalApproximationAccuracyFloor is the accuracy threshold at or above
// which the normal approximation strategy is eligible, per spec.md §4.4.
const normalApproximationAccuracyFloor = 0.1

// quadratureSupportCeiling is the support-size boundary below which exact
// quadrature is preferred over the Laplace approximation.
const quadratureSupportCeiling = 200

// Option customizes a Dist beyond its required urn parameters.
type Option func(*config)

type config struct {
	exactVarianceThreshold float64
	quadraturePanels       int
}

func defaultConfig() config {
	return config{
		exactVarianceThreshold: 1e-6,
		quadraturePanels:       1,
	}
}

// WithExactVarianceThreshold overrides the accuracy threshold below which
// Variance computes an exact sum-over-support value via Moments.
func WithExactVarianceThreshold(threshold float64) Option {
	return func(c *config) {
		if threshold <= 0 {
			panic("wallenius: WithExactVarianceThreshold requires a positive threshold")
		}
		c.exactVarianceThreshold = threshold
	}
}

// Dist is Wallenius' univariate noncentral hypergeometric distribution over
// a fixed urn. Like fisher.Dist, it is a stateful numeric object owning its
// own cached mean/variance; it is not safe to share between goroutines
// without external synchronization.
type Dist struct {
	params urn.UnivariateParams
	cfg    config

	meanCache     *float64
	varianceCache *float64
}

// New constructs a Wallenius univariate distribution, validating parameters
// per spec.md §3.
func New(p urn.UnivariateParams, opts ...Option) (*Dist, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("wallenius: %w", err)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Dist{params: p, cfg: cfg}, nil
}

// Params returns the urn parameters this distribution was constructed with.
func (d *Dist) Params() urn.UnivariateParams {
	return d.params
}

// SelectStrategy reports which PMF evaluation strategy Probability will use
// for this distribution, so callers/tests can reason about cost.
func (d *Dist) SelectStrategy() Strategy {
	p := d.params
	support := p.XMax() - p.XMin() + 1
	switch {
	case p.Accuracy >= normalApproximationAccuracyFloor:
		return StrategyNormal
	case support <= quadratureSupportCeiling:
		return StrategyQuadrature
	default:
		return StrategyLaplace
	}
}
