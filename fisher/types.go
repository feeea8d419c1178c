package fisher

import (
	"fmt"

	"github.com/arolen/nchypergeo/urn"
)

// State names the per-instance cache lifecycle from spec.md §4.7:
// Fresh -> MeanKnown -> Normalized.
type State int

const (
	// Fresh is the state immediately after construction: nothing cached.
	Fresh State = iota
	// MeanKnown is reached once Mean has been computed at least once.
	MeanKnown
	// Normalized is reached once scale/rsum have been computed, i.e. once
	// Moments has been called, or Probability has taken the general path
	// (odds other than 0 and 1 on a non-degenerate urn).
	Normalized
)

// defaultExactVarianceThreshold is the accuracy cutoff below which
// Variance computes the exact sum-over-support value instead of the
// Fisher/Cornfield approximation. See DESIGN.md, "variance() open question".
const defaultExactVarianceThreshold = 1e-6

// Option customizes a Dist beyond its required urn parameters.
type Option func(*config)

type config struct {
	exactVarianceThreshold float64
}

func defaultConfig() config {
	return config{exactVarianceThreshold: defaultExactVarianceThreshold}
}

// WithExactVarianceThreshold overrides the accuracy threshold below which
// Variance computes an exact sum-over-support value rather than the fast
// Cornfield/Fisher approximation. Must be > 0.
func WithExactVarianceThreshold(threshold float64) Option {
	return func(c *config) {
		if threshold <= 0 {
			panic("fisher: WithExactVarianceThreshold requires a positive threshold")
		}
		c.exactVarianceThreshold = threshold
	}
}

// Dist is Fisher's univariate noncentral hypergeometric distribution over a
// fixed urn. A Dist exclusively owns its cached state; it is not safe to
// share between goroutines without external synchronization (spec.md §5).
type Dist struct {
	params urn.UnivariateParams
	cfg    config

	state State

	// Normalized-state cache.
	scale   float64 // lngRaw(anchor); makes the anchor value 1 in linear space
	rsum    float64 // 1 / sum(g(x)) over the support
	anchor  int     // x at which scale was taken
	xLast   int     // last x passed to Probability
	xFac    float64 // lngRaw(xLast), i.e. ln g(xLast) before subtracting scale

	meanCache *float64
	modeCache *int
}

// New constructs a Fisher univariate distribution over the given urn
// parameters, validating them per spec.md §3. It performs no normalization
// work; that happens lazily on the first Probability or Moments call.
func New(p urn.UnivariateParams, opts ...Option) (*Dist, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("fisher: %w", err)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Dist{params: p, cfg: cfg, state: Fresh}, nil
}

// Params returns the urn parameters this distribution was constructed with.
func (d *Dist) Params() urn.UnivariateParams {
	return d.params
}

// StateNow reports the current cache lifecycle state.
func (d *Dist) StateNow() State {
	return d.state
}

func (d *Dist) promote(s State) {
	if s > d.state {
		d.state = s
	}
}
