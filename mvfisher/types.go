package mvfisher

import (
	"fmt"

	"github.com/arolen/nchypergeo/fac"
	"github.com/arolen/nchypergeo/urn"
)

// State names the per-instance cache lifecycle from spec.md §4.7:
// Fresh -> MeanKnown -> Normalized.
type State int

const (
	// Fresh is the state immediately after construction: nothing cached.
	Fresh State = iota
	// MeanKnown is reached once mean1 has been solved at least once.
	MeanKnown
	// Normalized is reached once scale/rsum have been computed via
	// SumOfAll, i.e. once Probability or Moments has been called at least
	// once on the general (not-all-equal-odds, three-or-more-color) path.
	Normalized
)

// defaultMaxEnumerationNodes bounds SumOfAll's depth-first lattice walk, per
// the configuration knob spec.md §5 suggests for exhaustive multivariate
// moment computation.
const defaultMaxEnumerationNodes = 1_000_000

// Option customizes a Dist beyond its required urn parameters.
type Option func(*config)

type config struct {
	maxEnumerationNodes int
}

func defaultConfig() config {
	return config{maxEnumerationNodes: defaultMaxEnumerationNodes}
}

// WithMaxEnumerationNodes caps the number of lattice leaves SumOfAll will
// visit before giving up with ErrEnumerationBudgetExceeded, per spec.md §5's
// note that an implementation "may offer a configuration knob capping ...
// an internal combinations counter". Must be > 0.
func WithMaxEnumerationNodes(n int) Option {
	return func(c *config) {
		if n <= 0 {
			panic("mvfisher: WithMaxEnumerationNodes requires a positive count")
		}
		c.maxEnumerationNodes = n
	}
}

// Dist is the multivariate generalization of Fisher's noncentral
// hypergeometric distribution over a fixed c-color urn. Like fisher.Dist, it
// is a stateful numeric object owning cached scale/normalization state; it
// is not safe to share between goroutines without external synchronization
// (spec.md §5).
type Dist struct {
	params  urn.MultivariateParams
	cfg     config
	reduced urn.Reduced
	mFac    float64 // sum of LnFac(m[i]) over reduced colors

	state State

	mean1Cache []float64 // mu[i] per reduced color, from the Cornfield fixed point
	rCache     *float64  // the solved scalar r backing mean1Cache

	// Normalized-state cache, populated by SumOfAll.
	scale         float64
	rsum          float64
	anchor        []int
	exactMean     []float64 // per reduced color
	exactVariance []float64 // per reduced color, diagonal only
}

// New constructs a multivariate Fisher distribution over the given urn
// parameters, validating them per spec.md §3. It performs no normalization
// or mean-solving work; both happen lazily on first use.
func New(p urn.MultivariateParams, opts ...Option) (*Dist, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("mvfisher: %w", err)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	reduced := urn.Reduce(p)
	mFac := 0.0
	for _, m := range reduced.M {
		mFac += fac.LnFac(m)
	}
	return &Dist{params: p, cfg: cfg, reduced: reduced, mFac: mFac, state: Fresh}, nil
}

// Params returns the urn parameters this distribution was constructed with.
func (d *Dist) Params() urn.MultivariateParams {
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

// expand scatters a reduced-color slice back into an original-color-indexed
// slice, leaving excluded colors at 0.
func (d *Dist) expand(reduced []float64) []float64 {
	out := make([]float64, d.reduced.OriginalColors)
	for j, orig := range d.reduced.Index {
		out[orig] = reduced[j]
	}
	return out
}
