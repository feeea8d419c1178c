package fisher

import (
	"math"
	"testing"

	"github.com/arolen/nchypergeo/urn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioParams() urn.UnivariateParams {
	return urn.UnivariateParams{Draws: 20, M1: 25, M2: 32, Odds: 2.5, Accuracy: 1e-10}
}

func TestFisherProbabilityScenario2(t *testing.T) {
	d, err := New(scenarioParams())
	require.NoError(t, err)
	assert.InDelta(t, 0.14880, d.Probability(12), 1e-5)
}

func TestFisherMeanScenario3(t *testing.T) {
	p := urn.UnivariateParams{Draws: 20, M1: 25, M2: 32, Odds: 1.0, Accuracy: 1e-10}
	d, err := New(p)
	require.NoError(t, err)
	assert.InDelta(t, 25.0*20.0/57.0, d.Mean(), 1e-6)
}

func TestFisherModeScenario4(t *testing.T) {
	d, err := New(scenarioParams())
	require.NoError(t, err)
	assert.Equal(t, 10, d.Mode())
}

func TestFisherProbabilitySumsToOneScenario6(t *testing.T) {
	p := scenarioParams()
	d, err := New(p)
	require.NoError(t, err)

	sum := 0.0
	for x := p.XMin(); x <= p.XMax(); x++ {
		sum += d.Probability(x)
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestFisherProbabilityBoundsAndSoftMiss(t *testing.T) {
	p := scenarioParams()
	d, err := New(p)
	require.NoError(t, err)

	assert.Equal(t, 0.0, d.Probability(p.XMin()-1))
	assert.Equal(t, 0.0, d.Probability(p.XMax()+1))
	for x := p.XMin(); x <= p.XMax(); x++ {
		pr := d.Probability(x)
		assert.GreaterOrEqual(t, pr, 0.0)
		assert.LessOrEqual(t, pr, 1.0)
	}
}

func TestFisherOddsOneMatchesCentralHypergeometric(t *testing.T) {
	p := urn.UnivariateParams{Draws: 20, M1: 25, M2: 32, Odds: 1.0, Accuracy: 1e-10}
	d, err := New(p)
	require.NoError(t, err)

	// Central hypergeometric PMF via direct binomial-coefficient arithmetic.
	central := func(x int) float64 {
		return math.Exp(lchooseRef(p.M1, x) + lchooseRef(p.M2, p.Draws-x) - lchooseRef(p.Total(), p.Draws))
	}
	for x := p.XMin(); x <= p.XMax(); x++ {
		assert.InDelta(t, central(x), d.Probability(x), 1e-12)
	}
}

func lchooseRef(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	lg1, _ := math.Lgamma(float64(n) + 1)
	lg2, _ := math.Lgamma(float64(k) + 1)
	lg3, _ := math.Lgamma(float64(n-k) + 1)
	return lg1 - lg2 - lg3
}

func TestFisherMeanMonotoneInOdds(t *testing.T) {
	base := urn.UnivariateParams{Draws: 20, M1: 25, M2: 32, Accuracy: 1e-10}
	prevMean := -1.0
	for _, odds := range []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0} {
		p := base
		p.Odds = odds
		d, err := New(p)
		require.NoError(t, err)
		mean := d.Mean()
		assert.Greater(t, mean, prevMean)
		prevMean = mean
	}
}

func TestFisherModeInvariant(t *testing.T) {
	d, err := New(scenarioParams())
	require.NoError(t, err)
	mode := d.Mode()
	pm := d.Probability(mode)
	if mode-1 >= scenarioParams().XMin() {
		assert.GreaterOrEqual(t, pm, d.Probability(mode-1))
	}
	if mode+1 <= scenarioParams().XMax() {
		assert.GreaterOrEqual(t, pm, d.Probability(mode+1))
	}
}

func TestFisherDegenerateUrn(t *testing.T) {
	p := urn.UnivariateParams{Draws: 10, M1: 10, M2: 0, Odds: 3.0, Accuracy: 0.01}
	d, err := New(p)
	require.NoError(t, err)
	assert.Equal(t, p.XMin(), p.XMax())
	assert.Equal(t, 1.0, d.Probability(p.XMin()))
}

func TestFisherZeroOdds(t *testing.T) {
	p := urn.UnivariateParams{Draws: 2, M1: 10, M2: 5, Odds: 0, Accuracy: 0.01}
	d, err := New(p)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.Probability(0))
	assert.Equal(t, 0.0, d.Probability(1))
}

func TestFisherMomentsMatchApproximationRoughly(t *testing.T) {
	d, err := New(scenarioParams())
	require.NoError(t, err)
	mean, variance := d.Moments()
	assert.InDelta(t, d.Mean(), mean, 1.0)
	assert.Greater(t, variance, 0.0)
}

func TestFisherCDFMonotoneAndBounded(t *testing.T) {
	p := scenarioParams()
	d, err := New(p)
	require.NoError(t, err)

	prev := 0.0
	for x := p.XMin(); x <= p.XMax(); x++ {
		cur := d.CDF(x)
		assert.GreaterOrEqual(t, cur, prev)
		assert.LessOrEqual(t, cur, 1.0+1e-9)
		prev = cur
	}
	assert.InDelta(t, 1.0, d.CDF(p.XMax()), 1e-6)
}

func TestFisherMakeTableSumsCloseToOne(t *testing.T) {
	d, err := New(scenarioParams())
	require.NoError(t, err)
	table := d.MakeTable()
	require.NotEmpty(t, table.Values)

	normalizedSum := 0.0
	for _, v := range table.Values {
		normalizedSum += v / table.Sum
	}
	assert.InDelta(t, 1.0, normalizedSum, 1e-9)
}

func TestFisherStateMachinePromotion(t *testing.T) {
	d, err := New(scenarioParams())
	require.NoError(t, err)
	assert.Equal(t, Fresh, d.StateNow())
	d.Mean()
	assert.Equal(t, MeanKnown, d.StateNow())
	d.Probability(d.Mode())
	assert.Equal(t, Normalized, d.StateNow())
}

func TestFisherConstructorRejectsInvalidParams(t *testing.T) {
	_, err := New(urn.UnivariateParams{Draws: 100, M1: 5, M2: 5, Odds: 1, Accuracy: 0.1})
	assert.Error(t, err)
}
