package sampler

import (
	"math/rand"
	"testing"

	"github.com/arolen/nchypergeo/urn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFisherSampleWithinSupport(t *testing.T) {
	p := urn.UnivariateParams{Draws: 20, M1: 25, M2: 32, Odds: 2.5, Accuracy: 1e-6}
	s, err := NewFisher(p)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		x := s.Sample(rng)
		assert.GreaterOrEqual(t, x, p.XMin())
		assert.LessOrEqual(t, x, p.XMax())
	}
}

func TestFisherSampleDeterministicWithSameSeed(t *testing.T) {
	p := urn.UnivariateParams{Draws: 20, M1: 25, M2: 32, Odds: 2.5, Accuracy: 1e-6}
	s1, err := NewFisher(p)
	require.NoError(t, err)
	s2, err := NewFisher(p)
	require.NoError(t, err)

	r1 := rand.New(rand.NewSource(7))
	r2 := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		assert.Equal(t, s1.Sample(r1), s2.Sample(r2))
	}
}

func TestMultivariateFisherSampleSumsToDraws(t *testing.T) {
	p := urn.MultivariateParams{
		Draws:    24,
		M:        []int{20, 30, 20},
		Odds:     []float64{1.0, 2.5, 1.8},
		Accuracy: 1e-6,
	}
	s, err := NewMultivariateFisher(p)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		x, err := s.Sample(rng)
		require.NoError(t, err)
		require.Len(t, x, 3)
		sum := 0
		for j, xi := range x {
			assert.GreaterOrEqual(t, xi, 0)
			assert.LessOrEqual(t, xi, p.M[j])
			sum += xi
		}
		assert.Equal(t, p.Draws, sum)
	}
}

func TestWalleniusSampleWithinSupport(t *testing.T) {
	p := urn.UnivariateParams{Draws: 20, M1: 25, M2: 32, Odds: 2.5, Accuracy: 0.01}
	s, err := NewWallenius(p)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		x := s.Sample(rng)
		assert.GreaterOrEqual(t, x, p.XMin())
		assert.LessOrEqual(t, x, p.XMax())
	}
}

func TestMultivariateWalleniusSampleSumsToDraws(t *testing.T) {
	p := urn.MultivariateParams{
		Draws:    24,
		M:        []int{20, 30, 20},
		Odds:     []float64{1.0, 2.5, 1.8},
		Accuracy: 0.01,
	}
	s, err := NewMultivariateWallenius(p)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		x := s.Sample(rng)
		require.Len(t, x, 3)
		sum := 0
		for j, xi := range x {
			assert.GreaterOrEqual(t, xi, 0)
			assert.LessOrEqual(t, xi, p.M[j])
			sum += xi
		}
		assert.Equal(t, p.Draws, sum)
	}
}

func TestMultivariateWalleniusNilRNGUsesDeterministicDefault(t *testing.T) {
	p := urn.MultivariateParams{Draws: 5, M: []int{5, 5}, Odds: []float64{1, 2}, Accuracy: 0.01}
	s, err := NewMultivariateWallenius(p)
	require.NoError(t, err)

	x1 := s.Sample(nil)
	x2 := s.Sample(nil)
	assert.Equal(t, x1, x2)
}
