package urn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduceDropsZeroColors(t *testing.T) {
	p := MultivariateParams{
		Draws:    5,
		M:        []int{0, 10, 5, 0},
		Odds:     []float64{1, 2, 0, 3},
		Accuracy: 0.01,
	}
	r := Reduce(p)
	// colors 0 (m=0), 2 (odds=0), and 3 (m=0) are dropped
	assert.Equal(t, []int{10}, r.M)
	assert.Equal(t, []float64{2}, r.Odds)
	assert.Equal(t, []int{1}, r.Index)
	assert.Equal(t, 1, r.Used())
}

func TestReduceAllEqualOdds(t *testing.T) {
	p := MultivariateParams{Draws: 5, M: []int{5, 5, 5}, Odds: []float64{2, 2, 2}, Accuracy: 0.01}
	r := Reduce(p)
	assert.True(t, r.AllEqualOdds)

	p2 := MultivariateParams{Draws: 5, M: []int{5, 5, 5}, Odds: []float64{2, 3, 2}, Accuracy: 0.01}
	r2 := Reduce(p2)
	assert.False(t, r2.AllEqualOdds)
}

func TestReduceExpandRoundTrip(t *testing.T) {
	p := MultivariateParams{Draws: 5, M: []int{0, 10, 5}, Odds: []float64{1, 2, 3}, Accuracy: 0.01}
	r := Reduce(p)
	xu := make([]int, r.Used())
	for j := range xu {
		xu[j] = j + 1
	}
	x := r.Expand(xu)
	assert.Equal(t, []int{0, 1, 2}, x)
}
