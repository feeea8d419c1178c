package cornfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveConvergesForFisherTransfer(t *testing.T) {
	m := []int{20, 30, 20}
	odds := []float64{1.0, 2.5, 1.8}
	n, total := 24, 70

	q := func(r float64) float64 {
		sum := 0.0
		for i := range m {
			sum += float64(m[i]) * r * odds[i] / (r*odds[i] + 1)
		}
		return sum
	}

	sumMOdds := 0.0
	for i := range m {
		sumMOdds += float64(m[i]) * odds[i]
	}
	initial := float64(n) * float64(total) / (float64(total-n) * sumMOdds)

	r, err := Solve(n, total, initial, q)
	require.NoError(t, err)
	assert.InDelta(t, float64(n), q(r), 1e-2)
}

func TestSolveDegenerateDraws(t *testing.T) {
	r, err := Solve(0, 10, 1.0, func(float64) float64 { return 5 })
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)
}

func TestSolveNoConvergenceOnBadTransfer(t *testing.T) {
	_, err := Solve(5, 10, 1.0, func(float64) float64 { return 0 })
	assert.ErrorIs(t, err, ErrNoConvergence)
}
