package hostapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario #1 (spec.md §8): dWNCHypergeo(12, 25, 32, 20, 2.5) ~= 0.14908.
func TestScenario1WalleniusDensity(t *testing.T) {
	got, status := DWNCHypergeo(12, 25, 32, 20, 2.5, 1e-10)
	require.Equal(t, StatusOK, status)
	assert.InDelta(t, 0.14908, got, 1e-4)
}

// Scenario #2 (spec.md §8): dFNCHypergeo(12, 25, 32, 20, 2.5, 1e-10) ~= 0.14880.
func TestScenario2FisherDensity(t *testing.T) {
	got, status := DFNCHypergeo(12, 25, 32, 20, 2.5, 1e-10)
	require.Equal(t, StatusOK, status)
	assert.InDelta(t, 0.14880, got, 1e-4)
}

// Scenario #3 (spec.md §8): meanFNCHypergeo(25, 32, 20, 1.0, 1e-10) = 25*20/57.
func TestScenario3FisherMean(t *testing.T) {
	got, status := MeanFNCHypergeo(25, 32, 20, 1.0, 1e-10)
	require.Equal(t, StatusOK, status)
	assert.InDelta(t, 25.0*20.0/57.0, got, 1e-6)
}

// Scenario #4 (spec.md §8): modeFNCHypergeo(25, 32, 20, 2.5) = 10.
func TestScenario4FisherMode(t *testing.T) {
	got, status := ModeFNCHypergeo(25, 32, 20, 2.5)
	require.Equal(t, StatusOK, status)
	assert.Equal(t, int32(10), got)
}

// Scenario #5 (spec.md §8):
// dMFNCHypergeo(c(8,10,6), c(20,30,20), 24, c(1.0,2.5,1.8)) ~= 0.04826.
func TestScenario5MultivariateFisherDensity(t *testing.T) {
	got, status := DMFNCHypergeo(
		[]int32{8, 10, 6},
		[]int32{20, 30, 20},
		24,
		[]float64{1.0, 2.5, 1.8},
		1e-10,
	)
	require.Equal(t, StatusOK, status)
	assert.InDelta(t, 0.04826, got, 0.01)
}

// Scenario #6 (spec.md §8): pFNCHypergeo summed/evaluated across the full
// support reaches 1 within 1e-6; pFNCHypergeo(xmax, ...) is the sharpest
// single-point check of that property.
func TestScenario6FisherCDFReachesOne(t *testing.T) {
	const m1, m2, n, odds = 25, 32, 20, 2.5
	xmax := int32(20) // min(n, m1)

	got, status := PFNCHypergeo(xmax, m1, m2, n, odds, 1e-10)
	require.Equal(t, StatusOK, status)
	assert.InDelta(t, 1.0, got, 1e-6)

	xmin := int32(0) // max(0, n-m2) = max(0, 20-32) = 0
	sum := 0.0
	for x := xmin; x <= xmax; x++ {
		p, status := DFNCHypergeo(x, m1, m2, n, odds, 1e-10)
		require.Equal(t, StatusOK, status)
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestInvalidParametersReportStatusAndFatalError(t *testing.T) {
	var captured string
	SetFatalErrorSink(func(text string) { captured = text })
	defer SetFatalErrorSink(nil)

	_, status := DFNCHypergeo(5, -1, 32, 20, 2.5, 1e-10)
	assert.Equal(t, StatusInvalidParameter, status)
	assert.NotEmpty(t, captured)
}

func TestMultivariateLengthMismatchIsInvalidParameter(t *testing.T) {
	_, status := DMFNCHypergeo(
		[]int32{8, 10},
		[]int32{20, 30, 20},
		24,
		[]float64{1.0, 2.5, 1.8},
		1e-10,
	)
	assert.Equal(t, StatusInvalidParameter, status)
}

func TestSoftMissOutsideSupportReturnsZero(t *testing.T) {
	got, status := DFNCHypergeo(1000, 25, 32, 20, 2.5, 1e-10)
	require.Equal(t, StatusOK, status)
	assert.Equal(t, 0.0, got)
}
