package fac

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLnFacSmallValues(t *testing.T) {
	assert.Equal(t, 0.0, LnFac(0))
	assert.InDelta(t, 0.0, LnFac(1), 1e-12)
	assert.InDelta(t, math.Log(2), LnFac(2), 1e-12)
	assert.InDelta(t, math.Log(720), LnFac(6), 1e-9)
}

func TestLnFacMatchesDirectSumNearTableBoundary(t *testing.T) {
	// LnFac(FakLen-1) must equal the direct sum of logs, independent of
	// whichever code path fills the table.
	want := 0.0
	for k := 1; k < FakLen; k++ {
		want += math.Log(float64(k))
	}
	assert.InDelta(t, want, LnFac(FakLen-1), 1e-9)
}

func TestLnFacStirlingContinuity(t *testing.T) {
	// The Stirling branch (k >= FakLen) must agree closely with a direct
	// extension of the table-building recurrence just below the boundary,
	// since both approximate the same ln(k!).
	below := LnFac(FakLen - 1) + math.Log(float64(FakLen))
	above := LnFac(FakLen)
	assert.InDelta(t, below, above, 1e-6)
}

func TestLnFacLargeValueRelativeError(t *testing.T) {
	// ln(100000!) via Stirling should match a high-precision reference
	// value to within the documented relative error bound.
	k := 100000
	got := LnFac(k)
	lg, _ := math.Lgamma(float64(k) + 1)
	assert.InDelta(t, lg, got, math.Abs(lg)*1e-10)
}

func TestLnFacPanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { LnFac(-1) })
}
