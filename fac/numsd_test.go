package fac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumSDKnownQuantiles(t *testing.T) {
	// Two-tailed 5% mass falls outside roughly +/-1.96 SD.
	assert.InDelta(t, 1.959963985, NumSD(0.05), 1e-6)
	// Two-tailed 1% mass falls outside roughly +/-2.5758 SD.
	assert.InDelta(t, 2.575829303, NumSD(0.01), 1e-6)
}

func TestNumSDMonotoneDecreasingInAccuracy(t *testing.T) {
	prev := NumSD(1e-6)
	for _, acc := range []float64{1e-5, 1e-4, 1e-3, 1e-2, 1e-1, 0.5} {
		cur := NumSD(acc)
		assert.Less(t, cur, prev, "NumSD must shrink as accuracy grows")
		prev = cur
	}
}

func TestNumSDAtOneIsZero(t *testing.T) {
	assert.Equal(t, 0.0, NumSD(1))
}

func TestNumSDPanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { NumSD(0) })
	assert.Panics(t, func() { NumSD(-0.1) })
}
