package fac

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallingFactorialIntegerMatchesLnFacDifference(t *testing.T) {
	got := FallingFactorial(10, 3)
	want := LnFac(10) - LnFac(7)
	assert.InDelta(t, want, got, 1e-12)
}

func TestFallingFactorialNonIntegerUsesLgamma(t *testing.T) {
	got := FallingFactorial(10.5, 2.5)
	lg1, _ := math.Lgamma(11.5)
	lg2, _ := math.Lgamma(9)
	assert.InDelta(t, lg1-lg2, got, 1e-12)
}

func TestFallingFactorialZeroStepIsZero(t *testing.T) {
	assert.InDelta(t, 0.0, FallingFactorial(42, 0), 1e-12)
}
