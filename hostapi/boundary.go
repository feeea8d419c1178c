package hostapi

import (
	"errors"
	"fmt"

	"github.com/arolen/nchypergeo/cornfield"
	"github.com/arolen/nchypergeo/fisher"
	"github.com/arolen/nchypergeo/mvfisher"
	"github.com/arolen/nchypergeo/urn"
	"github.com/arolen/nchypergeo/wallenius"
)

// DWNCHypergeo is the boundary form of Wallenius' noncentral hypergeometric
// density: P(X = x) for a two-color urn of m1, m2 balls, n drawn, color 1
// weighted by odds. Scenario #1 of spec.md §8.
func DWNCHypergeo(x, m1, m2, n int32, odds, accuracy float64) (float64, Status) {
	p := urn.UnivariateParams{Draws: int(n), M1: int(m1), M2: int(m2), Odds: odds, Accuracy: accuracy}
	d, err := wallenius.New(p)
	if err != nil {
		FatalError(fmt.Sprintf("dWNCHypergeo: %v", err))
		return 0, StatusInvalidParameter
	}
	return d.Probability(int(x)), StatusOK
}

// DFNCHypergeo is the boundary form of Fisher's noncentral hypergeometric
// density. Scenario #2 of spec.md §8.
func DFNCHypergeo(x, m1, m2, n int32, odds, accuracy float64) (float64, Status) {
	p := urn.UnivariateParams{Draws: int(n), M1: int(m1), M2: int(m2), Odds: odds, Accuracy: accuracy}
	d, err := fisher.New(p)
	if err != nil {
		FatalError(fmt.Sprintf("dFNCHypergeo: %v", err))
		return 0, StatusInvalidParameter
	}
	return d.Probability(int(x)), StatusOK
}

// MeanFNCHypergeo is the boundary form of Fisher's Cornfield mean
// approximation. Scenario #3 of spec.md §8.
func MeanFNCHypergeo(m1, m2, n int32, odds, accuracy float64) (float64, Status) {
	p := urn.UnivariateParams{Draws: int(n), M1: int(m1), M2: int(m2), Odds: odds, Accuracy: accuracy}
	d, err := fisher.New(p)
	if err != nil {
		FatalError(fmt.Sprintf("meanFNCHypergeo: %v", err))
		return 0, StatusInvalidParameter
	}
	return d.Mean(), StatusOK
}

// ModeFNCHypergeo is the boundary form of Fisher's mode (the closed-form
// Liao-Rosen root; no accuracy dependence). Scenario #4 of spec.md §8.
func ModeFNCHypergeo(m1, m2, n int32, odds float64) (int32, Status) {
	p := urn.UnivariateParams{Draws: int(n), M1: int(m1), M2: int(m2), Odds: odds, Accuracy: 1}
	d, err := fisher.New(p)
	if err != nil {
		FatalError(fmt.Sprintf("modeFNCHypergeo: %v", err))
		return 0, StatusInvalidParameter
	}
	return int32(d.Mode()), StatusOK
}

// DMFNCHypergeo is the boundary form of the multivariate Fisher density.
// x, m, and odds must have equal length. Scenario #5 of spec.md §8.
func DMFNCHypergeo(x []int32, m []int32, n int32, odds []float64, accuracy float64) (float64, Status) {
	p := urn.MultivariateParams{Draws: int(n), M: toIntSlice(m), Odds: toFloat64SliceCopy(odds), Accuracy: accuracy}
	d, err := mvfisher.New(p)
	if err != nil {
		FatalError(fmt.Sprintf("dMFNCHypergeo: %v", err))
		return 0, StatusInvalidParameter
	}
	prob, err := d.Probability(toIntSlice(x))
	if err != nil {
		FatalError(fmt.Sprintf("dMFNCHypergeo: %v", err))
		if errors.Is(err, cornfield.ErrNoConvergence) {
			return 0, StatusNoConvergence
		}
		return 0, StatusInvalidParameter
	}
	return prob, StatusOK
}

// PFNCHypergeo is the boundary form of Fisher's cumulative distribution,
// P(X <= x). Summed from XMin to XMax it reaches 1 within accuracy, per
// scenario #6 of spec.md §8.
func PFNCHypergeo(x, m1, m2, n int32, odds, accuracy float64) (float64, Status) {
	p := urn.UnivariateParams{Draws: int(n), M1: int(m1), M2: int(m2), Odds: odds, Accuracy: accuracy}
	d, err := fisher.New(p)
	if err != nil {
		FatalError(fmt.Sprintf("pFNCHypergeo: %v", err))
		return 0, StatusInvalidParameter
	}
	return d.CDF(int(x)), StatusOK
}
