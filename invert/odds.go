package invert

import (
	"fmt"
	"math"

	"github.com/arolen/nchypergeo/fisher"
	"github.com/arolen/nchypergeo/urn"
	"github.com/arolen/nchypergeo/wallenius"
)

// OddsNC recovers the odds ratio reproducing the target mean for a urn with
// known (m1, m2, n). Fisher's Cornfield mean formula is monotone in odds
// and inverts analytically; Wallenius has no closed inverse, so it
// bisects odds in [1e-9, 1e9] against the fast mean approximation
// (spec.md §4.6).
func OddsNC(mean float64, m1, m2, n int, accuracy float64, engine Engine) (float64, error) {
	accuracy = effectiveAccuracy(accuracy)
	if engine == Fisher {
		return fisherOddsNC(mean, m1, m2, n)
	}
	return bisectOddsNC(mean, m1, m2, n, accuracy, engine)
}

// fisherOddsNC inverts odds = mean*(N - m1 - n + mean) / ((m1 - mean)*(n -
// mean)), the closed form obtained by solving Fisher's a/disc mean
// quadratic for odds (see DESIGN.md for the derivation). A mean outside the
// support [max(0, n-m2), min(n, m1)] is rejected with ErrMeanOutOfRange.
func fisherOddsNC(mean float64, m1, m2, n int) (float64, error) {
	mf, nf := float64(m1), float64(n)
	total := float64(m1 + m2)

	if mean < math.Max(0, float64(n-m2)) || mean > math.Min(nf, mf) {
		return 0, ErrMeanOutOfRange
	}

	denom := (mf - mean) * (nf - mean)
	if denom == 0 {
		return 0, ErrMeanOutOfRange
	}
	odds := mean * (total - mf - nf + mean) / denom
	if odds < 0 {
		return 0, ErrMeanOutOfRange
	}
	return odds, nil
}

func bisectOddsNC(mean float64, m1, m2, n int, accuracy float64, engine Engine) (float64, error) {
	f := func(odds float64) float64 {
		m, err := forwardMean(m1, m2, n, odds, accuracy, engine)
		if err != nil {
			return math.NaN()
		}
		return m
	}
	return bisectIncreasing(f, oddsSearchFloor, oddsSearchCeiling, mean, accuracy*0.1)
}

// forwardMean evaluates the chosen engine's Mean for the given urn.
func forwardMean(m1, m2, n int, odds, accuracy float64, engine Engine) (float64, error) {
	p := urn.UnivariateParams{Draws: n, M1: m1, M2: m2, Odds: odds, Accuracy: accuracy}
	switch engine {
	case Fisher:
		d, err := fisher.New(p)
		if err != nil {
			return 0, fmt.Errorf("invert: %w", err)
		}
		return d.Mean(), nil
	default:
		d, err := wallenius.New(p)
		if err != nil {
			return 0, fmt.Errorf("invert: %w", err)
		}
		return d.Mean(), nil
	}
}
