package mvwallenius

import (
	"github.com/arolen/nchypergeo/urn"
	"github.com/arolen/nchypergeo/wallenius"
)

// normalApproximation decomposes the vector query into usedcolors-1
// sequential conditional draws, each evaluated by wallenius.Dist's own
// normal-approximation path (eligible here too, since this is only reached
// when accuracy >= normalApproximationAccuracyFloor): color i is scored
// against the pool of colors after it, with the pool's odds taken as its
// population-weighted average, mirroring the conditional-sampling
// decomposition spec.md §4.5 documents for rMFNC.
func (d *Dist) normalApproximation(xu []int) (float64, error) {
	r := d.reduced
	used := r.Used()

	remainingM := append([]int(nil), r.M...)
	remainingDraws := d.params.Draws
	prob := 1.0

	for i := 0; i < used-1; i++ {
		poolM := 0
		poolWeighted := 0.0
		for j := i + 1; j < used; j++ {
			poolM += remainingM[j]
			poolWeighted += float64(remainingM[j]) * r.Odds[j]
		}
		poolOdds := 1.0
		if poolM > 0 {
			poolOdds = poolWeighted / float64(poolM)
		}

		up := urn.UnivariateParams{
			Draws:    remainingDraws,
			M1:       remainingM[i],
			M2:       poolM,
			Odds:     r.Odds[i] / poolOdds,
			Accuracy: d.params.Accuracy,
		}
		wd, err := wallenius.New(up)
		if err != nil {
			return 0, err
		}
		prob *= wd.Probability(xu[i])
		remainingDraws -= xu[i]
	}
	return prob, nil
}
