package mvfisher

import "fmt"

// reduceOutcome validates an original-color-indexed outcome vector x against
// spec.md §4.3's three PMF preconditions (length, Σx = n, zero at excluded
// colors) and returns its reduced-color projection. A length mismatch is a
// usage-contract violation and is reported as an error; a structurally
// valid but infeasible vector (wrong sum, nonzero at an excluded color, or a
// reduced component out of [0, m[i]]) is reported via the ok return so
// Probability can treat it as a soft miss, per spec.md §7 kind-2 behavior.
func (d *Dist) reduceOutcome(x []int) (xu []int, ok bool, err error) {
	c := d.reduced.OriginalColors
	if len(x) != c {
		return nil, false, fmt.Errorf("mvfisher: outcome vector has length %d, want %d", len(x), c)
	}

	sum := 0
	for _, xi := range x {
		sum += xi
	}
	if sum != d.params.Draws {
		return nil, false, nil
	}

	reducedSet := make(map[int]bool, d.reduced.Used())
	for _, orig := range d.reduced.Index {
		reducedSet[orig] = true
	}
	for i, xi := range x {
		if !reducedSet[i] && xi != 0 {
			return nil, false, nil
		}
	}

	xu = make([]int, d.reduced.Used())
	for j, orig := range d.reduced.Index {
		v := x[orig]
		if v < 0 || v > d.reduced.M[j] {
			return nil, false, nil
		}
		xu[j] = v
	}
	return xu, true, nil
}
