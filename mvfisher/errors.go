package mvfisher

import "errors"

// ErrEnumerationBudgetExceeded indicates SumOfAll's depth-first lattice walk
// visited more leaves than the configured node budget without the walk
// collapsing on its own (spec.md §5's "internal combinations counter").
var ErrEnumerationBudgetExceeded = errors.New("mvfisher: enumeration node budget exceeded")
