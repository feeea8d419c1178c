package mvwallenius

import "errors"

// ErrEnumerationBudgetExceeded indicates Moments' depth-first lattice walk
// visited more leaves than the configured node budget.
var ErrEnumerationBudgetExceeded = errors.New("mvwallenius: enumeration node budget exceeded")
