// Package mvfisher implements the multivariate generalization of Fisher's
// noncentral hypergeometric distribution: n balls drawn without replacement
// from c colored populations, each color carrying its own relative weight.
//
// PMF evaluation populates a reciprocal normalizing sum on first use by
// enumerating the feasible lattice of outcome vectors via a mean-anchored,
// depth-first walk with per-branch pruning (spec.md §4.3's SumOfAll); the
// same enumeration pass produces exact first and second moments.
package mvfisher
