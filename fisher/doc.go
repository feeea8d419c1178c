// Package fisher implements Fisher's univariate noncentral hypergeometric
// distribution: the distribution of the number of color-1 balls drawn when
// each ball's inclusion is an independent weighted Bernoulli trial,
// conditioned on exactly n balls being drawn in total.
//
// Dist is a stateful numeric object, not a pure function: PMF and moment
// queries cache a scale factor, a reciprocal normalizing sum, and the last
// evaluated point so that repeated queries at neighbouring x are O(1). This
// mirrors the cached-state model described for the reference engine; see
// DESIGN.md.
package fisher
