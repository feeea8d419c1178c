// Package sampler draws random variates from the noncentral hypergeometric
// engines in fisher, mvfisher, wallenius, and mvwallenius.
//
// Univariate Fisher sampling is a chop-down search over the table built by
// fisher.Dist.MakeTable (spec.md §4.5); multivariate Fisher sampling
// decomposes into conditional univariate Fisher draws. Wallenius sampling has no such table: it
// emulates the urn directly, drawing balls one at a time with probability
// proportional to residual count times odds, which is exact by definition
// of the Wallenius distribution and naturally covers both the univariate
// and multivariate cases with the same loop.
package sampler
