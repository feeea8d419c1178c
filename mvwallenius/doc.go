// Package mvwallenius implements the multivariate generalization of
// Wallenius' noncentral hypergeometric distribution: n balls drawn
// sequentially without replacement from c colored populations, each
// draw's color chosen with probability proportional to its residual
// count times its odds.
//
// The defining integral is already stated in per-color form (spec.md
// §4.4), so the quadrature and Laplace strategies generalize wallenius.Dist's
// directly over outcome vectors. The normal strategy decomposes the outcome
// into sequential two-color approximations, and an urn with exactly two used
// colors is delegated to wallenius.Dist.
package mvwallenius
