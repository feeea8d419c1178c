// Package cornfield implements the iterative fixed-point root finder shared
// by the multivariate Fisher and Wallenius mean approximations (spec.md
// §4.3, §4.4) and by the univariate Wallenius mean approximation. Both
// variants solve for a scalar r >= 0 satisfying
//
//	r = r * n * (N - q(r)) / (q(r) * (N - n))
//
// for some color-weighted transfer function q that differs between Fisher
// and Wallenius; only q (and the initial guess) varies between callers.
package cornfield
