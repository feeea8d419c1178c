// Package wallenius implements Wallenius' univariate noncentral
// hypergeometric distribution: balls are drawn one at a time, each draw's
// color chosen with probability proportional to the residual count of that
// color times its odds. Unlike Fisher's variant, the PMF has no closed
// form; it is the integral
//
//	P(x) = C * Integral_0^1 (1 - t^(odds/d))^x * (1 - t^(1/d))^(n-x) dt
//
// evaluated by one of three strategies selected by problem size and the
// requested accuracy (spec.md §4.4): adaptive Gauss-Legendre quadrature,
// a Laplace approximation, or a normal approximation anchored on a
// Cornfield-style mean/variance fixed point.
package wallenius
