// Package nchypergeo computes univariate and multivariate noncentral
// hypergeometric distributions under Fisher's and Wallenius' weighting
// models: densities, means, modes, variances, exact moments, and weighted
// sampling without replacement.
//
// What is nchypergeo?
//
//	A pure-Go numerics library organized around a fixed urn model: n balls
//	drawn without replacement from colored populations, each color carrying
//	a relative odds weight. Fisher's variant treats each ball's color as an
//	independent weighted Bernoulli draw conditioned on the total n; Wallenius'
//	variant draws balls one at a time with probability proportional to the
//	remaining weighted population, so order matters and the two variants
//	diverge whenever odds != 1.
//
// Under the hood, everything is organized under single-purpose packages:
//
//	urn/        — urn parameter types, validation, and reduction to used colors
//	fac/        — process-wide log-factorial cache
//	cornfield/  — shared Cornfield-style fixed-point mean solver
//	fisher/     — univariate Fisher noncentral hypergeometric distribution
//	wallenius/  — univariate Wallenius noncentral hypergeometric distribution
//	mvfisher/   — multivariate Fisher distribution
//	mvwallenius/ — multivariate Wallenius distribution
//	sampler/    — weighted sampling without replacement, both variants
//	invert/     — recovering odds or urn composition from a target mean
//	hostapi/    — C-style boundary functions for a scripting host
//
// go get github.com/arolen/nchypergeo
package nchypergeo
