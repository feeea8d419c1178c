// Package urn defines the parameter types shared by every noncentral
// hypergeometric engine in this module: the univariate urn
// (n, m1, m2, odds, accuracy) and the multivariate urn
// (n, m[], odds[], accuracy), together with their validation rules and the
// color-reduction step (dropping zero-weight / zero-size colors) that every
// multivariate engine performs before doing any real work.
//
// Types here are plain, immutable value types; no package-level state is
// kept. Each engine package embeds one of these and layers its own cached,
// mutable evaluation state on top.
package urn
