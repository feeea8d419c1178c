// Package invert recovers urn parameters from a target mean: the odds
// ratio given (m1, m2, n), or the urn composition (m1, m2) given (N, odds),
// per spec.md §4.6. Neither inversion attempts exact-precision recovery;
// both treat accuracy as a hint, consistent with spec.md §6's note that
// accuracy below 0.1 is clamped to 0.1 for these inverses.
package invert
